package models

// MenuPageData represents the data structure passed to the printable menu template
type MenuPageData struct {
	StoreName   string         `json:"storeName"`
	Categories  []MenuCategory `json:"categories"`
	Additionals []Additional   `json:"additionals"`
}
