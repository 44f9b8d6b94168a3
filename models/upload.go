package models

// ImageUploadResponse represents the response after uploading a product image
// Example response:
// {
//   "url": "https://drive.google.com/uc?id=1AbC...",
//   "fileId": "1AbC...",
//   "size": 48213
// }
type ImageUploadResponse struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
	Size   int    `json:"size"`
}

// LoginRequest represents the request body for POST /admin/login
// Example: {"username": "dono", "password": "..."}
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the issued admin token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
