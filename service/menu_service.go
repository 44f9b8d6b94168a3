package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"pizzaria-storefront/models"
	"pizzaria-storefront/utils"
)

//go:embed templates/menu.html
var menuTemplateSource string

var menuTemplate = template.Must(template.New("menu").Funcs(template.FuncMap{
	"brl":   utils.FormatBRL,
	"price": func(p models.Product) string { return utils.FormatBRL(p.BasePrice()) },
}).Parse(menuTemplateSource))

// MenuProvider supplies the grouped menu
type MenuProvider interface {
	Menu(ctx context.Context, category string) (*models.MenuResponse, error)
}

// MenuService renders the printable menu
type MenuService struct {
	catalog    MenuProvider
	storeName  string
	chromePath string
}

// NewMenuService creates a new MenuService. chromePath may be empty to auto-detect.
func NewMenuService(catalog MenuProvider, storeName, chromePath string) *MenuService {
	return &MenuService{catalog: catalog, storeName: storeName, chromePath: chromePath}
}

// detectChromePath returns the configured Chrome/Chromium executable, or the first
// one found in the common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// RenderMenuHTML renders the menu as a standalone HTML page
func (s *MenuService) RenderMenuHTML(ctx context.Context) (string, error) {
	menu, err := s.catalog.Menu(ctx, "")
	if err != nil {
		return "", err
	}

	data := models.MenuPageData{
		StoreName:   s.storeName,
		Categories:  menu.Categories,
		Additionals: menu.Additionals,
	}

	var buf bytes.Buffer
	if err := menuTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the menu page to an A4 PDF using headless Chrome
func (s *MenuService) GeneratePDF(ctx context.Context) ([]byte, error) {
	html, err := s.RenderMenuHTML(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ Menu PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
