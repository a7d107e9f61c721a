package renderer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// A4 page dimensions in inches. Chromium swaps them for landscape output.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// PDFEngine prints rendered certificate HTML to PDF bytes. An engine owns a
// headless browser process; Close must be called on every exit path so the
// process does not leak.
type PDFEngine interface {
	Render(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// rodEngine drives a headless Chromium instance through go-rod.
type rodEngine struct {
	browser *rod.Browser
}

var _ PDFEngine = (*rodEngine)(nil)

// NewPDFEngine launches a headless browser scoped to one invocation.
// Rod downloads a Chromium build on first use unless ROD_BROWSER_BIN points
// at a pre-installed binary (containerized deployments).
func NewPDFEngine() (PDFEngine, error) {
	l := launcher.New()

	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin).NoSandbox(true)
	}

	controlURL, launchErr := l.Launch()
	if launchErr != nil {
		return nil, fmt.Errorf("failed to launch headless browser: %w", launchErr)
	}

	browser := rod.New().ControlURL(controlURL)
	if connectErr := browser.Connect(); connectErr != nil {
		return nil, fmt.Errorf("failed to connect to headless browser: %w", connectErr)
	}

	return &rodEngine{browser: browser}, nil
}

// Render loads the HTML as the sole page content and prints it to PDF.
func (e *rodEngine) Render(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, pageErr := e.browser.Page(proto.TargetCreateTarget{})
	if pageErr != nil {
		return nil, fmt.Errorf("failed to open browser page: %w", pageErr)
	}
	defer page.Close()

	page = page.Context(ctx)

	if contentErr := page.SetDocumentContent(html); contentErr != nil {
		return nil, fmt.Errorf("failed to set page content: %w", contentErr)
	}

	if loadErr := page.WaitLoad(); loadErr != nil {
		return nil, fmt.Errorf("failed to load certificate page: %w", loadErr)
	}

	reader, pdfErr := page.PDF(printOptions())
	if pdfErr != nil {
		return nil, fmt.Errorf("failed to print page to PDF: %w", pdfErr)
	}

	pdf, readErr := io.ReadAll(reader)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", readErr)
	}

	return pdf, nil
}

// Close tears down the browser process. Safe to call more than once.
func (e *rodEngine) Close() error {
	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	e.browser = nil
	return err
}

// printOptions is the fixed certificate layout: A4, landscape, background
// graphics included, CSS-defined page size preferred.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		Landscape:         true,
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        floatPtr(a4WidthInches),
		PaperHeight:       floatPtr(a4HeightInches),
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
