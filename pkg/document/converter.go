package document

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/semaphore"
)

// Converter prints an HTML document to PDF.
type Converter interface {
	ToPDF(ctx context.Context, html string) ([]byte, error)
	Close() error
}

var _ Converter = (*RodConverter)(nil)

// A4 dimensions in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// RodConverter converts HTML to PDF with headless Chrome via go-rod.
// Rod downloads Chromium on first use unless BrowserBin is set.
type RodConverter struct {
	browser *rod.Browser
	sem     *semaphore.Weighted
	cfg     Config
	mu      sync.Mutex
}

// NewRodConverter creates a converter. The browser is not started until the
// first call to ToPDF or Ping.
func NewRodConverter(cfg Config) *RodConverter {
	cfg = cfg.withDefaults()
	return &RodConverter{
		cfg: cfg,
		sem: semaphore.NewWeighted(cfg.MaxPages),
	}
}

func (c *RodConverter) ensureBrowser() (*rod.Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser != nil {
		return c.browser, nil
	}

	l := launcher.New()
	if c.cfg.BrowserBin != "" {
		l = l.Bin(c.cfg.BrowserBin)
	}
	if c.cfg.NoSandbox || c.cfg.BrowserBin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	c.browser = b
	return b, nil
}

// ToPDF renders html on an A4 page with backgrounds printed.
// At most Config.MaxPages conversions run at once; callers beyond that wait
// until a page frees up or ctx is done.
func (c *RodConverter) ToPDF(ctx context.Context, html string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer c.sem.Release(1)

	b, err := c.ensureBrowser()
	if err != nil {
		return nil, err
	}

	timeout := c.cfg.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	p := page.Context(ctx).Timeout(timeout)
	if err := p.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := p.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := p.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(a4WidthInches),
		PaperHeight:       floatPtr(a4HeightInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return data, nil
}

// Ping starts the browser if needed and checks that it responds.
func (c *RodConverter) Ping(ctx context.Context) error {
	b, err := c.ensureBrowser()
	if err != nil {
		return err
	}
	if _, err := b.Context(ctx).Version(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close shuts the browser down. The converter can be reused afterwards.
func (c *RodConverter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	return err
}

func floatPtr(v float64) *float64 {
	return &v
}
