// internals/features/letters/service/rod_engine.go
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// HTMLRenderer mengubah dokumen HTML menjadi bytes PDF. Diabstraksi supaya
// test bisa memakai stub tanpa browser.
type HTMLRenderer interface {
	RenderHTML(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ HTMLRenderer = (*RodEngine)(nil)

// Ukuran kertas A4 dalam inci (standar surat dinas).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.5
)

// RodEngine merender HTML ke PDF lewat Chrome headless (go-rod). Browser
// dibuka lazy pada render pertama dan dipakai bersama; setiap render
// mendapat page sendiri sehingga aman dipanggil konkuren.
type RodEngine struct {
	mu      sync.Mutex
	browser *rod.Browser
	timeout time.Duration
}

func NewRodEngine(timeout time.Duration) *RodEngine {
	return &RodEngine{timeout: timeout}
}

func (e *RodEngine) ensureBrowser() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.browser != nil {
		return e.browser, nil
	}

	l := launcher.New()

	// Pakai browser bawaan container bila diset (Docker/Railway)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	// NoSandbox wajib di CI dan lingkungan container
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	e.browser = browser
	return e.browser, nil
}

// Close melepaskan browser. Aman dipanggil walau browser belum pernah dibuka.
func (e *RodEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	e.browser = nil
	return err
}

// RenderHTML menulis konten ke file sementara lalu merendernya lewat Chrome.
// Chrome butuh URL file:// supaya resource relatif dan data URI logo ikut
// termuat dengan benar.
func (e *RodEngine) RenderHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := e.ensureBrowser()
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempHTML(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: membaca stream PDF: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

func writeTempHTML(content string) (path string, cleanup func(), err error) {
	tmp, err := os.CreateTemp("", "surat-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("membuat file sementara: %w", err)
	}

	path = tmp.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmp.WriteString(content); writeErr != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("menulis file sementara: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("menutup file sementara: %w", closeErr)
	}
	return path, cleanup, nil
}

func floatPtr(v float64) *float64 { return &v }
