package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"wikiturtles/internal/fileutil"
	"wikiturtles/internal/logging"
	"wikiturtles/internal/title"
)

// Renderer turns a title into a logo image on disk and returns its path.
type Renderer interface {
	Render(ctx context.Context, title string) (string, error)
}

// Options configures ChromeRenderer.
type Options struct {
	ChromePath string
	LogoURL    string
	Width      int
	Height     int
	Crop       CropOptions
	Timeout    time.Duration
	// Settle is the pause after page load that lets the generator draw.
	Settle     time.Duration
	OutputPath string
	Logger     *slog.Logger
}

// CaptureFunc screenshots pageURL in a width x height viewport and returns
// PNG bytes.
type CaptureFunc func(ctx context.Context, pageURL string, width, height int) ([]byte, error)

// ChromeRenderer screenshots the logo generator with headless Chrome.
type ChromeRenderer struct {
	opts    Options
	capture CaptureFunc
	logger  *slog.Logger
}

var _ Renderer = (*ChromeRenderer)(nil)

// NewChromeRenderer validates opts. A nil capture uses go-rod.
func NewChromeRenderer(opts Options, capture CaptureFunc) (*ChromeRenderer, error) {
	opts.LogoURL = strings.TrimSpace(opts.LogoURL)
	if opts.LogoURL == "" {
		return nil, errors.New("render: logo url required")
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return nil, errors.New("render: output path required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: viewport must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Minute
	}
	r := &ChromeRenderer{
		opts:    opts,
		capture: capture,
		logger:  logging.NewComponentLogger(opts.Logger, "render"),
	}
	if r.capture == nil {
		r.capture = r.captureChrome
	}
	return r, nil
}

// PageURL is the generator address for title.
func (r *ChromeRenderer) PageURL(t string) string {
	return r.opts.LogoURL + title.LogoFragment(title.AddPadding(t))
}

// Render screenshots, crops, and writes the logo for t.
func (r *ChromeRenderer) Render(ctx context.Context, t string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	pageURL := r.PageURL(t)
	started := time.Now()
	shot, err := r.capture(ctx, pageURL, r.opts.Width, r.opts.Height)
	if err != nil {
		return "", fmt.Errorf("capture %s: %w", pageURL, err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return "", fmt.Errorf("decode screenshot: %w", err)
	}
	logo, err := CropLogo(img, r.opts.Crop)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, logo); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	if err := fileutil.WriteFileAtomic(r.opts.OutputPath, &buf, 0o644); err != nil {
		return "", fmt.Errorf("write logo: %w", err)
	}

	r.logger.Info("logo rendered",
		logging.String(logging.FieldTitle, t),
		logging.String(logging.FieldEventType, "logo_rendered"),
		logging.String("path", r.opts.OutputPath),
		logging.Int("width", logo.Bounds().Dx()),
		logging.Int("height", logo.Bounds().Dy()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return r.opts.OutputPath, nil
}

func (r *ChromeRenderer) captureChrome(ctx context.Context, pageURL string, width, height int) ([]byte, error) {
	launch := launcher.New().Context(ctx).Headless(true)
	if r.opts.ChromePath != "" {
		launch = launch.Bin(r.opts.ChromePath)
	}
	controlURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}
	defer func() {
		launch.Kill()
		launch.Cleanup()
	}()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1.0,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	if err := page.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait for load: %w", err)
	}
	if r.opts.Settle > 0 {
		timer := time.NewTimer(r.opts.Settle)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	return page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}
