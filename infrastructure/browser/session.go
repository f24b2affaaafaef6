package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// Supported browser engines
const (
	EngineChromium = "chromium"
	EngineFirefox  = "firefox"
	EngineWebKit   = "webkit"
)

// ErrDriverUnavailable marks failures to start playwright or launch the browser
var ErrDriverUnavailable = errors.New("browser driver unavailable")

// Options describe how a session is launched and where it navigates
type Options struct {
	Engine            string
	Headless          bool
	SlowMo            time.Duration
	ViewportWidth     int
	ViewportHeight    int
	TargetURL         string
	NavigationTimeout time.Duration
	ActionTimeout     time.Duration
}

// Session owns one browser, one isolated context and one page
type Session struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	context  playwright.BrowserContext
	page     playwright.Page
	log      *logrus.Entry
	released bool
}

var _ interfaces.Session = (*Session)(nil)

// Acquire launches a headless browser, opens an isolated context and a page,
// and navigates to the target URL, waiting for DOM content only.
// Navigation failures are returned as is; nothing is retried.
func Acquire(ctx context.Context, opts Options, logger *logrus.Logger) (*Session, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	s := &Session{log: logger.WithFields(logrus.Fields{"browser": opts.Engine, "url": opts.TargetURL})}

	if err := s.launch(ctx, opts); err != nil {
		if rerr := s.Release(); rerr != nil {
			s.log.WithError(rerr).Warn("failed to release partially acquired session")
		}
		return nil, err
	}

	s.log.Debug("session acquired")
	return s, nil
}

func (s *Session) launch(ctx context.Context, opts Options) error {
	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("%w: failed to start playwright: %w", ErrDriverUnavailable, err)
	}
	s.pw = pw

	browserType, err := s.browserType(opts.Engine)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	launch := playwright.BrowserTypeLaunchOptions{Headless: playwright.Bool(opts.Headless)}
	if opts.SlowMo > 0 {
		launch.SlowMo = ms(opts.SlowMo)
	}
	browser, err := browserType.Launch(launch)
	if err != nil {
		return fmt.Errorf("%w: failed to launch browser: %w", ErrDriverUnavailable, err)
	}
	s.browser = browser

	contextOptions := playwright.BrowserNewContextOptions{}
	if opts.ViewportWidth > 0 && opts.ViewportHeight > 0 {
		contextOptions.Viewport = &playwright.Size{Width: opts.ViewportWidth, Height: opts.ViewportHeight}
	}
	bctx, err := browser.NewContext(contextOptions)
	if err != nil {
		return fmt.Errorf("failed to create context: %w", err)
	}
	s.context = bctx
	if opts.ActionTimeout > 0 {
		bctx.SetDefaultTimeout(float64(opts.ActionTimeout.Milliseconds()))
	}

	page, err := bctx.NewPage()
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	s.page = page

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = page.Goto(opts.TargetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   ms(opts.NavigationTimeout),
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %w", entities.ErrNavigation, opts.TargetURL, err)
	}
	return nil
}

func (s *Session) browserType(engine string) (playwright.BrowserType, error) {
	switch engine {
	case EngineChromium:
		return s.pw.Chromium, nil
	case EngineFirefox, "":
		return s.pw.Firefox, nil
	case EngineWebKit:
		return s.pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser engine %q", engine)
}

// Page returns the session's page
func (s *Session) Page() interfaces.Page {
	return NewPage(s.page)
}

// Release closes the context, the browser and the driver. It is safe to call
// more than once and on a partially acquired session.
func (s *Session) Release() error {
	if s.released {
		return nil
	}
	s.released = true

	var err error
	if s.context != nil {
		err = multierr.Append(err, ignoreClosed(s.context.Close(), "context"))
	}
	if s.browser != nil {
		err = multierr.Append(err, ignoreClosed(s.browser.Close(), "browser"))
	}
	if s.pw != nil {
		if stopErr := s.pw.Stop(); stopErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to stop playwright: %w", stopErr))
		}
	}

	if err != nil {
		s.log.WithError(err).Warn("session released with errors")
		return err
	}
	s.log.Debug("session released")
	return nil
}

func ignoreClosed(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTargetClosed) {
		return nil
	}
	return fmt.Errorf("failed to close %s: %w", what, err)
}

// WithSession runs fn against a fresh session and always releases it,
// including when fn fails or panics.
func WithSession(ctx context.Context, opts Options, logger *logrus.Logger, fn func(page interfaces.Page) error) (err error) {
	s, err := Acquire(ctx, opts, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Release())
	}()
	return fn(s.Page())
}

// Factory opens sessions with fixed options
type Factory struct {
	Options Options
	Logger  *logrus.Logger
}

var _ interfaces.SessionFactory = (*Factory)(nil)

// Acquire - opens a new session
func (f *Factory) Acquire(ctx context.Context) (interfaces.Session, error) {
	s, err := Acquire(ctx, f.Options, f.Logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Install downloads the playwright driver and the browser for engine
func Install(engine string) error {
	if engine == "" {
		engine = EngineFirefox
	}
	return playwright.Install(&playwright.RunOptions{Browsers: []string{engine}})
}
