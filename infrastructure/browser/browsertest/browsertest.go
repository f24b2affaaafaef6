// Package browsertest serves a local replica of the practice form and opens
// real browser sessions against it. Tests using it skip when playwright or
// its browsers are not installed, or in -short mode.
package browsertest

import (
	_ "embed"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"formcheck/infrastructure/browser"
)

// FormPath is where the replica is served
const FormPath = "/automation-practice-form"

// EngineEnv selects the engine for browser tests; chromium when unset
const EngineEnv = "FORMCHECK_TEST_BROWSER"

//go:embed assets/practice_form.html
var practiceForm []byte

// 1x1 transparent PNG
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// NewServer starts the replica and closes it when the test ends
func NewServer(t testing.TB) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(FormPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(practiceForm)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// FormURL returns the replica URL on srv
func FormURL(srv *httptest.Server) string {
	return srv.URL + FormPath
}

// Options returns launch options suited to tests against url
func Options(url string) browser.Options {
	engine := os.Getenv(EngineEnv)
	if engine == "" {
		engine = browser.EngineChromium
	}
	return browser.Options{
		Engine:            engine,
		Headless:          true,
		ViewportWidth:     1280,
		ViewportHeight:    900,
		TargetURL:         url,
		NavigationTimeout: 15 * time.Second,
		ActionTimeout:     5 * time.Second,
	}
}

// Logger returns a logger that writes through t.Log
func Logger(t testing.TB) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(writer{t})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

type writer struct{ t testing.TB }

func (w writer) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// SkipIfUnavailable skips the test when err says playwright could not start
func SkipIfUnavailable(t testing.TB, err error) {
	t.Helper()
	if errors.Is(err, browser.ErrDriverUnavailable) {
		t.Skip("Playwright not available:", err)
	}
}

// RequireBrowser skips in -short mode
func RequireBrowser(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
}

// Session serves the replica and opens a session on it, released when the
// test ends. It returns the session and the form URL.
func Session(t testing.TB) (*browser.Session, string) {
	t.Helper()
	RequireBrowser(t)

	url := FormURL(NewServer(t))
	s, err := browser.Acquire(t.Context(), Options(url), Logger(t))
	if err != nil {
		SkipIfUnavailable(t, err)
		t.Fatalf("could not acquire session: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Release(); err != nil {
			t.Errorf("release session: %v", err)
		}
	})
	return s, url
}

// UploadFile writes a small PNG named FileImage.png and returns its path
func UploadFile(t testing.TB) string {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pixelPNG)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	path := filepath.Join(t.TempDir(), "FileImage.png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write upload file: %v", err)
	}
	return path
}
