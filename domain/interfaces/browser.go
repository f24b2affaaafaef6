package interfaces

import (
	"context"
	"time"

	"formcheck/domain/entities"
)

// Page defines the browser tab the page objects drive
type Page interface {
	// URL returns the current page URL
	URL() string

	// Locate returns a lazily resolved handle for loc
	Locate(loc entities.Locator) Element

	// Press sends a key to the focused element
	Press(ctx context.Context, key string) error

	// WaitForLoad blocks until the DOM content has loaded
	WaitForLoad(ctx context.Context, timeout time.Duration) error

	// Screenshot captures the viewport as PNG
	Screenshot(ctx context.Context) ([]byte, error)
}

// Element is a lazy handle to whatever a locator matches at call time.
// Implementations never cache the underlying DOM node.
type Element interface {
	Fill(ctx context.Context, value string) error
	Click(ctx context.Context, opts entities.ClickOptions) error
	ScrollIntoView(ctx context.Context) error
	SetInputFiles(ctx context.Context, path string) error

	// Reads below never wait: they report the state right now
	InputValue(ctx context.Context) (string, error)
	IsVisible(ctx context.Context) (bool, error)
	IsChecked(ctx context.Context) (bool, error)
	TextContent(ctx context.Context) (string, error)
	AllTextContents(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int, error)

	// First narrows the match to its first element
	First() Element

	// Within resolves loc relative to this element
	Within(loc entities.Locator) Element

	// String describes the locator for diagnostics
	String() string
}

// Session is one isolated browser context holding one navigable page
type Session interface {
	Page() Page
	Release() error
}

// SessionFactory opens a fresh session already navigated to the target URL
type SessionFactory interface {
	Acquire(ctx context.Context) (Session, error)
}
