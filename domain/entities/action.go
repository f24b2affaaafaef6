package entities

// ClickOptions tunes a single click
type ClickOptions struct {
	// Force skips actionability checks, so an overlay covering the
	// target does not intercept the click.
	Force bool
}

// Keys understood by Page.Press
const (
	KeyEscape = "Escape"
	KeyEnter  = "Enter"
)
