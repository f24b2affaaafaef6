package expect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"formcheck/domain/interfaces"
)

// AssertionError is a failed auto-waiting assertion
type AssertionError struct {
	Assertion string
	Target    string
	Expected  string
	Actual    string
	Err       error
}

func (e *AssertionError) Error() string {
	msg := fmt.Sprintf("expect(%s).%s", e.Target, e.Assertion)
	if e.Expected != "" {
		msg += fmt.Sprintf(": expected %q", e.Expected)
		if e.Actual != "" {
			msg += fmt.Sprintf(", got %q", e.Actual)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}

// Option tunes a single assertion
type Option func(*options)

type options struct {
	timeout  time.Duration
	interval time.Duration
}

// WithTimeout overrides the deadline of one assertion
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithInterval overrides the poll interval of one assertion
func WithInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

func buildOptions(opts []Option) options {
	o := options{timeout: DefaultTimeout, interval: DefaultInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LocatorAssertions polls element state
type LocatorAssertions struct {
	el   interfaces.Element
	opts options
}

// Locator - starts an assertion chain on el
func Locator(el interfaces.Element, opts ...Option) *LocatorAssertions {
	return &LocatorAssertions{el: el, opts: buildOptions(opts)}
}

func (a *LocatorAssertions) run(ctx context.Context, name, expected string, read func(ctx context.Context) (string, bool, error)) error {
	var actual string
	err := Poll(ctx, a.opts.timeout, a.opts.interval, func(ctx context.Context) (bool, error) {
		got, ok, err := read(ctx)
		actual = got
		return ok, err
	})
	if err != nil {
		return &AssertionError{Assertion: name, Target: a.el.String(), Expected: expected, Actual: actual, Err: err}
	}
	return nil
}

// ToBeVisible waits until at least one matched element is visible
func (a *LocatorAssertions) ToBeVisible(ctx context.Context) error {
	return a.run(ctx, "toBeVisible", "", func(ctx context.Context) (string, bool, error) {
		ok, err := a.el.IsVisible(ctx)
		return "", ok, err
	})
}

// ToBeHidden waits until nothing matched is visible, including when nothing matches
func (a *LocatorAssertions) ToBeHidden(ctx context.Context) error {
	return a.run(ctx, "toBeHidden", "", func(ctx context.Context) (string, bool, error) {
		ok, err := a.el.IsVisible(ctx)
		return "", err == nil && !ok, err
	})
}

// ToBeChecked waits until the element is checked
func (a *LocatorAssertions) ToBeChecked(ctx context.Context) error {
	return a.run(ctx, "toBeChecked", "", func(ctx context.Context) (string, bool, error) {
		ok, err := a.el.IsChecked(ctx)
		return "", ok, err
	})
}

// ToHaveValue waits until the input value equals want exactly
func (a *LocatorAssertions) ToHaveValue(ctx context.Context, want string) error {
	return a.run(ctx, "toHaveValue", want, func(ctx context.Context) (string, bool, error) {
		got, err := a.el.InputValue(ctx)
		return got, err == nil && got == want, err
	})
}

// ToContainValue waits until the input value contains want
func (a *LocatorAssertions) ToContainValue(ctx context.Context, want string) error {
	return a.run(ctx, "toContainValue", want, func(ctx context.Context) (string, bool, error) {
		got, err := a.el.InputValue(ctx)
		return got, err == nil && strings.Contains(got, want), err
	})
}

// ToContainText waits until the text content contains want
func (a *LocatorAssertions) ToContainText(ctx context.Context, want string) error {
	return a.run(ctx, "toContainText", want, func(ctx context.Context) (string, bool, error) {
		got, err := a.el.TextContent(ctx)
		return got, err == nil && strings.Contains(got, want), err
	})
}

// PageAssertions polls page state
type PageAssertions struct {
	page interfaces.Page
	opts options
}

// Page - starts an assertion chain on page
func Page(page interfaces.Page, opts ...Option) *PageAssertions {
	return &PageAssertions{page: page, opts: buildOptions(opts)}
}

// ToHaveURL waits until the page URL equals want
func (a *PageAssertions) ToHaveURL(ctx context.Context, want string) error {
	var got string
	err := Poll(ctx, a.opts.timeout, a.opts.interval, func(ctx context.Context) (bool, error) {
		got = a.page.URL()
		return got == want, nil
	})
	if err != nil {
		return &AssertionError{Assertion: "toHaveURL", Target: "page", Expected: want, Actual: got, Err: err}
	}
	return nil
}
