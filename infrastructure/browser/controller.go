package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// probeTimeoutMS bounds reads that playwright would otherwise auto-wait on.
// Waiting is done by the caller's poll loop.
const probeTimeoutMS = 250

type pageController struct {
	page playwright.Page
}

// NewPage - wraps a playwright page
func NewPage(page playwright.Page) interfaces.Page {
	return &pageController{page: page}
}

func (p *pageController) URL() string {
	return p.page.URL()
}

func (p *pageController) Locate(loc entities.Locator) interfaces.Element {
	var l playwright.Locator
	if loc.Kind == entities.LocatorRole {
		l = p.page.GetByRole(playwright.AriaRole(loc.Role), playwright.PageGetByRoleOptions{
			Name:  loc.Name,
			Exact: playwright.Bool(true),
		})
	} else {
		l = p.page.Locator(loc.Selector)
	}
	return &elementController{locator: l, desc: loc.String()}
}

func (p *pageController) Press(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.page.Keyboard().Press(key)
}

func (p *pageController) WaitForLoad(ctx context.Context, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: ms(timeout),
	})
	return translate(err)
}

func (p *pageController) Screenshot(ctx context.Context) ([]byte, error) {
	return p.page.Screenshot()
}

type elementController struct {
	locator playwright.Locator
	desc    string
}

func (e *elementController) Fill(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(e.locator.Fill(value))
}

func (e *elementController) Click(ctx context.Context, opts entities.ClickOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(e.locator.Click(playwright.LocatorClickOptions{
		Force: playwright.Bool(opts.Force),
	}))
}

func (e *elementController) ScrollIntoView(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(e.locator.ScrollIntoViewIfNeeded())
}

func (e *elementController) SetInputFiles(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return translate(e.locator.SetInputFiles(path))
}

func (e *elementController) InputValue(ctx context.Context) (string, error) {
	v, err := e.locator.InputValue(playwright.LocatorInputValueOptions{Timeout: playwright.Float(probeTimeoutMS)})
	return v, translate(err)
}

func (e *elementController) IsVisible(ctx context.Context) (bool, error) {
	return e.locator.IsVisible()
}

func (e *elementController) IsChecked(ctx context.Context) (bool, error) {
	ok, err := e.locator.IsChecked(playwright.LocatorIsCheckedOptions{Timeout: playwright.Float(probeTimeoutMS)})
	return ok, translate(err)
}

func (e *elementController) TextContent(ctx context.Context) (string, error) {
	text, err := e.locator.TextContent(playwright.LocatorTextContentOptions{Timeout: playwright.Float(probeTimeoutMS)})
	return text, translate(err)
}

func (e *elementController) AllTextContents(ctx context.Context) ([]string, error) {
	return e.locator.AllTextContents()
}

func (e *elementController) Count(ctx context.Context) (int, error) {
	return e.locator.Count()
}

func (e *elementController) First() interfaces.Element {
	return &elementController{locator: e.locator.First(), desc: e.desc + " >> nth=0"}
}

func (e *elementController) Within(loc entities.Locator) interfaces.Element {
	var l playwright.Locator
	if loc.Kind == entities.LocatorRole {
		l = e.locator.GetByRole(playwright.AriaRole(loc.Role), playwright.LocatorGetByRoleOptions{
			Name:  loc.Name,
			Exact: playwright.Bool(true),
		})
	} else {
		l = e.locator.Locator(loc.Selector)
	}
	return &elementController{locator: l, desc: e.desc + " >> " + loc.String()}
}

func (e *elementController) String() string {
	return e.desc
}

// translate maps playwright failures onto the domain sentinels
func translate(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "intercepts pointer events") {
		return fmt.Errorf("%w: %w", entities.ErrClickIntercepted, err)
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return fmt.Errorf("%w: %w", entities.ErrTimeout, err)
	}
	return err
}

func ms(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}
