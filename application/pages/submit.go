package pages

import (
	"context"

	"formcheck/application/expect"
	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
	"formcheck/domain/locators"
)

// ConfirmationTitle is shown in the modal header after a valid submit
const ConfirmationTitle = "Thanks for submitting the form"

// SubmitPage drives the confirmation modal shown after a valid submit
type SubmitPage struct {
	page     interfaces.Page
	reporter interfaces.StepReporter
	cfg      Config
}

// NewSubmitPage - creates the confirmation page object. A nil reporter discards steps.
func NewSubmitPage(page interfaces.Page, reporter interfaces.StepReporter, cfg Config) *SubmitPage {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &SubmitPage{page: page, reporter: reporter, cfg: cfg.withDefaults()}
}

func (s *SubmitPage) expect(loc entities.Locator) *expect.LocatorAssertions {
	return expect.Locator(s.page.Locate(loc),
		expect.WithTimeout(s.cfg.Timeouts.Assert), expect.WithInterval(s.cfg.Timeouts.Poll))
}

// VerifyModal checks header and body are shown and the header confirms the submit
func (s *SubmitPage) VerifyModal(ctx context.Context) error {
	return step(s.reporter, "User verify header modal page", func() error {
		if err := s.expect(locators.ModalHeader).ToBeVisible(ctx); err != nil {
			return err
		}
		if err := s.expect(locators.ModalHeader).ToContainText(ctx, ConfirmationTitle); err != nil {
			return err
		}
		return s.expect(locators.ModalBody).ToBeVisible(ctx)
	})
}

// DismissWithEscape closes the modal from the keyboard
func (s *SubmitPage) DismissWithEscape(ctx context.Context) error {
	return step(s.reporter, "User press escape", func() error {
		if err := s.page.Press(ctx, entities.KeyEscape); err != nil {
			return err
		}
		return s.expect(locators.ModalBody).ToBeHidden(ctx)
	})
}

// DismissWithClose force-clicks the close button, since the modal backdrop may
// sit above it, and waits for the modal body to go and the form header to be visible.
func (s *SubmitPage) DismissWithClose(ctx context.Context) error {
	return step(s.reporter, "User close modal button", func() error {
		if err := s.expect(locators.ModalClose).ToBeVisible(ctx); err != nil {
			return err
		}
		closeBtn := s.page.Locate(locators.ModalClose)
		if err := closeBtn.ScrollIntoView(ctx); err != nil {
			return err
		}
		if err := closeBtn.Click(ctx, entities.ClickOptions{Force: true}); err != nil {
			return err
		}
		// the header stays visible behind an open modal, so check the body first
		if err := s.expect(locators.ModalBody).ToBeHidden(ctx); err != nil {
			return err
		}
		return s.expect(locators.FormHeader).ToBeVisible(ctx)
	})
}

// VerifyNotShown checks the submit was rejected and no modal opened
func (s *SubmitPage) VerifyNotShown(ctx context.Context) error {
	return step(s.reporter, "User verify modal not shown", func() error {
		return s.expect(locators.ModalBody).ToBeHidden(ctx)
	})
}
