// Package pages wraps the practice form and its confirmation modal behind
// semantic actions. Every action drives the UI and then waits for the state
// it is expected to produce.
package pages

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"formcheck/application/expect"
	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
	"formcheck/domain/locators"
)

// FormPage drives the practice form
type FormPage struct {
	page     interfaces.Page
	reporter interfaces.StepReporter
	cfg      Config
	genders  labelIndex
	hobbies  labelIndex
}

// NewFormPage - creates the form page object. A nil reporter discards steps.
func NewFormPage(page interfaces.Page, reporter interfaces.StepReporter, cfg Config) *FormPage {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &FormPage{
		page:     page,
		reporter: reporter,
		cfg:      cfg.withDefaults(),
		genders:  genderIndex,
		hobbies:  hobbyIndex,
	}
}

func (f *FormPage) locate(loc entities.Locator) interfaces.Element {
	return f.page.Locate(loc)
}

func (f *FormPage) expect(el interfaces.Element, opts ...expect.Option) *expect.LocatorAssertions {
	base := []expect.Option{expect.WithTimeout(f.cfg.Timeouts.Assert), expect.WithInterval(f.cfg.Timeouts.Poll)}
	return expect.Locator(el, append(base, opts...)...)
}

// VerifyPageLoaded checks the form header is visible and the page sits at the
// target URL. On timeout a screenshot is attached before failing.
func (f *FormPage) VerifyPageLoaded(ctx context.Context) error {
	return step(f.reporter, "User verify form page", func() error {
		err := f.verifyLoaded(ctx)
		if err == nil || !errors.Is(err, entities.ErrTimeout) {
			return err
		}

		if shot, serr := f.page.Screenshot(ctx); serr == nil {
			f.reporter.Attach(entities.Attachment{Name: "timeout-error", MimeType: entities.MimePNG, Data: shot})
		}
		return &expect.AssertionError{
			Assertion: "pageLoaded",
			Target:    f.cfg.TargetURL,
			Err:       fmt.Errorf("timeout while waiting for form page to load (domcontentloaded): %w", err),
		}
	})
}

func (f *FormPage) verifyLoaded(ctx context.Context) error {
	timeout := f.cfg.Timeouts.PageLoad
	if err := f.page.WaitForLoad(ctx, timeout); err != nil {
		return err
	}
	if err := f.expect(f.locate(locators.FormHeader), expect.WithTimeout(timeout)).ToBeVisible(ctx); err != nil {
		return err
	}
	return expect.Page(f.page, expect.WithTimeout(f.cfg.Timeouts.Assert), expect.WithInterval(f.cfg.Timeouts.Poll)).
		ToHaveURL(ctx, f.cfg.TargetURL)
}

// VerifyHeaderVisible checks the form header is shown, e.g. after the modal closes
func (f *FormPage) VerifyHeaderVisible(ctx context.Context) error {
	return step(f.reporter, "User verify form header", func() error {
		return f.expect(f.locate(locators.FormHeader)).ToBeVisible(ctx)
	})
}

func (f *FormPage) fillExact(ctx context.Context, name string, loc entities.Locator, value string) error {
	return step(f.reporter, name, func() error {
		el := f.locate(loc)
		if err := el.Fill(ctx, value); err != nil {
			return err
		}
		return f.expect(el).ToHaveValue(ctx, value)
	})
}

func (f *FormPage) InputFirstName(ctx context.Context, firstName string) error {
	return f.fillExact(ctx, "User input first name", locators.FirstName, firstName)
}

func (f *FormPage) InputLastName(ctx context.Context, lastName string) error {
	return f.fillExact(ctx, "User input last name", locators.LastName, lastName)
}

func (f *FormPage) InputEmail(ctx context.Context, email string) error {
	return f.fillExact(ctx, "User input user email", locators.Email, email)
}

func (f *FormPage) InputMobileNumber(ctx context.Context, number string) error {
	return f.fillExact(ctx, "User input mobile number", locators.MobileNumber, number)
}

// InputDateOfBirth types a date in the widget's own format, e.g. "17 Oct 2000"
func (f *FormPage) InputDateOfBirth(ctx context.Context, date string) error {
	return step(f.reporter, "User input date of birth", func() error {
		dob := f.locate(locators.DateOfBirth)
		if err := f.expect(dob).ToBeVisible(ctx); err != nil {
			return err
		}
		if err := dob.Fill(ctx, date); err != nil {
			return err
		}
		return f.expect(dob).ToHaveValue(ctx, date)
	})
}

// pick scrolls an option label into view, clicks it and waits for its input to be checked
func (f *FormPage) pick(ctx context.Context, label, input entities.Locator) error {
	el := f.locate(label)
	if err := el.ScrollIntoView(ctx); err != nil {
		return err
	}
	if err := el.Click(ctx, entities.ClickOptions{}); err != nil {
		return err
	}
	return f.expect(f.locate(input)).ToBeChecked(ctx)
}

// SelectGender checks the radio for gender. Unknown labels fail with ErrUnknownLabel.
func (f *FormPage) SelectGender(ctx context.Context, gender entities.Gender) error {
	return step(f.reporter, "User select gender", func() error {
		i, err := f.genders.lookup(string(gender))
		if err != nil {
			return err
		}
		return f.pick(ctx, locators.GenderLabel.Format(i), locators.GenderRadio.Format(i))
	})
}

// SelectHobbies checks the checkbox of every hobby in order
func (f *FormPage) SelectHobbies(ctx context.Context, hobbies []entities.Hobby) error {
	return step(f.reporter, "User select hobbies", func() error {
		for _, hobby := range hobbies {
			i, err := f.hobbies.lookup(string(hobby))
			if err != nil {
				return err
			}
			if err := f.pick(ctx, locators.HobbyLabel.Format(i), locators.HobbyCheckbox.Format(i)); err != nil {
				return err
			}
		}
		return nil
	})
}

// InputSubjects types each subject, picks its suggestion and waits for its chip
func (f *FormPage) InputSubjects(ctx context.Context, subjects []string) error {
	return step(f.reporter, "User input subject", func() error {
		input := f.locate(locators.SubjectInput)
		if err := f.expect(input).ToBeVisible(ctx); err != nil {
			return err
		}

		for _, subject := range subjects {
			if err := input.Fill(ctx, subject); err != nil {
				return err
			}
			option := f.locate(locators.SubjectOption.HasText(subject))
			if err := f.expect(option).ToBeVisible(ctx); err != nil {
				return err
			}
			if err := option.Click(ctx, entities.ClickOptions{}); err != nil {
				return err
			}
			if err := f.expect(f.locate(locators.SubjectChip.HasText(subject))).ToBeVisible(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveSubject clicks the remove control of a chip and waits for the chip to go
func (f *FormPage) RemoveSubject(ctx context.Context, subject string) error {
	return step(f.reporter, fmt.Sprintf("User remove a value subject %s", subject), func() error {
		chip := f.locate(locators.SubjectChip.HasText(subject))
		if err := f.expect(chip).ToBeVisible(ctx); err != nil {
			return err
		}
		if err := chip.Within(locators.SubjectRemove).Click(ctx, entities.ClickOptions{}); err != nil {
			return err
		}
		return f.expect(chip).ToBeHidden(ctx)
	})
}

// ClearSubjects removes every chip via the clear control
func (f *FormPage) ClearSubjects(ctx context.Context) error {
	return step(f.reporter, "User clear subject", func() error {
		clearBtn := f.locate(locators.SubjectsClear)
		if err := clearBtn.Click(ctx, entities.ClickOptions{}); err != nil {
			return err
		}
		return f.expect(clearBtn).ToBeHidden(ctx)
	})
}

// Subjects returns the labels of the current chips in display order
func (f *FormPage) Subjects(ctx context.Context) ([]string, error) {
	return f.locate(locators.SubjectLabel).AllTextContents(ctx)
}

// CanUpload reports whether an upload file is configured
func (f *FormPage) CanUpload() bool {
	return f.cfg.UploadFile != ""
}

// UploadPicture sets the configured upload file on the picture input
func (f *FormPage) UploadPicture(ctx context.Context) error {
	return step(f.reporter, "User upload picture", func() error {
		if f.cfg.UploadFile == "" {
			return errors.New("upload file is not configured")
		}
		input := f.locate(locators.UploadPicture)
		if err := input.SetInputFiles(ctx, f.cfg.UploadFile); err != nil {
			return err
		}
		return f.expect(input).ToContainValue(ctx, filepath.Base(f.cfg.UploadFile))
	})
}

func (f *FormPage) InputCurrentAddress(ctx context.Context, address string) error {
	return step(f.reporter, "User input current address", func() error {
		el := f.locate(locators.CurrentAddress)
		if err := el.Fill(ctx, address); err != nil {
			return err
		}
		return f.expect(el).ToBeVisible(ctx)
	})
}

// choose opens a searchable dropdown, picks the option with label and waits
// for the dropdown to show it
func (f *FormPage) choose(ctx context.Context, dropdown, options entities.Locator, label string) error {
	dd := f.locate(dropdown)
	within := expect.WithTimeout(f.cfg.Timeouts.Dropdown)
	if err := f.expect(dd, within).ToBeVisible(ctx); err != nil {
		return err
	}
	if err := dd.ScrollIntoView(ctx); err != nil {
		return err
	}
	if err := dd.Click(ctx, entities.ClickOptions{}); err != nil {
		return err
	}

	option := f.locate(options.HasText(label))
	if err := f.expect(option, within).ToBeVisible(ctx); err != nil {
		return err
	}
	if err := option.Click(ctx, entities.ClickOptions{}); err != nil {
		return err
	}
	return f.expect(dd).ToContainText(ctx, label)
}

func (f *FormPage) SelectState(ctx context.Context, state string) error {
	return step(f.reporter, fmt.Sprintf("User select state %s", state), func() error {
		return f.choose(ctx, locators.StateDropdown, locators.StateOption, state)
	})
}

func (f *FormPage) SelectCity(ctx context.Context, city string) error {
	return step(f.reporter, fmt.Sprintf("User select city %s", city), func() error {
		return f.choose(ctx, locators.CityDropdown, locators.CityOption, city)
	})
}

// Submit clicks submit. Callers verify which state the page ends up in.
func (f *FormPage) Submit(ctx context.Context) error {
	return step(f.reporter, "User click submit button", func() error {
		return f.locate(locators.Submit).Click(ctx, entities.ClickOptions{})
	})
}

// VerifyRequiredFields waits for first name, last name, gender and mobile number to be flagged invalid
func (f *FormPage) VerifyRequiredFields(ctx context.Context) error {
	return step(f.reporter, "User verify required field", func() error {
		within := expect.WithTimeout(f.cfg.Timeouts.Validation)
		for _, el := range []interfaces.Element{
			f.locate(locators.FirstName.Invalid()),
			f.locate(locators.LastName.Invalid()),
			f.locate(locators.GenderInputs.Invalid()).First(),
			f.locate(locators.MobileNumber.Invalid()),
		} {
			if err := f.expect(el, within).ToBeVisible(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// VerifyInvalidFields waits for email and mobile number to be flagged invalid
func (f *FormPage) VerifyInvalidFields(ctx context.Context) error {
	return step(f.reporter, "User verify invalid field email and mobile number", func() error {
		if err := f.expect(f.locate(locators.Email.Invalid())).ToBeVisible(ctx); err != nil {
			return err
		}
		return f.expect(f.locate(locators.MobileNumber.Invalid())).ToBeVisible(ctx)
	})
}

// Fill drives every populated field of data in form order
func (f *FormPage) Fill(ctx context.Context, data entities.FormData) error {
	type action struct {
		set bool
		run func() error
	}
	actions := []action{
		{data.FirstName != "", func() error { return f.InputFirstName(ctx, data.FirstName) }},
		{data.LastName != "", func() error { return f.InputLastName(ctx, data.LastName) }},
		{data.Email != "", func() error { return f.InputEmail(ctx, data.Email) }},
		{data.Gender != "", func() error { return f.SelectGender(ctx, data.Gender) }},
		{data.MobileNumber != "", func() error { return f.InputMobileNumber(ctx, data.MobileNumber) }},
		{data.DateOfBirth != "", func() error { return f.InputDateOfBirth(ctx, data.DateOfBirth) }},
		{len(data.Subjects) > 0, func() error { return f.InputSubjects(ctx, data.Subjects) }},
		{len(data.Hobbies) > 0, func() error { return f.SelectHobbies(ctx, data.Hobbies) }},
		{data.UploadPicture, func() error { return f.UploadPicture(ctx) }},
		{data.CurrentAddress != "", func() error { return f.InputCurrentAddress(ctx, data.CurrentAddress) }},
		{data.State != "", func() error { return f.SelectState(ctx, data.State) }},
		{data.City != "", func() error { return f.SelectCity(ctx, data.City) }},
	}
	for _, a := range actions {
		if !a.set {
			continue
		}
		if err := a.run(); err != nil {
			return err
		}
	}
	return nil
}
