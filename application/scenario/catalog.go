package scenario

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"formcheck/application/pages"
	"formcheck/domain/entities"
)

// Pages are the page objects a scenario drives, bound to one session
type Pages struct {
	Form   *pages.FormPage
	Submit *pages.SubmitPage
}

// Scenario is a named, ordered sequence of page object actions
type Scenario struct {
	Name        string
	Description string
	Run         func(ctx context.Context, p Pages) error
}

// Jane is the applicant used by the submit scenarios
var Jane = entities.FormData{
	FirstName:    "Jane",
	LastName:     "Doe",
	Email:        "jane.doe@example.com",
	Gender:       entities.GenderFemale,
	MobileNumber: "0812345678",
}

func sequence(ctx context.Context, actions ...func(context.Context) error) error {
	for _, action := range actions {
		if err := action(ctx); err != nil {
			return err
		}
	}
	return nil
}

func fill(p Pages, data entities.FormData) func(context.Context) error {
	return func(ctx context.Context) error { return p.Form.Fill(ctx, data) }
}

// Catalog returns the built-in scenarios in run order
func Catalog() []Scenario {
	return []Scenario{
		{
			Name:        "submit-escape",
			Description: "submit the required fields, then dismiss the confirmation with escape",
			Run: func(ctx context.Context, p Pages) error {
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					fill(p, Jane),
					p.Form.Submit,
					p.Submit.VerifyModal,
					p.Submit.DismissWithEscape,
					p.Form.VerifyHeaderVisible,
				)
			},
		},
		{
			Name:        "submit-close",
			Description: "submit the required fields, then dismiss the confirmation with the close button",
			Run: func(ctx context.Context, p Pages) error {
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					fill(p, Jane),
					p.Form.Submit,
					p.Submit.VerifyModal,
					p.Submit.DismissWithClose,
				)
			},
		},
		{
			Name:        "required-fields",
			Description: "submit an empty form and expect the required fields to be flagged",
			Run: func(ctx context.Context, p Pages) error {
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					p.Form.Submit,
					p.Form.VerifyRequiredFields,
					p.Submit.VerifyNotShown,
				)
			},
		},
		{
			Name:        "invalid-fields",
			Description: "submit a malformed email and mobile number and expect both to be flagged",
			Run: func(ctx context.Context, p Pages) error {
				data := Jane
				data.Email = "jane.doe@"
				data.MobileNumber = "08123"
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					fill(p, data),
					p.Form.Submit,
					p.Form.VerifyInvalidFields,
					p.Submit.VerifyNotShown,
				)
			},
		},
		{
			Name:        "subjects-roundtrip",
			Description: "add subjects, remove one, then clear the rest",
			Run: func(ctx context.Context, p Pages) error {
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					func(ctx context.Context) error {
						return p.Form.InputSubjects(ctx, []string{"Maths", "Physics", "Arts"})
					},
					func(ctx context.Context) error { return p.Form.RemoveSubject(ctx, "Physics") },
					func(ctx context.Context) error {
						return expectSubjects(ctx, p, "Maths", "Arts")
					},
					p.Form.ClearSubjects,
					func(ctx context.Context) error { return expectSubjects(ctx, p) },
				)
			},
		},
		{
			Name:        "full-form",
			Description: "fill every field, submit and close the confirmation; the picture is skipped when no upload file is configured",
			Run: func(ctx context.Context, p Pages) error {
				data := Jane
				data.DateOfBirth = "10 Feb 1995"
				data.Subjects = []string{"Maths", "Computer Science"}
				data.Hobbies = []entities.Hobby{entities.HobbySports, entities.HobbyMusic}
				data.UploadPicture = p.Form.CanUpload()
				data.CurrentAddress = "Jl. Sudirman 1, Jakarta"
				data.State = "NCR"
				data.City = "Delhi"
				return sequence(ctx,
					p.Form.VerifyPageLoaded,
					fill(p, data),
					p.Form.Submit,
					p.Submit.VerifyModal,
					p.Submit.DismissWithClose,
				)
			},
		},
	}
}

func expectSubjects(ctx context.Context, p Pages, want ...string) error {
	got, err := p.Form.Subjects(ctx)
	if err != nil {
		return err
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("subjects: expected %q, got %q", want, got)
	}
	return nil
}

// Select returns the named scenarios in catalog order, or all of them when
// names is empty
func Select(names ...string) ([]Scenario, error) {
	all := Catalog()
	if len(names) == 0 {
		return all, nil
	}

	var unknown []string
	for _, name := range names {
		if !slices.ContainsFunc(all, func(s Scenario) bool { return s.Name == name }) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown scenario %s", strings.Join(unknown, ", "))
	}

	var selected []Scenario
	for _, s := range all {
		if slices.Contains(names, s.Name) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}
