package pages

import (
	"time"

	"formcheck/infrastructure/browser/fakebrowser"
	"formcheck/infrastructure/reporting"
)

const testURL = "http://form.test/automation-practice-form"

func testConfig() Config {
	return Config{
		TargetURL:  testURL,
		UploadFile: "/tmp/assets/FileImage.png",
		Timeouts: Timeouts{
			Assert:     50 * time.Millisecond,
			PageLoad:   50 * time.Millisecond,
			Validation: 50 * time.Millisecond,
			Dropdown:   50 * time.Millisecond,
			Poll:       time.Millisecond,
		},
	}
}

type fixture struct {
	form     *fakebrowser.PracticeForm
	recorder *reporting.Recorder
	page     *FormPage
	modal    *SubmitPage
}

func newFixture() *fixture {
	form := fakebrowser.NewPracticeForm(testURL)
	rec := reporting.NewRecorder()
	return &fixture{
		form:     form,
		recorder: rec,
		page:     NewFormPage(form, rec, testConfig()),
		modal:    NewSubmitPage(form, rec, testConfig()),
	}
}
