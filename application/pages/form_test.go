package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcheck/application/expect"
	"formcheck/domain/entities"
)

func TestVerifyPageLoaded(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.page.VerifyPageLoaded(context.Background()))
	assert.Equal(t, []string{"User verify form page"}, f.recorder.Steps())
	assert.Empty(t, f.recorder.Attachments())
}

func TestVerifyPageLoaded_WrongURLAttachesScreenshot(t *testing.T) {
	f := newFixture()
	f.form.SetURL("http://form.test/elsewhere")

	err := f.page.VerifyPageLoaded(context.Background())
	require.Error(t, err)

	var ae *expect.AssertionError
	require.ErrorAs(t, err, &ae)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Contains(t, err.Error(), "timeout while waiting for form page to load")

	atts := f.recorder.Attachments()
	require.Len(t, atts, 1)
	assert.Equal(t, "timeout-error", atts[0].Name)
	assert.Equal(t, entities.MimePNG, atts[0].MimeType)
	assert.NotEmpty(t, atts[0].Data)
	assert.Equal(t, []string{"User verify form page"}, f.recorder.Failed())
}

func TestVerifyPageLoaded_CanceledIsNotScreenshotted(t *testing.T) {
	f := newFixture()
	f.form.SetURL("http://form.test/elsewhere")
	cfg := testConfig()
	cfg.Timeouts.Assert = time.Minute
	page := NewFormPage(f.form, f.recorder, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timer := time.AfterFunc(20*time.Millisecond, cancel)
	defer timer.Stop()

	err := page.VerifyPageLoaded(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, entities.ErrTimeout)
	assert.Empty(t, f.recorder.Attachments())
	assert.Zero(t, f.form.Screenshots)
}

func TestVerifyPageLoaded_HeaderMissing(t *testing.T) {
	f := newFixture()
	f.form.Node(`h1:has-text("Practice Form")`).Visible = false

	err := f.page.VerifyPageLoaded(context.Background())
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Equal(t, 1, f.form.Screenshots)
}

func TestVerifyPageLoaded_LoadFailureIsNotScreenshotted(t *testing.T) {
	f := newFixture()
	f.form.LoadErr = errors.New("net::ERR_NAME_NOT_RESOLVED")

	err := f.page.VerifyPageLoaded(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrTimeout)
	assert.Zero(t, f.form.Screenshots)
}

func TestTextInputs(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.InputFirstName(ctx, "Jane"))
	require.NoError(t, f.page.InputLastName(ctx, "Doe"))
	require.NoError(t, f.page.InputEmail(ctx, "jane@example.com"))
	require.NoError(t, f.page.InputMobileNumber(ctx, "0123456789"))
	require.NoError(t, f.page.InputDateOfBirth(ctx, "01 Jan 2000"))
	require.NoError(t, f.page.InputCurrentAddress(ctx, "Jl. Sudirman 1"))

	assert.Equal(t, "Jane", f.form.Node("#firstName").Value)
	assert.Equal(t, "01 Jan 2000", f.form.Node("#dateOfBirthInput").Value)
	assert.Equal(t, []string{
		"User input first name",
		"User input last name",
		"User input user email",
		"User input mobile number",
		"User input date of birth",
		"User input current address",
	}, f.recorder.Steps())
}

func TestTextInput_ValueMismatch(t *testing.T) {
	f := newFixture()
	// a field that truncates its input
	f.form.Node("#userNumber").OnFill = func(v string) {
		if len(v) > 10 {
			f.form.Node("#userNumber").Value = v[:10]
		}
	}

	err := f.page.InputMobileNumber(context.Background(), "012345678901")
	var ae *expect.AssertionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "0123456789", ae.Actual)
}

func TestSelectGender(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.SelectGender(ctx, entities.GenderFemale))
	assert.Equal(t, []bool{false, true, false}, f.form.Genders())

	actions := f.form.Actions()
	assert.Equal(t, []string{
		`scroll label[for="gender-radio-2"]`,
		`click label[for="gender-radio-2"]`,
	}, actions)
}

func TestSelectGender_Unmapped(t *testing.T) {
	f := newFixture()

	err := f.page.SelectGender(context.Background(), entities.Gender("Robot"))
	assert.ErrorIs(t, err, entities.ErrUnknownLabel)
	assert.Empty(t, f.form.Actions())
}

func TestSelectHobbies(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.page.SelectHobbies(context.Background(), []entities.Hobby{entities.HobbySports, entities.HobbyMusic}))
	assert.Equal(t, []bool{true, false, true}, f.form.Hobbies())
}

func TestSelectHobbies_UnmappedAfterValid(t *testing.T) {
	f := newFixture()

	err := f.page.SelectHobbies(context.Background(), []entities.Hobby{entities.HobbyReading, "Gaming"})
	assert.ErrorIs(t, err, entities.ErrUnknownLabel)
	assert.Contains(t, err.Error(), `hobby "Gaming"`)
	assert.Equal(t, []bool{false, true, false}, f.form.Hobbies())
}

func TestSubjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.InputSubjects(ctx, []string{"Maths", "Physics", "English"}))
	got, err := f.page.Subjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Maths", "Physics", "English"}, got)

	require.NoError(t, f.page.RemoveSubject(ctx, "Physics"))
	got, err = f.page.Subjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Maths", "English"}, got)

	require.NoError(t, f.page.ClearSubjects(ctx))
	assert.Empty(t, f.form.SelectedSubjects())
}

func TestInputSubjects_NoSuggestion(t *testing.T) {
	f := newFixture()

	err := f.page.InputSubjects(context.Background(), []string{"Astrology"})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Contains(t, err.Error(), `has-text("Astrology")`)
}

func TestRemoveSubject_Absent(t *testing.T) {
	f := newFixture()

	err := f.page.RemoveSubject(context.Background(), "Maths")
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Equal(t, []string{"User remove a value subject Maths"}, f.recorder.Failed())
}

func TestUploadPicture(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.page.UploadPicture(context.Background()))
	assert.Equal(t, `C:\fakepath\FileImage.png`, f.form.Node("#uploadPicture").Value)
}

func TestUploadPicture_NotConfigured(t *testing.T) {
	f := newFixture()
	cfg := testConfig()
	cfg.UploadFile = ""
	page := NewFormPage(f.form, nil, cfg)

	assert.False(t, page.CanUpload())
	assert.True(t, f.page.CanUpload())
	assert.Error(t, page.UploadPicture(context.Background()))
}

func TestSelectStateAndCity(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.SelectState(ctx, "NCR"))
	require.NoError(t, f.page.SelectCity(ctx, "Delhi"))
	assert.Equal(t, "NCR", f.form.Node("#state").Text)
	assert.Equal(t, "Delhi", f.form.Node("#city").Text)
}

func TestSelectCity_OptionNeverAppears(t *testing.T) {
	f := newFixture()

	// no state picked, so the city menu stays empty
	err := f.page.SelectCity(context.Background(), "Delhi")
	assert.ErrorIs(t, err, entities.ErrTimeout)
}

func TestSubmit_EmptyFormShowsRequiredFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.Submit(ctx))
	require.NoError(t, f.page.VerifyRequiredFields(ctx))
	assert.False(t, f.form.ModalOpen())
	assert.Zero(t, f.form.Submissions)
}

func TestVerifyRequiredFields_FailsWhenFilled(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	require.NoError(t, f.page.InputFirstName(ctx, "Jane"))

	err := f.page.VerifyRequiredFields(ctx)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Contains(t, err.Error(), "#firstName:invalid")
}

func TestVerifyInvalidFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.Fill(ctx, entities.FormData{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.example.com",
		Gender:       entities.GenderFemale,
		MobileNumber: "12345",
	}))
	require.NoError(t, f.page.Submit(ctx))
	require.NoError(t, f.page.VerifyInvalidFields(ctx))

	// only those two fields are flagged
	assert.Nil(t, f.form.Node("#firstName:invalid"))
	assert.Nil(t, f.form.Node("#lastName:invalid"))
	assert.Nil(t, f.form.Node(`input[name="gender"]:invalid`))
	assert.False(t, f.form.ModalOpen())
}

func TestFill_SkipsEmptyFields(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.page.Fill(context.Background(), entities.FormData{FirstName: "Jane", State: "Haryana"}))
	assert.Equal(t, []string{"User input first name", "User select state Haryana"}, f.recorder.Steps())
}

func TestFill_Complete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.Fill(ctx, entities.FormData{
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Gender:         entities.GenderFemale,
		MobileNumber:   "0812345678",
		DateOfBirth:    "10 Feb 1995",
		Subjects:       []string{"Maths", "Arts"},
		Hobbies:        []entities.Hobby{entities.HobbyReading},
		UploadPicture:  true,
		CurrentAddress: "Jakarta",
		State:          "Uttar Pradesh",
		City:           "Lucknow",
	}))
	require.NoError(t, f.page.Submit(ctx))
	assert.True(t, f.form.ModalOpen())
	assert.Empty(t, f.recorder.Failed())
}
