package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcheck/domain/entities"
	"formcheck/domain/locators"
)

func submitValid(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.page.Fill(ctx, entities.FormData{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane.doe@example.com",
		Gender:       entities.GenderFemale,
		MobileNumber: "0812345678",
	}))
	require.NoError(t, f.page.Submit(ctx))
}

func TestSubmit_EscapeReturnsToForm(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	submitValid(t, f)

	require.NoError(t, f.modal.VerifyModal(ctx))
	require.NoError(t, f.modal.DismissWithEscape(ctx))
	require.NoError(t, f.page.VerifyHeaderVisible(ctx))
	assert.False(t, f.form.ModalOpen())
}

func TestSubmit_CloseReturnsToForm(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	submitValid(t, f)

	require.NoError(t, f.modal.VerifyModal(ctx))
	require.NoError(t, f.modal.DismissWithClose(ctx))
	assert.False(t, f.form.ModalOpen())
	assert.Contains(t, f.form.Actions(), `click! role=button[name="Close"]`)
}

func TestDismissWithClose_ToleratesOverlay(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.form.CoverClose = true
	submitValid(t, f)

	require.NoError(t, f.modal.DismissWithClose(ctx))
	assert.False(t, f.form.ModalOpen())
}

func TestDismissWithClose_ModalStaysOpen(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	submitValid(t, f)
	f.form.Node(locators.ModalClose.String()).OnClick = nil

	require.NoError(t, f.page.VerifyHeaderVisible(ctx))
	err := f.modal.DismissWithClose(ctx)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Contains(t, err.Error(), "toBeHidden")
	assert.True(t, f.form.ModalOpen())
}

func TestOverlayIsNotToleratedElsewhere(t *testing.T) {
	f := newFixture()
	f.form.Node("#submit").Covered = true

	err := f.page.Submit(context.Background())
	assert.ErrorIs(t, err, entities.ErrClickIntercepted)
}

func TestVerifyModal_NotShown(t *testing.T) {
	f := newFixture()

	err := f.modal.VerifyModal(context.Background())
	assert.ErrorIs(t, err, entities.ErrTimeout)
}

func TestDismissWithEscape_ModalStuck(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	submitValid(t, f)
	f.form.OnKey(entities.KeyEscape, func() {})

	err := f.modal.DismissWithEscape(ctx)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Contains(t, err.Error(), "toBeHidden")
}

func TestModal_ReusableAfterDismiss(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	submitValid(t, f)
	require.NoError(t, f.modal.DismissWithEscape(ctx))
	require.NoError(t, f.page.Submit(ctx))
	require.NoError(t, f.modal.VerifyModal(ctx))
	require.NoError(t, f.modal.DismissWithClose(ctx))
	assert.Equal(t, 2, f.form.Submissions)
}

func TestVerifyNotShown(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.page.Submit(ctx))
	require.NoError(t, f.modal.VerifyNotShown(ctx))

	submitValid(t, f)
	err := f.modal.VerifyNotShown(ctx)
	assert.ErrorIs(t, err, entities.ErrTimeout)
	assert.Equal(t, []string{"User verify modal not shown"}, f.recorder.Failed())
}
