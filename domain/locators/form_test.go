package locators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"formcheck/domain/entities"
)

func TestTemplates(t *testing.T) {
	assert.Equal(t, `label[for="gender-radio-2"]`, GenderLabel.Format(2).Selector)
	assert.Equal(t, "#gender-radio-3", GenderRadio.Format(3).String())
	assert.Equal(t, `label[for="hobbies-checkbox-1"]`, HobbyLabel.Format(1).String())
	assert.Equal(t, "#hobbies-checkbox-1", HobbyCheckbox.Format("1").String())
}

func TestNarrowing(t *testing.T) {
	assert.Equal(t, `.subjects-auto-complete__option:has-text("Maths")`, SubjectOption.HasText("Maths").String())
	assert.Equal(t, "#firstName:invalid", FirstName.Invalid().String())
	assert.Equal(t, `input[name="gender"]:invalid`, GenderInputs.Invalid().String())

	// narrowing returns a copy
	assert.Equal(t, "#firstName", FirstName.String())
}

func TestRoleLocator(t *testing.T) {
	assert.Equal(t, entities.LocatorRole, ModalClose.Kind)
	assert.Equal(t, `role=button[name="Close"]`, ModalClose.String())
}

func TestHasTextQuotes(t *testing.T) {
	assert.Equal(t, `#city div[id*="-option-"]:has-text("Say \"hi\"")`, CityOption.HasText(`Say "hi"`).String())
}
