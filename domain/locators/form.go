// Package locators maps semantic names of the practice form to selectors.
package locators

import "formcheck/domain/entities"

// Form page
var (
	FormHeader = entities.CSS(`h1:has-text("Practice Form")`)

	FirstName    = entities.CSS("#firstName")
	LastName     = entities.CSS("#lastName")
	Email        = entities.CSS("#userEmail")
	MobileNumber = entities.CSS("#userNumber")
	DateOfBirth  = entities.CSS("#dateOfBirthInput")

	GenderInputs = entities.CSS(`input[name="gender"]`)
	GenderLabel  = entities.Template(`label[for="gender-radio-{}"]`)
	GenderRadio  = entities.Template("#gender-radio-{}")

	HobbyLabel    = entities.Template(`label[for="hobbies-checkbox-{}"]`)
	HobbyCheckbox = entities.Template("#hobbies-checkbox-{}")

	SubjectInput  = entities.CSS("#subjectsInput")
	SubjectOption = entities.CSS(".subjects-auto-complete__option")
	SubjectChip   = entities.CSS(".subjects-auto-complete__multi-value")
	SubjectLabel  = entities.CSS(".subjects-auto-complete__multi-value__label")
	SubjectRemove = entities.CSS(".subjects-auto-complete__multi-value__remove")
	SubjectsClear = entities.CSS(".subjects-auto-complete__clear-indicator")

	UploadPicture  = entities.CSS("#uploadPicture")
	CurrentAddress = entities.CSS("#currentAddress")

	StateDropdown = entities.CSS("#state")
	StateOption   = entities.CSS(`#state div[id*="-option-"]`)
	CityDropdown  = entities.CSS("#city")
	CityOption    = entities.CSS(`#city div[id*="-option-"]`)

	Submit = entities.CSS("#submit")
)

// Confirmation modal
var (
	ModalHeader = entities.CSS("#example-modal-sizes-title-lg")
	ModalBody   = entities.CSS(".modal-body")
	ModalClose  = entities.Role("button", "Close")
)
