package fakebrowser

import (
	"regexp"
	"strings"

	"formcheck/domain/entities"
	"formcheck/domain/locators"
)

const ConfirmationTitle = "Thanks for submitting the form"

// Subjects offered by the subject autocomplete
var Subjects = []string{
	"Hindi", "English", "Maths", "Physics", "Chemistry", "Biology",
	"Computer Science", "Commerce", "Accounting", "Economics",
	"Arts", "Social Studies", "History", "Civics",
}

// States in dropdown order, with their cities
var (
	States = []string{"NCR", "Uttar Pradesh", "Haryana", "Rajasthan"}
	Cities = map[string][]string{
		"NCR":           {"Delhi", "Gurgaon", "Noida"},
		"Uttar Pradesh": {"Agra", "Lucknow", "Merrut"},
		"Haryana":       {"Karnal", "Panipat"},
		"Rajasthan":     {"Jaipur", "Jaiselmer"},
	}
)

var (
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe  = regexp.MustCompile(`^([a-zA-Z0-9_\-.]+)@([a-zA-Z0-9_\-.]+)\.([a-zA-Z]{2,5})$`)
)

// PracticeForm simulates the practice form and its confirmation modal
type PracticeForm struct {
	*Page

	header    *Node
	first     *Node
	last      *Node
	email     *Node
	mobile    *Node
	genders   []*Node
	hobbies   []*Node
	subjects  []string
	stateNode *Node
	cityNode  *Node
	state     string
	modalOpen bool

	// CoverClose puts an overlay above the modal close button
	CoverClose bool
	// Submissions counts successful submits
	Submissions int
}

// NewPracticeForm - creates the form page loaded at url
func NewPracticeForm(url string) *PracticeForm {
	f := &PracticeForm{Page: NewPage(url)}

	f.header = &Node{Visible: true, Text: "Practice Form"}
	f.Set(locators.FormHeader.String(), f.header)

	f.first = f.textInput(locators.FirstName)
	f.last = f.textInput(locators.LastName)
	f.email = f.textInput(locators.Email)
	f.mobile = f.textInput(locators.MobileNumber)
	f.textInput(locators.DateOfBirth).Value = "17 Oct 2026"
	f.textInput(locators.CurrentAddress)
	f.Set(locators.UploadPicture.String(), &Node{Visible: true})

	for i := 1; i <= 3; i++ {
		idx := i - 1
		radio := &Node{Visible: true}
		f.genders = append(f.genders, radio)
		f.Set(locators.GenderRadio.Format(i).String(), radio)
		f.Set(locators.GenderLabel.Format(i).String(), &Node{Visible: true, OnClick: func() { f.checkGender(idx) }})

		box := &Node{Visible: true}
		f.hobbies = append(f.hobbies, box)
		f.Set(locators.HobbyCheckbox.Format(i).String(), box)
		f.Set(locators.HobbyLabel.Format(i).String(), &Node{Visible: true, OnClick: func() { box.Checked = !box.Checked }})
	}
	f.Set(locators.GenderInputs.String(), f.genders...)

	f.Set(locators.SubjectInput.String(), &Node{Visible: true, OnFill: f.suggestSubjects})

	f.stateNode = &Node{Visible: true, Text: "Select State", OnClick: f.openStates}
	f.cityNode = &Node{Visible: true, Text: "Select City", OnClick: f.openCities}
	f.Set(locators.StateDropdown.String(), f.stateNode)
	f.Set(locators.CityDropdown.String(), f.cityNode)

	f.Set(locators.Submit.String(), &Node{Visible: true, Text: "Submit", OnClick: f.submit})
	f.OnKey(entities.KeyEscape, f.closeModal)

	f.validate()
	return f
}

func (f *PracticeForm) textInput(loc entities.Locator) *Node {
	n := &Node{Visible: true, OnFill: func(string) { f.validate() }}
	f.Set(loc.String(), n)
	return n
}

// Genders returns the checked state of the three gender radios
func (f *PracticeForm) Genders() []bool {
	return checked(f.genders)
}

// Hobbies returns the checked state of the three hobby checkboxes
func (f *PracticeForm) Hobbies() []bool {
	return checked(f.hobbies)
}

// SelectedSubjects returns the chips in display order
func (f *PracticeForm) SelectedSubjects() []string {
	return append([]string(nil), f.subjects...)
}

// ModalOpen reports whether the confirmation modal is shown
func (f *PracticeForm) ModalOpen() bool {
	return f.modalOpen
}

func checked(nodes []*Node) []bool {
	out := make([]bool, len(nodes))
	for i, n := range nodes {
		out[i] = n.Checked
	}
	return out
}

func (f *PracticeForm) checkGender(idx int) {
	for i, n := range f.genders {
		n.Checked = i == idx
	}
	f.validate()
}

// validate mirrors the :invalid pseudo-class of the required fields
func (f *PracticeForm) validate() {
	f.toggle(locators.FirstName.Invalid().String(), f.first.Value == "")
	f.toggle(locators.LastName.Invalid().String(), f.last.Value == "")
	f.toggle(locators.MobileNumber.Invalid().String(), !mobileRe.MatchString(f.mobile.Value))
	f.toggle(locators.Email.Invalid().String(), f.email.Value != "" && !emailRe.MatchString(f.email.Value))

	genderKey := locators.GenderInputs.Invalid().String()
	if f.genderChosen() {
		f.Remove(genderKey)
	} else {
		f.Set(genderKey, f.genders...)
	}
}

func (f *PracticeForm) toggle(key string, on bool) {
	if on {
		f.Set(key, &Node{Visible: true})
	} else {
		f.Remove(key)
	}
}

func (f *PracticeForm) genderChosen() bool {
	for _, n := range f.genders {
		if n.Checked {
			return true
		}
	}
	return false
}

func (f *PracticeForm) valid() bool {
	return f.first.Value != "" && f.last.Value != "" && f.genderChosen() &&
		mobileRe.MatchString(f.mobile.Value) &&
		(f.email.Value == "" || emailRe.MatchString(f.email.Value))
}

func (f *PracticeForm) hideOptions(names []string, base entities.Locator) {
	for _, name := range names {
		f.Remove(base.HasText(name).String())
	}
}

func (f *PracticeForm) suggestSubjects(text string) {
	f.hideOptions(Subjects, locators.SubjectOption)
	if text == "" {
		return
	}
	for _, s := range Subjects {
		if !strings.Contains(strings.ToLower(s), strings.ToLower(text)) || f.hasSubject(s) {
			continue
		}
		subject := s
		f.Set(locators.SubjectOption.HasText(subject).String(), &Node{Visible: true, Text: subject, OnClick: func() { f.addSubject(subject) }})
	}
}

func (f *PracticeForm) hasSubject(s string) bool {
	for _, have := range f.subjects {
		if have == s {
			return true
		}
	}
	return false
}

func (f *PracticeForm) addSubject(s string) {
	f.hideOptions(Subjects, locators.SubjectOption)
	if input := f.Node(locators.SubjectInput.String()); input != nil {
		input.Value = ""
	}
	f.subjects = append(f.subjects, s)

	chip := locators.SubjectChip.HasText(s).String()
	f.Set(chip, &Node{Visible: true, Text: s})
	f.Set(chip+" >> "+locators.SubjectRemove.String(), &Node{Visible: true, OnClick: func() { f.removeSubject(s) }})
	f.syncChips()
}

func (f *PracticeForm) removeSubject(s string) {
	kept := f.subjects[:0]
	for _, have := range f.subjects {
		if have != s {
			kept = append(kept, have)
		}
	}
	f.subjects = kept

	chip := locators.SubjectChip.HasText(s).String()
	f.Remove(chip)
	f.Remove(chip + " >> " + locators.SubjectRemove.String())
	f.syncChips()
}

func (f *PracticeForm) clearSubjects() {
	for _, s := range f.SelectedSubjects() {
		f.removeSubject(s)
	}
}

func (f *PracticeForm) syncChips() {
	labels := make([]*Node, 0, len(f.subjects))
	for _, s := range f.subjects {
		labels = append(labels, &Node{Visible: true, Text: s})
	}
	f.Set(locators.SubjectLabel.String(), labels...)

	if len(f.subjects) == 0 {
		f.Remove(locators.SubjectsClear.String())
		return
	}
	f.Set(locators.SubjectsClear.String(), &Node{Visible: true, OnClick: f.clearSubjects})
}

func (f *PracticeForm) openStates() {
	for _, s := range States {
		state := s
		f.Set(locators.StateOption.HasText(state).String(), &Node{Visible: true, Text: state, OnClick: func() { f.pickState(state) }})
	}
}

func (f *PracticeForm) pickState(state string) {
	f.hideOptions(States, locators.StateOption)
	f.state = state
	f.stateNode.Text = state
	f.cityNode.Text = "Select City"
}

func (f *PracticeForm) openCities() {
	for _, c := range Cities[f.state] {
		city := c
		f.Set(locators.CityOption.HasText(city).String(), &Node{Visible: true, Text: city, OnClick: func() { f.pickCity(city) }})
	}
}

func (f *PracticeForm) pickCity(city string) {
	f.hideOptions(Cities[f.state], locators.CityOption)
	f.cityNode.Text = city
}

func (f *PracticeForm) submit() {
	if !f.valid() {
		return
	}
	f.Submissions++
	f.modalOpen = true
	f.Set(locators.ModalHeader.String(), &Node{Visible: true, Text: ConfirmationTitle})
	f.Set(locators.ModalBody.String(), &Node{Visible: true})
	f.Set(locators.ModalClose.String(), &Node{Visible: true, Text: "Close", Covered: f.CoverClose, OnClick: f.closeModal})
}

func (f *PracticeForm) closeModal() {
	if !f.modalOpen {
		return
	}
	f.modalOpen = false
	f.Remove(locators.ModalHeader.String())
	f.Remove(locators.ModalBody.String())
	f.Remove(locators.ModalClose.String())
}
