package entities

// Gender is the human readable label of a gender radio option
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Hobby is the human readable label of a hobby checkbox
type Hobby string

const (
	HobbySports  Hobby = "Sports"
	HobbyReading Hobby = "Reading"
	HobbyMusic   Hobby = "Music"
)

// FormData holds the values a scenario types into the practice form.
// Empty fields are left untouched when the whole form is filled.
type FormData struct {
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Gender         Gender   `json:"gender,omitempty"`
	MobileNumber   string   `json:"mobile_number,omitempty"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	Subjects       []string `json:"subjects,omitempty"`
	Hobbies        []Hobby  `json:"hobbies,omitempty"`
	UploadPicture  bool     `json:"upload_picture,omitempty"`
	CurrentAddress string   `json:"current_address,omitempty"`
	State          string   `json:"state,omitempty"`
	City           string   `json:"city,omitempty"`
}
