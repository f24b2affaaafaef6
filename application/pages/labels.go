package pages

import (
	"fmt"

	"formcheck/domain/entities"
)

// labelIndex translates option labels to the 1-based option index the form
// uses in its element ids. It is never mutated after construction.
type labelIndex struct {
	kind   string
	labels []string
	index  map[string]int
}

func newLabelIndex(kind string, labels ...string) labelIndex {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i + 1
	}
	return labelIndex{kind: kind, labels: labels, index: idx}
}

func (x labelIndex) lookup(label string) (int, error) {
	i, ok := x.index[label]
	if !ok {
		return 0, fmt.Errorf("%s %q: %w", x.kind, label, entities.ErrUnknownLabel)
	}
	return i, nil
}

var (
	genderIndex = newLabelIndex("gender",
		string(entities.GenderMale), string(entities.GenderFemale), string(entities.GenderOther))
	hobbyIndex = newLabelIndex("hobby",
		string(entities.HobbySports), string(entities.HobbyReading), string(entities.HobbyMusic))
)

// Genders returns the supported gender labels in option order
func Genders() []entities.Gender {
	out := make([]entities.Gender, len(genderIndex.labels))
	for i, l := range genderIndex.labels {
		out[i] = entities.Gender(l)
	}
	return out
}

// Hobbies returns the supported hobby labels in option order
func Hobbies() []entities.Hobby {
	out := make([]entities.Hobby, len(hobbyIndex.labels))
	for i, l := range hobbyIndex.labels {
		out[i] = entities.Hobby(l)
	}
	return out
}
