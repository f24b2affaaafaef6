package reporting

import (
	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

type tee []interfaces.StepReporter

// Tee - fans every event out to all reporters in order
func Tee(reporters ...interfaces.StepReporter) interfaces.StepReporter {
	return tee(reporters)
}

func (t tee) BeginStep(name string) {
	for _, r := range t {
		r.BeginStep(name)
	}
}

func (t tee) EndStep(name string, err error) {
	for _, r := range t {
		r.EndStep(name, err)
	}
}

func (t tee) Attach(a entities.Attachment) {
	for _, r := range t {
		r.Attach(a)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) BeginStep(string)           {}
func (Nop) EndStep(string, error)      {}
func (Nop) Attach(entities.Attachment) {}
