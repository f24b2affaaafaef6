// Package reporting implements step reporters for the page objects.
package reporting

import (
	"sync"
	"time"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// Recorder keeps every event in memory
type Recorder struct {
	mu          sync.Mutex
	events      []entities.StepEvent
	attachments []entities.Attachment
	starts      []time.Time
	now         func() time.Time
}

// NewRecorder - creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

var _ interfaces.StepReporter = (*Recorder)(nil)

func (r *Recorder) BeginStep(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.starts = append(r.starts, r.now())
	r.events = append(r.events, entities.StepEvent{Type: entities.StepBegin, Name: name})
}

func (r *Recorder) EndStep(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev := entities.StepEvent{Type: entities.StepEnd, Name: name}
	if n := len(r.starts); n > 0 {
		ev.Duration = r.now().Sub(r.starts[n-1])
		r.starts = r.starts[:n-1]
	}
	if err != nil {
		ev.Error = err.Error()
	}
	r.events = append(r.events, ev)
}

func (r *Recorder) Attach(a entities.Attachment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attachments = append(r.attachments, a)
	r.events = append(r.events, entities.StepEvent{Type: entities.StepAttach, Name: a.Name})
}

// Events - returns a copy of recorded events
func (r *Recorder) Events() []entities.StepEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.StepEvent(nil), r.events...)
}

// Attachments - returns a copy of recorded attachments
func (r *Recorder) Attachments() []entities.Attachment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.Attachment(nil), r.attachments...)
}

// Steps - returns names of completed steps in completion order
func (r *Recorder) Steps() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, ev := range r.events {
		if ev.Type == entities.StepEnd {
			names = append(names, ev.Name)
		}
	}
	return names
}

// Failed - returns the names of steps that ended with an error
func (r *Recorder) Failed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var names []string
	for _, ev := range r.events {
		if ev.Type == entities.StepEnd && ev.Error != "" {
			names = append(names, ev.Name)
		}
	}
	return names
}
