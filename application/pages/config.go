package pages

import (
	"time"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// Timeouts bound every wait the page objects perform
type Timeouts struct {
	Assert     time.Duration
	PageLoad   time.Duration
	Validation time.Duration
	Dropdown   time.Duration
	Poll       time.Duration
}

// DefaultTimeouts - returns the waits the form is known to need
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Assert:     5 * time.Second,
		PageLoad:   10 * time.Second,
		Validation: 10 * time.Second,
		Dropdown:   5 * time.Second,
		Poll:       100 * time.Millisecond,
	}
}

// Config is shared by the form and confirmation page objects
type Config struct {
	TargetURL  string
	UploadFile string
	Timeouts   Timeouts
}

func (c Config) withDefaults() Config {
	d := DefaultTimeouts()
	if c.Timeouts.Assert <= 0 {
		c.Timeouts.Assert = d.Assert
	}
	if c.Timeouts.PageLoad <= 0 {
		c.Timeouts.PageLoad = d.PageLoad
	}
	if c.Timeouts.Validation <= 0 {
		c.Timeouts.Validation = d.Validation
	}
	if c.Timeouts.Dropdown <= 0 {
		c.Timeouts.Dropdown = d.Dropdown
	}
	if c.Timeouts.Poll <= 0 {
		c.Timeouts.Poll = d.Poll
	}
	return c
}

// step wraps fn in a named reporter step
func step(r interfaces.StepReporter, name string, fn func() error) (err error) {
	r.BeginStep(name)
	defer func() { r.EndStep(name, err) }()
	return fn()
}

type nopReporter struct{}

func (nopReporter) BeginStep(string)           {}
func (nopReporter) EndStep(string, error)      {}
func (nopReporter) Attach(entities.Attachment) {}
