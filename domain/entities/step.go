package entities

import "time"

// StepEventType represents the kind of event a reporter receives
type StepEventType string

const (
	StepBegin  StepEventType = "begin"
	StepEnd    StepEventType = "end"
	StepAttach StepEventType = "attach"
)

// StepEvent is one observable boundary emitted by the page objects
type StepEvent struct {
	Type     StepEventType `json:"type"`
	Name     string        `json:"name"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Attachment is a diagnostic artifact attached to the current step
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Data     []byte `json:"-"`
	Path     string `json:"path,omitempty"`
}

// MimePNG is the media type of screenshot attachments
const MimePNG = "image/png"
