package interfaces

import "formcheck/domain/entities"

// StepReporter receives named step boundaries and diagnostic attachments.
// Implementations must tolerate being called from a single goroutine only.
type StepReporter interface {
	BeginStep(name string)
	EndStep(name string, err error)
	Attach(attachment entities.Attachment)
}
