package interfaces

import "formcheck/domain/entities"

// ArtifactStore keeps diagnostic artifacts and run summaries
type ArtifactStore interface {
	// SaveAttachment stores an attachment under runID and returns where it went
	SaveAttachment(runID string, attachment entities.Attachment) (string, error)

	// SaveSummary stores the outcome of a run
	SaveSummary(summary entities.Summary) error

	// LoadSummary loads the last stored run outcome
	LoadSummary() (entities.Summary, error)
}
