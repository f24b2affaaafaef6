package reporting

import (
	"time"

	"github.com/sirupsen/logrus"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// LogReporter writes step boundaries to a logrus entry and hands attachments
// to an optional artifact store
type LogReporter struct {
	log    *logrus.Entry
	store  interfaces.ArtifactStore
	runID  string
	starts []time.Time
}

// NewLogReporter - creates a reporter for one scenario run. store may be nil.
func NewLogReporter(log *logrus.Entry, store interfaces.ArtifactStore, runID string) *LogReporter {
	return &LogReporter{log: log, store: store, runID: runID}
}

var _ interfaces.StepReporter = (*LogReporter)(nil)

func (r *LogReporter) BeginStep(name string) {
	r.starts = append(r.starts, time.Now())
	r.log.WithField("step", name).Debug("step started")
}

func (r *LogReporter) EndStep(name string, err error) {
	var took time.Duration
	if n := len(r.starts); n > 0 {
		took = time.Since(r.starts[n-1])
		r.starts = r.starts[:n-1]
	}

	entry := r.log.WithFields(logrus.Fields{"step": name, "duration": took.Round(time.Millisecond)})
	if err != nil {
		entry.WithError(err).Error("step failed")
		return
	}
	entry.Info("step passed")
}

func (r *LogReporter) Attach(a entities.Attachment) {
	entry := r.log.WithFields(logrus.Fields{"attachment": a.Name, "mime_type": a.MimeType, "bytes": len(a.Data)})
	if r.store == nil {
		entry.Warn("attachment captured, no artifact store configured")
		return
	}

	path, err := r.store.SaveAttachment(r.runID, a)
	if err != nil {
		entry.WithError(err).Error("failed to save attachment")
		return
	}
	entry.WithField("path", path).Warn("attachment saved")
}
