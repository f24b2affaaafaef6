package reporting

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcheck/domain/entities"
	"formcheck/infrastructure/storage"
)

func TestRecorder_NestedSteps(t *testing.T) {
	r := NewRecorder()
	clock := time.Unix(0, 0)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	r.BeginStep("outer")
	r.BeginStep("inner")
	r.Attach(entities.Attachment{Name: "shot", MimeType: entities.MimePNG, Data: []byte{1}})
	r.EndStep("inner", errors.New("boom"))
	r.EndStep("outer", nil)

	want := []entities.StepEvent{
		{Type: entities.StepBegin, Name: "outer"},
		{Type: entities.StepBegin, Name: "inner"},
		{Type: entities.StepAttach, Name: "shot"},
		{Type: entities.StepEnd, Name: "inner", Error: "boom", Duration: time.Second},
		{Type: entities.StepEnd, Name: "outer", Duration: 3 * time.Second},
	}
	if diff := cmp.Diff(want, r.Events()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"inner", "outer"}, r.Steps())
	assert.Equal(t, []string{"inner"}, r.Failed())
	assert.Len(t, r.Attachments(), 1)
}

func TestTee(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	rep := Tee(a, b, Nop{})

	rep.BeginStep("s")
	rep.Attach(entities.Attachment{Name: "x"})
	rep.EndStep("s", nil)

	assert.Equal(t, a.Steps(), b.Steps())
	assert.Len(t, b.Attachments(), 1)
}

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return logger, buf
}

func TestLogReporter_Steps(t *testing.T) {
	logger, buf := newTestLogger()
	r := NewLogReporter(logrus.NewEntry(logger).WithField("scenario", "demo"), nil, "run-1")

	r.BeginStep("User input first name")
	r.EndStep("User input first name", nil)
	r.BeginStep("User click submit button")
	r.EndStep("User click submit button", errors.New("no element"))

	out := buf.String()
	assert.Contains(t, out, "step started")
	assert.Contains(t, out, "step passed")
	assert.Contains(t, out, "step failed")
	assert.Contains(t, out, `error="no element"`)
	assert.Contains(t, out, "scenario=demo")
}

func TestLogReporter_AttachWithStore(t *testing.T) {
	logger, buf := newTestLogger()
	store, err := storage.NewArtifactStore(t.TempDir())
	require.NoError(t, err)

	r := NewLogReporter(logrus.NewEntry(logger), store, "run-7")
	r.Attach(entities.Attachment{Name: "timeout-error", MimeType: entities.MimePNG, Data: []byte{0x89}})

	assert.Contains(t, buf.String(), "attachment saved")
	assert.Contains(t, buf.String(), "timeout-error.png")
}

func TestLogReporter_AttachWithoutStore(t *testing.T) {
	logger, buf := newTestLogger()
	r := NewLogReporter(logrus.NewEntry(logger), nil, "run-7")
	r.Attach(entities.Attachment{Name: "timeout-error", MimeType: entities.MimePNG})

	assert.Contains(t, buf.String(), "no artifact store configured")
}
