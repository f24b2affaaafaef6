package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

const summaryFile = "summary.json"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

type artifactStore struct {
	dir string
}

// NewArtifactStore - creates a store rooted at dir
func NewArtifactStore(dir string) (interfaces.ArtifactStore, error) {
	if dir == "" {
		return nil, errors.New("artifact directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &artifactStore{dir: dir}, nil
}

// SaveAttachment - writes an attachment to <dir>/<runID>/<name>.<ext>
func (s *artifactStore) SaveAttachment(runID string, a entities.Attachment) (string, error) {
	runDir := filepath.Join(s.dir, sanitize(runID))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	path := filepath.Join(runDir, sanitize(a.Name)+extension(a.MimeType))
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return path, nil
}

// SaveSummary - saves the outcome of a run
func (s *artifactStore) SaveSummary(summary entities.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, summaryFile), data, 0644)
}

// LoadSummary - loads the last saved outcome, empty if none was saved
func (s *artifactStore) LoadSummary() (entities.Summary, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, summaryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return entities.Summary{}, nil
		}
		return entities.Summary{}, err
	}

	var summary entities.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return entities.Summary{}, fmt.Errorf("failed to parse summary: %w", err)
	}
	return summary, nil
}

func sanitize(name string) string {
	name = strings.Trim(unsafeChars.ReplaceAllString(name, "-"), "-.")
	if name == "" {
		return "artifact"
	}
	return name
}

func extension(mimeType string) string {
	switch mimeType {
	case entities.MimePNG:
		return ".png"
	case "application/json":
		return ".json"
	case "text/plain":
		return ".txt"
	}
	return ".bin"
}
