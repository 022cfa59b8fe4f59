package config

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/watchfire-io/calllog/internal/models"
)

// LoadRecording reads a recording file and checks that call ids are unique.
func LoadRecording(path string) (*models.Recording, error) {
	var rec models.Recording
	if err := LoadYAML(path, &rec); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(rec.Calls))
	for i, c := range rec.Calls {
		if c == nil {
			return nil, errors.Errorf("%s: call %d is empty", path, i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, errors.Errorf("%s: duplicate call id %d", path, c.ID)
		}
		seen[c.ID] = struct{}{}
	}

	if rec.Name == "" {
		rec.Name = recordingName(path)
	}
	return &rec, nil
}

// SaveRecording writes a recording to path.
func SaveRecording(path string, rec *models.Recording) error {
	return SaveYAML(path, rec)
}

// ListRecordings reads all recordings in dir and returns their summaries (newest first).
// Files that fail to parse are skipped.
func ListRecordings(dir string) ([]*models.RecordingSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read recordings dir %s", dir)
	}

	var summaries []*models.RecordingSummary
	for _, e := range entries {
		if e.IsDir() || !IsRecordingFile(e.Name()) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		rec, err := LoadRecording(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable recording")
			continue
		}
		summaries = append(summaries, &models.RecordingSummary{
			Path:        path,
			RecordingID: rec.RecordingID,
			Name:        rec.Name,
			CreatedAt:   rec.CreatedAt,
			Calls:       len(rec.Calls),
			Counts:      rec.StatusCounts(),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	return summaries, nil
}

func recordingName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
