package insights

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// LoadSnapshotFile reads a snapshot from a JSON file. Useful for offline
// report generation and testing.
func LoadSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot file")
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(err, "failed to parse snapshot file")
	}
	return &snap, nil
}

// FileProvider serves a snapshot from a local JSON file. It implements
// SnapshotProvider.
type FileProvider struct {
	Path string
}

// FetchSnapshot implements SnapshotProvider
func (p *FileProvider) FetchSnapshot(_ context.Context, _ time.Time) (*Snapshot, error) {
	return LoadSnapshotFile(p.Path)
}
