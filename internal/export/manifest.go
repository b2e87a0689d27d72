package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jask/finkit/internal/dataset"
)

// ManifestFile is written next to the tables.
const ManifestFile = "manifest.toml"

// Manifest describes one generation run.
type Manifest struct {
	RunID       string      `toml:"run_id"`
	Seed        uint64      `toml:"seed"`
	GeneratedAt time.Time   `toml:"generated_at"`
	Tables      []TableInfo `toml:"table"`
}

// TableInfo records where a table was written and how many rows it holds.
type TableInfo struct {
	Name string `toml:"name"`
	File string `toml:"file"`
	Rows int    `toml:"rows"`
}

// Run identifies the generation being written.
type Run struct {
	ID          string
	Seed        uint64
	GeneratedAt time.Time
}

// WriteDataset writes every table of ds and the manifest into dir, creating
// dir if needed.
func WriteDataset(dir string, ds dataset.Dataset, run Run, logger *slog.Logger) (Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Manifest{}, fmt.Errorf("mkdir out dir: %w", err)
	}
	m := Manifest{RunID: run.ID, Seed: run.Seed, GeneratedAt: run.GeneratedAt.UTC().Truncate(time.Second)}
	for _, t := range Tables(ds) {
		path, err := WriteTable(dir, t)
		if err != nil {
			return Manifest{}, err
		}
		logger.Info("table written", "table", t.Name, "path", path, "rows", len(t.Rows))
		m.Tables = append(m.Tables, TableInfo{Name: t.Name, File: t.File, Rows: len(t.Rows)})
	}
	if err := WriteManifest(dir, m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// WriteManifest encodes m into dir/manifest.toml.
func WriteManifest(dir string, m Manifest) error {
	path := filepath.Join(dir, ManifestFile)
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(m); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}
	return os.Rename(tmp, path)
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return m, nil
}
