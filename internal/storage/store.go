// Package storage keeps painted artifacts on disk, grouped by algorithm:
// {base}/{algorithm}/{algorithm}_{seed}.{ext} next to a JSON metadata file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/algoart/internal/export"
	"github.com/san-kum/algoart/internal/painting"
)

var (
	ErrNotFound    = errors.New("storage: painting not found")
	ErrInvalidName = errors.New("storage: invalid painting name")
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	Name      string        `json:"name"`
	Algorithm string        `json:"algorithm"`
	Seed      int64         `json:"seed"`
	Height    int           `json:"height"`
	Width     int           `json:"width"`
	Format    export.Format `json:"format"`
	File      string        `json:"file"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Timestamp time.Time     `json:"timestamp"`
}

// Save encodes the result and writes its metadata. An existing painting with
// the same name and format is overwritten.
func (s *Store) Save(res *painting.Result, f export.Format) (*Metadata, error) {
	dir := filepath.Join(s.baseDir, res.Algorithm)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file := res.Name + "." + f.Extension()
	if err := export.SaveFile(filepath.Join(dir, file), res.Canvas, f); err != nil {
		return nil, fmt.Errorf("saving %s: %w", res.Name, err)
	}

	meta := &Metadata{
		Name:      res.Name,
		Algorithm: res.Algorithm,
		Seed:      res.Seed,
		Height:    res.Canvas.Rows(),
		Width:     res.Canvas.Columns(),
		Format:    f,
		File:      file,
		Elapsed:   res.Elapsed,
		Timestamp: time.Now(),
	}

	metaFile, err := os.Create(filepath.Join(dir, res.Name+".json"))
	if err != nil {
		return nil, err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return nil, err
	}

	painting.Logger().Info("saved painting", "name", res.Name, "dir", dir, "format", f)
	return meta, nil
}

// List returns the metadata of every saved painting, sorted by name.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	paintings := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		files, err := filepath.Glob(filepath.Join(s.baseDir, entry.Name(), "*.json"))
		if err != nil {
			continue
		}
		for _, path := range files {
			meta, err := readMetadata(path)
			if err != nil {
				continue
			}
			paintings = append(paintings, *meta)
		}
	}

	sort.Slice(paintings, func(i, j int) bool {
		return paintings[i].Name < paintings[j].Name
	})
	return paintings, nil
}

// Load reads the metadata of a painting named "{algorithm}_{seed}".
func (s *Store) Load(name string) (*Metadata, error) {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	algo, ok := algorithmOf(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	meta, err := readMetadata(filepath.Join(s.baseDir, algo, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return meta, nil
}

// Path returns the image file of a saved painting.
func (s *Store) Path(meta *Metadata) string {
	return filepath.Join(s.baseDir, meta.Algorithm, meta.File)
}

func readMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// algorithmOf strips the trailing "_{seed}". Algorithm names contain
// underscores themselves, so only the last one separates the seed.
func algorithmOf(name string) (string, bool) {
	i := strings.LastIndex(name, "_")
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[:i], true
}
