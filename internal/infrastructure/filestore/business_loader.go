package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

// Format is a dataset file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// RecordError reports an invalid record in a dataset file.
type RecordError struct {
	Index int
	ID    int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("business #%d (id=%d): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// BusinessLoader implements application.BusinessLoader over a local file.
type BusinessLoader struct {
	path string
}

// NewBusinessLoader creates a loader for the dataset at path. The format is
// chosen from the file extension (.yaml/.yml, anything else is JSON).
func NewBusinessLoader(path string) *BusinessLoader {
	return &BusinessLoader{path: path}
}

// Load reads, decodes and validates the dataset.
func (l *BusinessLoader) Load(ctx context.Context) ([]domain.Business, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.path, err)
	}
	businesses, err := Decode(data, FormatFromPath(l.path))
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", l.path, err)
	}
	return businesses, nil
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses and validates a dataset document holding a list of businesses.
func Decode(data []byte, format Format) ([]domain.Business, error) {
	var records []BusinessRecord
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	}

	if err := validateRecords(records); err != nil {
		return nil, err
	}

	businesses := make([]domain.Business, 0, len(records))
	for _, r := range records {
		businesses = append(businesses, r.ToDomain())
	}
	return businesses, nil
}

var validate = validator.New()

func validateRecords(records []BusinessRecord) error {
	seen := make(map[int]int, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return &RecordError{Index: i, ID: r.ID, Err: err}
		}
		if first, ok := seen[r.ID]; ok {
			return &RecordError{Index: i, ID: r.ID, Err: fmt.Errorf("duplicate id, first seen at #%d", first)}
		}
		seen[r.ID] = i
	}
	return nil
}
