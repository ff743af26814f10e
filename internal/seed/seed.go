// Package seed decodes activity and project files for import.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/folio/internal/domain"
)

// Format is the encoding of a seed file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

type activityRecord struct {
	Date  string `json:"date" yaml:"date"`
	Count int64  `json:"count" yaml:"count"`
	Level *int   `json:"level,omitempty" yaml:"level,omitempty"`
}

type projectRecord struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Link        string `json:"link" yaml:"link"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Position    int    `json:"position,omitempty" yaml:"position,omitempty"`
}

func decode(r io.Reader, format Format, v any) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return err
		}
		if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
			return errors.New("unexpected content after the top-level value")
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(v)
		if err == io.EOF {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// DecodeActivities reads a list of {date, count, level} records. Records
// without a level get one derived from the busiest day in the file. The result
// is sorted by date.
func DecodeActivities(r io.Reader, format Format) ([]domain.Activity, error) {
	var records []activityRecord
	if err := decode(r, format, &records); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}

	var max int64
	for _, rec := range records {
		if rec.Count > max {
			max = rec.Count
		}
	}

	seen := make(map[string]bool, len(records))
	activities := make([]domain.Activity, 0, len(records))
	for i, rec := range records {
		date, err := domain.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		key := date.Format(domain.DateLayout)
		if seen[key] {
			return nil, fmt.Errorf("record %d: %w: %s", i, domain.ErrDuplicateDate, key)
		}
		seen[key] = true

		a := domain.Activity{Date: date, Count: rec.Count}
		if rec.Level != nil {
			a.Level = domain.Level(*rec.Level)
		} else {
			a.Level = domain.LevelForCount(rec.Count, max)
		}
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		activities = append(activities, a)
	}

	domain.SortActivities(activities)
	return activities, nil
}

// DecodeProjects reads a list of project descriptors in file order.
func DecodeProjects(r io.Reader, format Format) ([]domain.Project, error) {
	var records []projectRecord
	if err := decode(r, format, &records); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, domain.Project{
			ID:          rec.ID,
			Link:        rec.Link,
			Title:       rec.Title,
			Description: rec.Description,
			Image:       rec.Image,
			Position:    rec.Position,
		})
	}
	return projects, nil
}
