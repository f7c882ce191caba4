// Package dataset loads, validates and localizes the bundled catalogue of AI
// model releases, and provides the filter and sort stage that feeds the
// timeline.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/rshade/aichronos/internal/i18n"
)

// LegacyVersion is assumed for bare-array dataset files.
const LegacyVersion = "1.0.0"

// SupportedVersions is the semver constraint every dataset file must satisfy.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

//go:embed data/ai_data.json
var embedded []byte

// Dataset is a validated set of bilingual records.
type Dataset struct {
	Version *semver.Version
	Records []Record
}

type fileFormat struct {
	Version string   `json:"version"`
	Models  []Record `json:"models"`
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	ds, err := Parse(embedded)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded dataset: %w", err)
	}
	return ds, nil
}

// Load reads the dataset at path, or the embedded dataset when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes and validates a dataset. Both the versioned object form and a
// bare array of records are accepted.
func Parse(data []byte) (*Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
	}

	var file fileFormat
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &file.Models); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		file.Version = LegacyVersion
	case '{':
		if err := json.Unmarshal(trimmed, &file); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
		if file.Version == "" {
			return nil, fmt.Errorf("%w: missing version", ErrInvalidDataset)
		}
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrInvalidDataset)
	}

	version, err := checkVersion(file.Version)
	if err != nil {
		return nil, err
	}
	if err := validate(file.Models); err != nil {
		return nil, err
	}

	return &Dataset{Version: version, Records: file.Models}, nil
}

func checkVersion(raw string) (*semver.Version, error) {
	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return nil, fmt.Errorf("compiling version constraint: %w", err)
	}
	if !constraint.Check(version) {
		return nil, fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, SupportedVersions)
	}
	return version, nil
}

func validate(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	var errs []error
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%q): %w", i, r.ID, err))
			continue
		}
		if _, dup := seen[r.ID]; dup {
			errs = append(errs, fmt.Errorf("record %d: %w: duplicate id %q", i, ErrInvalidDataset, r.ID))
			continue
		}
		seen[r.ID] = struct{}{}
	}
	return errors.Join(errs...)
}

func validateRecord(r Record) error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDataset)
	}
	if _, err := time.Parse(DateLayout, r.ReleaseDate); err != nil {
		return fmt.Errorf("%w: release date %q", ErrInvalidDataset, r.ReleaseDate)
	}
	for _, c := range r.Capabilities {
		if _, err := ParseCapability(string(c)); err != nil {
			return err
		}
	}
	if r.EN.Name == "" || r.ZH.Name == "" {
		return fmt.Errorf("%w: both en and zh names are required", ErrInvalidDataset)
	}
	return nil
}

// Localize projects records onto lang, preserving order.
func (d *Dataset) Localize(lang i18n.Language) []Model {
	if d == nil {
		return nil
	}
	return Localize(d.Records, lang)
}

// Localize projects records onto lang, preserving order. Records are assumed
// to have passed validation.
func Localize(records []Record, lang i18n.Language) []Model {
	models := make([]Model, 0, len(records))
	for _, r := range records {
		text := r.ZH
		if lang == i18n.English {
			text = r.EN
		}
		released, _ := time.Parse(DateLayout, r.ReleaseDate)
		caps := make([]Capability, 0, len(r.Capabilities))
		for _, c := range r.Capabilities {
			// Normalize casing; validation already rejected unknown names.
			if parsed, err := ParseCapability(string(c)); err == nil {
				caps = append(caps, parsed)
			}
		}
		models = append(models, Model{
			ID:           r.ID,
			Name:         text.Name,
			Company:      ParseCompany(r.Company),
			ReleaseDate:  r.ReleaseDate,
			Released:     released,
			Params:       r.Params,
			Highlight:    r.Highlight,
			Importance:   DefaultImportance,
			Capabilities: caps,
			Source:       r.Source,
			Description:  text.Description,
			CoreTech:     text.CoreTech,
			Features:     text.Features,
			UseCases:     text.UseCases,
		})
	}
	return models
}
