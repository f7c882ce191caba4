package dataset

import (
	"fmt"
	"strings"
	"time"

	"github.com/rshade/aichronos/internal/timeline"
)

// DateLayout is the release date format used in dataset files.
const DateLayout = "2006-01-02"

// DefaultImportance is assigned to every model; dataset files do not carry it.
const DefaultImportance = 3

// Company is the closed set of model publishers.
type Company string

// Companies.
const (
	Google    Company = "Google"
	OpenAI    Company = "OpenAI"
	Anthropic Company = "Anthropic"
	Meta      Company = "Meta"
	Mistral   Company = "Mistral"
	DeepMind  Company = "DeepMind" // Pre-merge
	Other     Company = "Other"
)

//nolint:gochecknoglobals // Closed enumeration tables.
var (
	companyOrder = []Company{Google, OpenAI, Anthropic, Meta, Mistral, DeepMind, Other}

	companyColors = map[Company]string{
		Google:    "#4285F4",
		OpenAI:    "#10A37F",
		Anthropic: "#D97757",
		Meta:      "#0668E1",
		Mistral:   "#F59E0B",
		DeepMind:  "#00ACC1",
		Other:     "#94A3B8",
	}
)

// Companies returns every company in display order.
func Companies() []Company {
	out := make([]Company, len(companyOrder))
	copy(out, companyOrder)
	return out
}

// ParseCompany maps s onto the closed set, case-insensitively. Unknown names
// map to Other.
func ParseCompany(s string) Company {
	for _, c := range companyOrder {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return Other
}

// LookupCompany is the strict variant of ParseCompany used for user filters.
func LookupCompany(s string) (Company, error) {
	for _, c := range companyOrder {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCompany, s)
}

// Color returns the accent color of c as a hex string.
func (c Company) Color() string {
	if col, ok := companyColors[c]; ok {
		return col
	}
	return companyColors[Other]
}

// Capability is the closed set of model modalities.
type Capability string

// Capabilities.
const (
	NLP        Capability = "NLP"
	CV         Capability = "CV"
	Multimodal Capability = "Multimodal"
	Video      Capability = "Video"
	Audio      Capability = "Audio"
	Code       Capability = "Code"
)

//nolint:gochecknoglobals // Closed enumeration table.
var capabilityOrder = []Capability{NLP, CV, Multimodal, Video, Audio, Code}

// ParseCapability maps s onto the closed set, case-insensitively.
func ParseCapability(s string) (Capability, error) {
	for _, c := range capabilityOrder {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCapability, s)
}

// Localized holds the per-language text of a record.
type Localized struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CoreTech    string   `json:"coreTech"`
	Features    []string `json:"features"`
	UseCases    []string `json:"useCases"`
}

// Record is one bilingual dataset entry as stored on disk.
type Record struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	ReleaseDate  string       `json:"releaseDate"`
	Params       string       `json:"params"`
	Highlight    bool         `json:"highlight"`
	Capabilities []Capability `json:"capabilities"`
	Source       string       `json:"source,omitempty"`
	EN           Localized    `json:"en"`
	ZH           Localized    `json:"zh"`
}

// Model is a record projected onto a single language.
type Model struct {
	ID           string       `json:"id"           yaml:"id"`
	Name         string       `json:"name"         yaml:"name"`
	Company      Company      `json:"company"      yaml:"company"`
	ReleaseDate  string       `json:"releaseDate"  yaml:"releaseDate"`
	Released     time.Time    `json:"-"            yaml:"-"`
	Params       string       `json:"params"       yaml:"params,omitempty"`
	Highlight    bool         `json:"highlight"    yaml:"highlight"`
	Importance   int          `json:"importance"   yaml:"importance"`
	Capabilities []Capability `json:"capabilities" yaml:"capabilities"`
	Source       string       `json:"source"       yaml:"source,omitempty"`
	Description  string       `json:"description"  yaml:"description"`
	CoreTech     string       `json:"coreTech"     yaml:"coreTech"`
	Features     []string     `json:"features"     yaml:"features"`
	UseCases     []string     `json:"useCases"     yaml:"useCases"`
}

// Year returns the four-digit release year.
func (m Model) Year() string {
	return m.Released.Format("2006")
}

// HasCapability reports whether m lists c.
func (m Model) HasCapability(c Capability) bool {
	for _, have := range m.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// TimelineItem converts m into the read-only item the timeline lays out.
func (m Model) TimelineItem() timeline.Item {
	return timeline.Item{
		ID:        m.ID,
		Label:     m.Name,
		Group:     string(m.Company),
		Ordinal:   m.Released,
		Milestone: m.Highlight,
	}
}

// TimelineItems converts models in order.
func TimelineItems(models []Model) []timeline.Item {
	items := make([]timeline.Item, len(models))
	for i, m := range models {
		items[i] = m.TimelineItem()
	}
	return items
}
