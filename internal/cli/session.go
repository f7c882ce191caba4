package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/dataset"
	"github.com/rshade/aichronos/internal/logging"
)

type constError string

func (e constError) Error() string { return string(e) }

// Error types for CLI flag handling.
const (
	// ErrInvalidFlag indicates a flag value that cannot be used.
	ErrInvalidFlag = constError("invalid flag")

	// ErrNotTerminal indicates the interactive timeline was started without
	// a terminal attached.
	ErrNotTerminal = constError("not a terminal")
)

const yearDigits = 4

// session is the resolved state a command works on: the effective
// configuration after flags, the loaded dataset, and the filter.
type session struct {
	cfg    config.Config
	data   *dataset.Dataset
	filter dataset.Filter
	order  dataset.SortOrder
}

func addFilterFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("company", "", "only show models from this company (Google, OpenAI, Anthropic, Meta, Mistral, DeepMind, Other)")
	pf.String("year", "", "only show models released in this year (YYYY)")
	pf.String("capability", "", "only show models with this capability (NLP, CV, Multimodal, Video, Audio, Code)")
	pf.String("search", "", "only show models whose name or company contains this text")
	pf.Bool("ascending", false, "oldest releases first")
}

// effectiveConfig returns a copy of the global configuration with flag
// overrides applied, validated. Precedence is flags, env, file, defaults.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.GlobalConfigError(); err != nil {
		return config.Config{}, fmt.Errorf("loading configuration: %w", err)
	}
	cfg := *config.GetGlobalConfig()

	flags := cmd.Flags()
	overrideString(flags, "lang", &cfg.Display.Language)
	overrideString(flags, "theme", &cfg.Display.Theme)
	overrideString(flags, "dataset", &cfg.Dataset.Path)
	if flags.Changed("watch") {
		cfg.Dataset.Watch, _ = flags.GetBool("watch")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSession resolves the configuration and filter flags and loads the
// dataset.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	filter, err := filterFromFlags(flags)
	if err != nil {
		return nil, err
	}
	order := dataset.Newest
	if asc, _ := flags.GetBool("ascending"); asc {
		order = dataset.Oldest
	}

	ds, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(cmd.Context())
	log.Debug().
		Str("component", "cli").
		Str("dataset", datasetName(cfg.Dataset.Path)).
		Int("records", len(ds.Records)).
		Str("language", string(cfg.Language())).
		Msg("session ready")

	return &session{cfg: cfg, data: ds, filter: filter, order: order}, nil
}

func overrideString(flags *pflag.FlagSet, name string, target *string) {
	if !flags.Changed(name) {
		return
	}
	if v, err := flags.GetString(name); err == nil {
		*target = v
	}
}

func filterFromFlags(flags *pflag.FlagSet) (dataset.Filter, error) {
	var f dataset.Filter

	if v, _ := flags.GetString("company"); v != "" {
		c, err := dataset.LookupCompany(v)
		if err != nil {
			return f, fmt.Errorf("%w: --company: %w", ErrInvalidFlag, err)
		}
		f.Company = c
	}
	if v, _ := flags.GetString("capability"); v != "" {
		c, err := dataset.ParseCapability(v)
		if err != nil {
			return f, fmt.Errorf("%w: --capability: %w", ErrInvalidFlag, err)
		}
		f.Capability = c
	}
	if v, _ := flags.GetString("year"); v != "" {
		if _, err := strconv.Atoi(v); err != nil || len(v) != yearDigits {
			return f, fmt.Errorf("%w: --year %q, want YYYY", ErrInvalidFlag, v)
		}
		f.Year = v
	}
	f.Search, _ = flags.GetString("search")
	return f, nil
}

// models returns the localized, filtered and sorted models.
func (s *session) models() []dataset.Model {
	return dataset.Apply(s.data.Localize(s.cfg.Language()), s.filter, s.order)
}

func datasetName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
