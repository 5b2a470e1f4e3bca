// Package config reads casetrail settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/casetrail/internal/kinship"
)

// Format selects how commands render their results.
type Format string

const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ValidFormats is the set of accepted output formats.
var ValidFormats = map[Format]bool{FormatAuto: true, FormatText: true, FormatJSON: true}

type Config struct {
	DBPath      string
	LogUseCases bool
	Format      Format

	// Extra role labels appended to the default kinship vocabulary.
	ChildRoles   []string
	ParentRoles  []string
	PartnerRoles []string
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		DBPath: defaultDBPath(),
		Format: FormatAuto,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".casetrail", "casetrail.db")
	}
	return filepath.Join(home, ".casetrail", "casetrail.db")
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("CASETRAIL_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CASETRAIL_LOG_USECASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv("CASETRAIL_FORMAT"); v != "" {
		if f := Format(strings.ToLower(strings.TrimSpace(v))); ValidFormats[f] {
			cfg.Format = f
		}
	}
	cfg.ChildRoles = splitList(os.Getenv("CASETRAIL_CHILD_ROLES"))
	cfg.ParentRoles = splitList(os.Getenv("CASETRAIL_PARENT_ROLES"))
	cfg.PartnerRoles = splitList(os.Getenv("CASETRAIL_PARTNER_ROLES"))

	return cfg
}

// Vocabulary returns the default kinship vocabulary extended with the
// configured role labels.
func (c Config) Vocabulary() *kinship.Vocabulary {
	return kinship.DefaultVocabulary().
		WithLabels(kinship.KindChild, c.ChildRoles).
		WithLabels(kinship.KindParent, c.ParentRoles).
		WithLabels(kinship.KindPartner, c.PartnerRoles)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
