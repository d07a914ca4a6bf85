// Package config loads the optional TOML tunables file the CLI driver
// accepts alongside its mandatory paths: read the whole file, hand the
// bytes to toml.Unmarshal, and leave every unset field at its documented
// default.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tunables holds every CEGIS knob that can be set from a TOML file instead
// of a command-line flag: cegis.Config's fields plus the logging level the
// ambient stack's gologger instance is configured with.
type Tunables struct {
	// ClauseExplosionGuard mirrors cegis.Config.ClauseExplosionGuard.
	ClauseExplosionGuard int `toml:"clause_explosion_guard"`

	// RelationStateBound mirrors cegis.Config.RelationBound; zero means
	// "use the same bound as the invariant automaton", matching the CLI's
	// own optional --relation-states flag semantics.
	RelationStateBound int `toml:"relation_state_bound"`

	// SolverName mirrors cegis.Config.SolverName.
	SolverName string `toml:"solver"`

	// LogLevel names the gologger verbosity level ("silent", "error",
	// "warning", "info", "verbose", "debug").
	LogLevel string `toml:"log_level"`
}

// DefaultTunables returns the same defaults cegis.DefaultConfig carries,
// plus "info"-level logging.
func DefaultTunables() Tunables {
	return Tunables{
		ClauseExplosionGuard: 15,
		SolverName:           "gini",
		LogLevel:             "info",
	}
}

// LoadTunables reads and decodes the TOML file at path, starting from
// DefaultTunables so a file that sets only one field leaves the rest at
// their defaults.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return t, nil
}
