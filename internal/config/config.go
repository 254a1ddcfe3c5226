// Package config describes the driver's target list: which record types to
// generate, from which spec files, under which gating policy.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alexhholmes/rawgen/internal/gate"
)

// Target is one record type to generate.
type Target struct {
	Name        string   `toml:"name"`
	Spec        string   `toml:"spec"`
	Policy      string   `toml:"policy"` // none, length, determinant, marker
	CoreSize    int      `toml:"core_size"`
	Determinant string   `toml:"determinant"`
	External    bool     `toml:"external"`
	Peek        []string `toml:"peek"`
}

// Config is the full driver configuration.
type Config struct {
	Package string   `toml:"package"`
	Targets []Target `toml:"record"`
}

// Load reads a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Package == "" {
		cfg.Package = "rawstructs"
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("config %s: no [[record]] targets", path)
	}
	return &cfg, nil
}

// Default returns the built-in target set: the ext4 record types this tool
// exists to generate.
func Default() *Config {
	return &Config{
		Package: "rawstructs",
		Targets: []Target{
			{
				Name:     "RawInode",
				Spec:     "specs/inode.spec",
				Policy:   "length",
				CoreSize: 128,
				Peek:     []string{"i_extra_isize"},
			},
			{
				Name:     "RawBlockGroup",
				Spec:     "specs/block-group.spec",
				Policy:   "length",
				CoreSize: 32,
			},
			{
				Name:   "RawSuperblock",
				Spec:   "specs/superblock.spec",
				Policy: "none",
			},
		},
	}
}

// GatePolicy translates the target's policy fields into a gate.Policy.
func (t *Target) GatePolicy() (gate.Policy, error) {
	pol := gate.Policy{
		CoreSize:    t.CoreSize,
		Determinant: t.Determinant,
		External:    t.External,
		Peek:        t.Peek,
	}
	switch t.Policy {
	case "none", "":
		pol.Strategy = gate.None
	case "length":
		pol.Strategy = gate.ByLength
	case "determinant":
		pol.Strategy = gate.ByDeterminant
	case "marker":
		pol.Strategy = gate.ByMarker
	default:
		return pol, fmt.Errorf("target %s: unknown policy %q", t.Name, t.Policy)
	}
	return pol, nil
}
