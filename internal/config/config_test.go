package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/rawgen/internal/gate"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
package = "diskstructs"

[[record]]
name = "RawInode"
spec = "specs/inode.spec"
policy = "length"
core_size = 128
peek = ["i_extra_isize"]

[[record]]
name = "RawGroupDesc"
spec = "specs/desc.spec"
policy = "determinant"
core_size = 32
determinant = "desc_size"
external = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "diskstructs", cfg.Package)
	require.Len(t, cfg.Targets, 2)

	inode := cfg.Targets[0]
	assert.Equal(t, "RawInode", inode.Name)
	assert.Equal(t, 128, inode.CoreSize)
	assert.Equal(t, []string{"i_extra_isize"}, inode.Peek)

	pol, err := inode.GatePolicy()
	require.NoError(t, err)
	assert.Equal(t, gate.ByLength, pol.Strategy)

	pol, err = cfg.Targets[1].GatePolicy()
	require.NoError(t, err)
	assert.Equal(t, gate.ByDeterminant, pol.Strategy)
	assert.True(t, pol.External)
	assert.Equal(t, "desc_size", pol.Determinant)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadEmptyTargets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "targets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`package = "x"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no [[record]] targets")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "rawstructs", cfg.Package)
	require.Len(t, cfg.Targets, 3)

	names := []string{}
	for _, tgt := range cfg.Targets {
		names = append(names, tgt.Name)
		_, err := tgt.GatePolicy()
		assert.NoError(t, err, tgt.Name)
	}
	assert.Equal(t, []string{"RawInode", "RawBlockGroup", "RawSuperblock"}, names)
}

func TestGatePolicyUnknown(t *testing.T) {
	tgt := Target{Name: "X", Policy: "weird"}
	_, err := tgt.GatePolicy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown policy "weird"`)
}
