package army_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/hexbattle/internal/game/army"
	"github.com/cory-johannsen/hexbattle/internal/game/unit"
	"github.com/cory-johannsen/hexbattle/internal/testutil"
)

const rosterYAML = `
attacker:
  stacks:
    - unit: spearman
      amount: 5
    - unit: archer
      amount: 3
    - unit: spearman
      amount: 2
defender:
  fill:
    unit: horseman
    total: 10
`

func TestRoster_BuildArmies(t *testing.T) {
	r, err := army.LoadRosterFromBytes([]byte(rosterYAML))
	require.NoError(t, err)

	att, def, err := r.BuildArmies(testutil.Registry(), 4)
	require.NoError(t, err)
	assert.Equal(t, army.Attacker, att.Side())
	assert.Equal(t, army.Defender, def.Side())

	s0, _ := att.TroopAt(0)
	s1, _ := att.TroopAt(1)
	assert.Equal(t, 7, s0.CurrentAmount)
	assert.Equal(t, "archer", s1.Type.ID)
	assert.Len(t, att.Living(), 2)

	assert.Equal(t, []int{3, 3, 2, 2}, amounts(def))
}

func TestRoster_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown unit":   "attacker: {stacks: [{unit: dragon, amount: 1}]}\ndefender: {fill: {unit: spearman, total: 4}}",
		"unknown fill":   "attacker: {stacks: [{unit: spearman, amount: 1}]}\ndefender: {fill: {unit: dragon, total: 4}}",
		"empty side":     "attacker: {stacks: [{unit: spearman, amount: 1}]}\ndefender: {}",
		"both forms":     "attacker: {stacks: [{unit: spearman, amount: 1}], fill: {unit: spearman, total: 3}}\ndefender: {fill: {unit: spearman, total: 4}}",
		"bad amount":     "attacker: {stacks: [{unit: spearman, amount: 0}]}\ndefender: {fill: {unit: spearman, total: 4}}",
		"bad fill total": "attacker: {stacks: [{unit: spearman, amount: 1}]}\ndefender: {fill: {unit: spearman, total: -1}}",
		"too many types": "attacker: {stacks: [{unit: spearman, amount: 1}, {unit: archer, amount: 1}, {unit: horseman, amount: 1}]}\ndefender: {fill: {unit: spearman, total: 4}}",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := army.LoadRosterFromBytes([]byte(data))
			require.NoError(t, err)
			_, _, err = r.BuildArmies(testutil.Registry(), 2)
			assert.Error(t, err)
		})
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o644))
	r, err := army.LoadRoster(path)
	require.NoError(t, err)
	require.NotNil(t, r.Defender.Fill)
	assert.Equal(t, 10, r.Defender.Fill.Total)

	_, err = army.LoadRoster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("attacker: [oops"), 0o644))
	_, err = army.LoadRoster(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoadRoster_ShippedContent(t *testing.T) {
	types, err := unit.LoadTypes("../../../content/units")
	require.NoError(t, err)
	reg, err := unit.NewRegistryFromTypes(types)
	require.NoError(t, err)

	r, err := army.LoadRoster("../../../content/rosters/skirmish.yaml")
	require.NoError(t, err)
	att, def, err := r.BuildArmies(reg, army.DefaultSlots)
	require.NoError(t, err)
	assert.Len(t, att.Living(), 3)
	assert.Len(t, def.Living(), 4)
}
