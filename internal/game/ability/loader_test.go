package ability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/idlecore/internal/game/ability"
)

func TestLoadPriorities_Content(t *testing.T) {
	lists, err := ability.LoadPriorities("../../../content/priorities")
	require.NoError(t, err)
	l, ok := lists["blademaster-default"]
	require.True(t, ok)
	assert.Equal(t, "blademaster", l.Class)
	require.Len(t, l.Entries, 7)
	assert.Equal(t, "execute", l.Entries[0].AbilityID)
	assert.True(t, l.Entries[0].Enabled, "enabled defaults to true")
	assert.False(t, l.Entries[5].Enabled)
	assert.Equal(t, ability.Condition{Type: ability.TargetHealthBelow, Percent: 20}, l.Entries[0].Conditions[0])
}

func TestLoadPriorities_RejectsUnknownCondition(t *testing.T) {
	dir := t.TempDir()
	src := "name: x\nentries:\n  - ability: a\n    conditions:\n      - { type: moon_phase }\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte(src), 0o644))
	_, err := ability.LoadPriorities(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"moon_phase"`)
}

func TestLoadPriorities_RejectsUnknownKeys(t *testing.T) {
	cases := map[string]string{
		"condition": "name: x\nentries:\n  - ability: a\n    conditions:\n      - { type: target_health_below, precent: 20 }\n",
		"entry":     "name: x\nentries:\n  - ability: a\n    enabeld: false\n",
		"list":      "name: x\nclas: warrior\nentries: []\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "x.yaml"), []byte(src), 0o644))
			_, err := ability.LoadPriorities(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot parse file")
		})
	}
}

func TestLoadPriorities_DuplicateName(t *testing.T) {
	dir := t.TempDir()
	src := "name: x\nentries: []\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(src), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(src), 0o644))
	_, err := ability.LoadPriorities(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadPriorities_MissingDir(t *testing.T) {
	_, err := ability.LoadPriorities(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestPriorityList_ValidatePercentRange(t *testing.T) {
	l := &ability.PriorityList{Name: "p", Entries: []ability.PriorityEntry{
		{AbilityID: "a", Conditions: []ability.Condition{{Type: ability.ResourceAbove, Percent: 140}}},
		{Conditions: []ability.Condition{{Type: ability.Always}}},
	}}
	err := l.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percent")
	assert.Contains(t, err.Error(), "ability must not be empty")
}
