// Package talent manages talent trees, point allocation, respec pricing and
// the effects granted by an allocation.
package talent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

// Effect types.
const (
	EffectStatBonus         = "stat_bonus"
	EffectStatPercent       = "stat_percent"
	EffectAbilityModifier   = "ability_modifier"
	EffectNewAbility        = "new_ability"
	EffectProcChance        = "proc_chance"
	EffectResourceModifier  = "resource_modifier"
	EffectDamagePercent     = "damage_percent"
	EffectCooldownReduction = "cooldown_reduction"
)

var validEffectTypes = map[string]bool{
	EffectStatBonus:         true,
	EffectStatPercent:       true,
	EffectAbilityModifier:   true,
	EffectNewAbility:        true,
	EffectProcChance:        true,
	EffectResourceModifier:  true,
	EffectDamagePercent:     true,
	EffectCooldownReduction: true,
}

// maxTier is the deepest tier a node may sit in.
const maxTier = 5

// Effect is the bonus a node grants at one rank.
type Effect struct {
	Rank        int     `yaml:"rank"`
	Type        string  `yaml:"type"`
	Stat        string  `yaml:"stat,omitempty"`
	AbilityID   string  `yaml:"ability_id,omitempty"`
	Value       float64 `yaml:"value"`
	Description string  `yaml:"description"`
}

// Node is one talent in a tree.
type Node struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	Tier           int      `yaml:"tier"`
	MaxRank        int      `yaml:"max_rank"`
	PointsRequired int      `yaml:"points_required"`
	Prerequisite   string   `yaml:"prerequisite,omitempty"`
	Effects        []Effect `yaml:"effects"`
}

// Tree is one specialization's talent tree.
type Tree struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	ClassID     string `yaml:"class"`
	SpecID      string `yaml:"spec"`
	Description string `yaml:"description"`
	Nodes       []Node `yaml:"nodes"`
}

// Node returns the node with id, or nil.
func (t *Tree) Node(id string) *Node {
	for i := range t.Nodes {
		if t.Nodes[i].ID == id {
			return &t.Nodes[i]
		}
	}
	return nil
}

// Validate checks the structural invariants of the tree.
//
// Precondition: t is non-nil.
// Postcondition: returns nil iff every node is well formed and every
// prerequisite names another node of the same tree.
func (t *Tree) Validate() error {
	var errs []error
	if t.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	seen := make(map[string]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		if n.ID == "" {
			errs = append(errs, errors.New("node id must not be empty"))
			continue
		}
		if seen[n.ID] {
			errs = append(errs, fmt.Errorf("duplicate node %q", n.ID))
		}
		seen[n.ID] = true
		if n.MaxRank < 1 {
			errs = append(errs, fmt.Errorf("node %q: max_rank must be >= 1", n.ID))
		}
		if n.Tier < 1 || n.Tier > maxTier {
			errs = append(errs, fmt.Errorf("node %q: tier must be in [1, %d], got %d", n.ID, maxTier, n.Tier))
		}
		if n.PointsRequired < 0 {
			errs = append(errs, fmt.Errorf("node %q: points_required must be >= 0", n.ID))
		}
		for _, e := range n.Effects {
			if e.Rank < 1 || e.Rank > n.MaxRank {
				errs = append(errs, fmt.Errorf("node %q: effect rank %d outside [1, %d]", n.ID, e.Rank, n.MaxRank))
			}
			if !validEffectTypes[e.Type] {
				errs = append(errs, fmt.Errorf("node %q: unknown effect type %q", n.ID, e.Type))
			}
		}
	}
	for _, n := range t.Nodes {
		if n.Prerequisite == "" {
			continue
		}
		if n.Prerequisite == n.ID {
			errs = append(errs, fmt.Errorf("node %q: prerequisite must not be itself", n.ID))
		} else if !seen[n.Prerequisite] {
			errs = append(errs, fmt.Errorf("node %q: prerequisite %q not in tree", n.ID, n.Prerequisite))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("talent tree %q validation failed: %v", t.ID, errs)
	}
	return nil
}

// applyTierRequirements fills PointsRequired for nodes that leave it unset
// from the configured per-tier thresholds.
func (t *Tree) applyTierRequirements(cfg *balance.Config) {
	reqs := cfg.Talents.TierRequirements
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.PointsRequired == 0 && n.Tier >= 1 && n.Tier <= len(reqs) {
			n.PointsRequired = reqs[n.Tier-1]
		}
	}
}

// LoadTrees reads every *.yaml and *.yml file in dir as a Tree, fills
// unset tier requirements from cfg, validates it, and returns the trees
// sorted by id.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid trees or the first encountered error.
func LoadTrees(dir string, cfg *balance.Config) ([]*Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadTrees: cannot read directory %q: %w", dir, err)
	}

	var trees []*Tree
	ids := make(map[string]string)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("LoadTrees: cannot read file %q: %w", path, err)
		}
		var t Tree
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		err = dec.Decode(&t)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("LoadTrees: cannot parse file %q: %w", path, err)
		}
		t.applyTierRequirements(cfg)
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("LoadTrees: invalid tree in %q: %w", path, err)
		}
		if prev, ok := ids[t.ID]; ok {
			return nil, fmt.Errorf("LoadTrees: tree %q defined in both %q and %q", t.ID, prev, path)
		}
		ids[t.ID] = path
		trees = append(trees, &t)
	}
	sort.Slice(trees, func(i, j int) bool { return trees[i].ID < trees[j].ID })
	return trees, nil
}
