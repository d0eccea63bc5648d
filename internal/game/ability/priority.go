// Package ability selects the next ability to use from an ordered priority
// list, given the combatant, the target and the current cooldowns.
package ability

// Condition kinds.
const (
	ResourceAbove         = "resource_above"
	ResourceBelow         = "resource_below"
	TargetHealthAbove     = "target_health_above"
	TargetHealthBelow     = "target_health_below"
	Always                = "always"
	BuffMissing           = "buff_missing"
	DebuffMissingOnTarget = "debuff_missing_on_target"
	CooldownReady         = "cooldown_ready"
)

// Condition is one predicate on a priority entry. Only the fields relevant to
// Type are read.
type Condition struct {
	Type     string  `yaml:"type"`
	Resource string  `yaml:"resource,omitempty"`
	Percent  float64 `yaml:"percent,omitempty"`
	BuffID   string  `yaml:"buff_id,omitempty"`
	DebuffID string  `yaml:"debuff_id,omitempty"`
}

// PriorityEntry is one row of a priority list. Conditions are ANDed.
type PriorityEntry struct {
	AbilityID  string      `yaml:"ability"`
	Enabled    bool        `yaml:"enabled"`
	Conditions []Condition `yaml:"conditions"`
}

// CombatantState is the acting character's resource and health.
type CombatantState struct {
	Resource    float64
	MaxResource float64
	HP          float64
	MaxHP       float64
}

// TargetState is the current target's health.
type TargetState struct {
	HP    float64
	MaxHP float64
}

// ConditionOracle answers the conditions that depend on buff and cooldown
// state the selector does not own.
type ConditionOracle interface {
	BuffMissing(buffID string) bool
	DebuffMissingOnTarget(debuffID string) bool
	CooldownReady(abilityID string) bool
}

// PermissiveOracle answers true to every question. It is the default when no
// buff or cooldown authority is wired in.
type PermissiveOracle struct{}

func (PermissiveOracle) BuffMissing(string) bool           { return true }
func (PermissiveOracle) DebuffMissingOnTarget(string) bool { return true }
func (PermissiveOracle) CooldownReady(string) bool         { return true }

// Selector evaluates priority lists against an oracle.
type Selector struct {
	oracle ConditionOracle
}

// NewSelector returns a Selector that delegates oracle conditions to oracle.
// A nil oracle selects PermissiveOracle.
func NewSelector(oracle ConditionOracle) *Selector {
	if oracle == nil {
		oracle = PermissiveOracle{}
	}
	return &Selector{oracle: oracle}
}

// percentOf returns cur as a percentage of max. A pool with max <= 0 reads as
// empty.
func percentOf(cur, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return cur / max * 100
}

func (s *Selector) holds(c Condition, abilityID string, who CombatantState, target TargetState) bool {
	switch c.Type {
	case Always:
		return true
	case ResourceAbove:
		return percentOf(who.Resource, who.MaxResource) > c.Percent
	case ResourceBelow:
		return percentOf(who.Resource, who.MaxResource) < c.Percent
	case TargetHealthAbove:
		return percentOf(target.HP, target.MaxHP) > c.Percent
	case TargetHealthBelow:
		return percentOf(target.HP, target.MaxHP) < c.Percent
	case BuffMissing:
		return s.oracle.BuffMissing(c.BuffID)
	case DebuffMissingOnTarget:
		return s.oracle.DebuffMissingOnTarget(c.DebuffID)
	case CooldownReady:
		return s.oracle.CooldownReady(abilityID)
	default:
		return false
	}
}

// Select scans entries in order and returns the first enabled entry that is
// off cooldown and whose every condition holds.
//
// Postcondition: returns ("", false) when no entry is usable. An entry with
// an unknown condition type is never selected.
func (s *Selector) Select(entries []PriorityEntry, who CombatantState, target TargetState, cooldowns map[string]float64) (string, bool) {
	for _, e := range entries {
		if !e.Enabled {
			continue
		}
		if cooldowns[e.AbilityID] > 0 {
			continue
		}
		usable := true
		for _, c := range e.Conditions {
			if !s.holds(c, e.AbilityID, who, target) {
				usable = false
				break
			}
		}
		if usable {
			return e.AbilityID, true
		}
	}
	return "", false
}

// SelectNextAbility is Select with PermissiveOracle.
func SelectNextAbility(entries []PriorityEntry, who CombatantState, target TargetState, cooldowns map[string]float64) (string, bool) {
	return NewSelector(nil).Select(entries, who, target, cooldowns)
}
