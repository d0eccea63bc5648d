package ability

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var knownConditions = map[string]bool{
	ResourceAbove:         true,
	ResourceBelow:         true,
	TargetHealthAbove:     true,
	TargetHealthBelow:     true,
	Always:                true,
	BuffMissing:           true,
	DebuffMissingOnTarget: true,
	CooldownReady:         true,
}

// PriorityList is a named, ordered priority list loaded from content.
type PriorityList struct {
	Name    string          `yaml:"name"`
	Class   string          `yaml:"class"`
	Entries []PriorityEntry `yaml:"entries"`
}

// listFile is the on-disk shape of a PriorityList. Enabled is a pointer so
// an omitted key can default to true.
type listFile struct {
	Name    string `yaml:"name"`
	Class   string `yaml:"class"`
	Entries []struct {
		AbilityID  string      `yaml:"ability"`
		Enabled    *bool       `yaml:"enabled"`
		Conditions []Condition `yaml:"conditions"`
	} `yaml:"entries"`
}

// decodeList strictly decodes one priority list; unknown keys are errors.
func decodeList(r io.Reader) (*PriorityList, error) {
	var f listFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	l := &PriorityList{Name: f.Name, Class: f.Class, Entries: make([]PriorityEntry, len(f.Entries))}
	for i, e := range f.Entries {
		l.Entries[i] = PriorityEntry{
			AbilityID:  e.AbilityID,
			Enabled:    e.Enabled == nil || *e.Enabled,
			Conditions: e.Conditions,
		}
	}
	return l, nil
}

// Validate checks that every entry names an ability and uses known
// condition types with in-range percentages.
//
// Precondition: l is non-nil.
// Postcondition: returns nil iff the list is well formed.
func (l *PriorityList) Validate() error {
	var errs []error
	if l.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for i, e := range l.Entries {
		if e.AbilityID == "" {
			errs = append(errs, fmt.Errorf("entry %d: ability must not be empty", i))
		}
		for _, c := range e.Conditions {
			if !knownConditions[c.Type] {
				errs = append(errs, fmt.Errorf("entry %d (%s): unknown condition type %q", i, e.AbilityID, c.Type))
			}
			if c.Percent < 0 || c.Percent > 100 {
				errs = append(errs, fmt.Errorf("entry %d (%s): percent must be in [0, 100], got %g", i, e.AbilityID, c.Percent))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("priority list validation failed: %v", errs)
	}
	return nil
}

// LoadPriorities reads every *.yaml and *.yml file in dir as a
// PriorityList and returns them keyed by name.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid lists or the first encountered error.
func LoadPriorities(dir string) (map[string]*PriorityList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadPriorities: cannot read directory %q: %w", dir, err)
	}

	lists := make(map[string]*PriorityList)
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("LoadPriorities: cannot read file %q: %w", path, err)
		}
		l, err := decodeList(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("LoadPriorities: cannot parse file %q: %w", path, err)
		}
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("LoadPriorities: invalid list in %q: %w", path, err)
		}
		if _, dup := lists[l.Name]; dup {
			return nil, fmt.Errorf("LoadPriorities: duplicate list %q in %q", l.Name, path)
		}
		lists[l.Name] = l
	}
	return lists, nil
}
