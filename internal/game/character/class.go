package character

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/tarnished/internal/game/content"
	"github.com/cory-johannsen/tarnished/internal/game/inventory"
)

// Class is a starting build loaded from YAML.
//
// Precondition: ID, Name and every Stat must be present after loading.
type Class struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Level     int               `yaml:"level"`
	Stats     map[Stat]int      `yaml:"stats"`
	Equipment map[string]string `yaml:"equipment"`
}

// Validate checks the class invariants.
//
// Postcondition: returns nil iff id and name are set, level >= 1, every stat
// is present and non-negative, no unknown stat or slot appears, and the right
// hand holds an item.
func (c *Class) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("id must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.Level < 1 {
		errs = append(errs, fmt.Errorf("level must be >= 1, got %d", c.Level))
	}
	for _, s := range Stats {
		v, ok := c.Stats[s]
		if !ok {
			errs = append(errs, fmt.Errorf("stat %s missing", s))
		} else if v < 0 {
			errs = append(errs, fmt.Errorf("stat %s must be >= 0, got %d", s, v))
		}
	}
	for s := range c.Stats {
		if !s.Valid() {
			errs = append(errs, fmt.Errorf("unknown stat %q", s))
		}
	}
	for slot := range c.Equipment {
		if !validSlot(slot) {
			errs = append(errs, fmt.Errorf("unknown equipment slot %q", slot))
		}
	}
	if c.Equipment[string(inventory.HandRight)] == "" {
		errs = append(errs, errors.New("right hand must hold an item"))
	}
	return errors.Join(errs...)
}

func validSlot(slot string) bool {
	for _, h := range inventory.Hands {
		if slot == string(h) {
			return true
		}
	}
	for _, a := range inventory.ArmorSlots {
		if slot == string(a) {
			return true
		}
	}
	return false
}

// LoadClasses reads every YAML file in dir as a Class.
//
// Postcondition: returns all classes, or an error wrapping content.ErrNotFound
// or content.ErrMalformed. An empty directory is ErrNotFound.
func LoadClasses(dir string) ([]*Class, error) {
	files, err := content.YAMLFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, content.NotFound("no class files in %q", dir)
	}
	classes := make([]*Class, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, path := range files {
		var c Class
		if err := content.DecodeFile(path, &c); err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, content.Malformed("class file %q: %v", path, err)
		}
		if seen[c.ID] {
			return nil, content.Malformed("class %q defined more than once", c.ID)
		}
		seen[c.ID] = true
		classes = append(classes, &c)
	}
	return classes, nil
}

// FindClass returns the class whose ID or Name matches name, ignoring case.
//
// Postcondition: returns an error wrapping content.ErrNotFound when no class matches.
func FindClass(classes []*Class, name string) (*Class, error) {
	for _, c := range classes {
		if strings.EqualFold(c.ID, name) || strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, content.NotFound("class %q", name)
}
