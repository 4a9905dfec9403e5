package boss

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cory-johannsen/tarnished/internal/game/content"
)

// Source is the subset of dice.Source used for sampling.
type Source interface {
	Intn(n int) int
}

// Entry is one boss record in a category pool.
type Entry struct {
	Name   string `yaml:"name"`
	Health int    `yaml:"health"`
	Runes  int    `yaml:"runes"`
	// Weight is the relative sampling weight; zero is read as one.
	Weight int `yaml:"weight"`
}

// Validate checks the entry invariants.
func (e *Entry) Validate() error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if e.Health < 1 {
		errs = append(errs, fmt.Errorf("health must be >= 1, got %d", e.Health))
	}
	if e.Runes < 0 {
		errs = append(errs, fmt.Errorf("runes must be >= 0, got %d", e.Runes))
	}
	if e.Weight < 0 {
		errs = append(errs, fmt.Errorf("weight must be >= 0, got %d", e.Weight))
	}
	return errors.Join(errs...)
}

func (e *Entry) weight() int {
	if e.Weight == 0 {
		return 1
	}
	return e.Weight
}

type poolFile struct {
	Bosses []Entry `yaml:"bosses"`
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDropChance overrides the drop chance of category. A chance below 1 is
// clamped by the draw. Main bosses never drop loot, so overriding main is a
// no-op.
func WithDropChance(c Category, chance int) Option {
	return func(cat *Catalog) {
		if c == CategoryMain {
			return
		}
		p := cat.profiles[c]
		p.DropChance = chance
		cat.profiles[c] = p
	}
}

// Catalog holds the field, mini and main boss pools. It is read-only after
// construction.
type Catalog struct {
	pools    map[Category][]Entry
	profiles map[Category]Profile
}

// pooled lists the categories sampled from YAML pools.
var pooled = []Category{CategoryField, CategoryMini, CategoryMain}

// NewCatalog builds a Catalog from already-loaded pools.
//
// Postcondition: returns ErrMalformed when a pooled category is empty or an
// entry fails Validate.
func NewCatalog(pools map[Category][]Entry, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		pools:    make(map[Category][]Entry, len(pooled)),
		profiles: make(map[Category]Profile, len(profiles)),
	}
	for k, v := range profiles {
		c.profiles[k] = v
	}
	for _, cat := range pooled {
		entries := pools[cat]
		if len(entries) == 0 {
			return nil, content.Malformed("%s boss pool is empty", cat)
		}
		for i := range entries {
			if err := entries[i].Validate(); err != nil {
				return nil, content.Malformed("%s boss[%d] %q: %v", cat, i, entries[i].Name, err)
			}
		}
		c.pools[cat] = entries
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LoadCatalog reads field.yaml, mini.yaml and main.yaml from dir.
//
// Postcondition: returns a usable Catalog, or an error wrapping
// content.ErrNotFound or content.ErrMalformed.
func LoadCatalog(dir string, opts ...Option) (*Catalog, error) {
	pools := make(map[Category][]Entry, len(pooled))
	for _, cat := range pooled {
		var f poolFile
		path := filepath.Join(dir, string(cat)+".yaml")
		if err := content.DecodeFile(path, &f); err != nil {
			return nil, fmt.Errorf("loading %s bosses: %w", cat, err)
		}
		pools[cat] = f.Bosses
	}
	return NewCatalog(pools, opts...)
}

// Pool returns the entries of category.
func (c *Catalog) Pool(cat Category) []Entry {
	return c.pools[cat]
}

// Profile returns the effective profile of category, including overrides.
func (c *Catalog) Profile(cat Category) Profile {
	return c.profiles[cat]
}

// Spawn creates a boss of category at full health. The tutorial category
// always yields the fixed tutorial boss; the others draw a weighted sample
// from their pool.
//
// Precondition: src must be non-nil.
// Postcondition: returns an error for an unknown category.
func (c *Catalog) Spawn(cat Category, src Source) (*Boss, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("unknown boss category %q", cat)
	}
	p := c.profiles[cat]
	if cat == CategoryTutorial {
		b := Tutorial()
		b.DropChance = p.DropChance
		return b, nil
	}
	return newBoss(cat, c.sample(cat, src), p), nil
}

func (c *Catalog) sample(cat Category, src Source) Entry {
	pool := c.pools[cat]
	total := 0
	for i := range pool {
		total += pool[i].weight()
	}
	r := src.Intn(total)
	for i := range pool {
		r -= pool[i].weight()
		if r < 0 {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}
