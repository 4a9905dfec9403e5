package inventory

import (
	"fmt"
	"path/filepath"

	"github.com/cory-johannsen/tarnished/internal/game/content"
)

// Source is the subset of dice.Source used for sampling.
type Source interface {
	Intn(n int) int
}

// poolFile is the on-disk shape of one item pool.
type poolFile struct {
	Items []*Item `yaml:"items"`
}

// Catalog holds the standard and upgraded item pools indexed by name.
// It is read-only after LoadCatalog returns.
type Catalog struct {
	pools  map[Tier][]*Item
	byName map[string]*Item
}

// NewCatalog builds a Catalog from already-loaded pools, classifying each item
// with types.
//
// Postcondition: returns ErrMalformed when a pool is empty, an item fails
// Validate, its type is unknown, or a name is duplicated.
func NewCatalog(types TypeSet, standard, upgraded []*Item) (*Catalog, error) {
	c := &Catalog{
		pools:  make(map[Tier][]*Item),
		byName: make(map[string]*Item),
	}
	for tier, items := range map[Tier][]*Item{TierStandard: standard, TierUpgraded: upgraded} {
		if len(items) == 0 {
			return nil, content.Malformed("%s item pool is empty", tier)
		}
		for idx, it := range items {
			if it == nil {
				return nil, content.Malformed("%s item[%d] is empty", tier, idx)
			}
			if err := it.Validate(); err != nil {
				return nil, content.Malformed("%s item[%d] %q: %v", tier, idx, it.Name, err)
			}
			kind, ok := types.KindOf(it.Type)
			if !ok {
				return nil, content.Malformed("%s item %q: unknown type %q", tier, it.Name, it.Type)
			}
			if _, dup := c.byName[it.Name]; dup {
				return nil, content.Malformed("item %q defined more than once", it.Name)
			}
			it.Kind = kind
			it.Tier = tier
			c.byName[it.Name] = it
		}
		c.pools[tier] = items
	}
	return c, nil
}

// LoadCatalog reads standard.yaml and upgraded.yaml from dir.
//
// Postcondition: returns a usable Catalog, or an error wrapping
// content.ErrNotFound or content.ErrMalformed.
func LoadCatalog(dir string, types TypeSet) (*Catalog, error) {
	var pools [2]poolFile
	for i, tier := range []Tier{TierStandard, TierUpgraded} {
		path := filepath.Join(dir, string(tier)+".yaml")
		if err := content.DecodeFile(path, &pools[i]); err != nil {
			return nil, fmt.Errorf("loading %s items: %w", tier, err)
		}
	}
	return NewCatalog(types, pools[0].Items, pools[1].Items)
}

// Item returns the item with the given name and whether it was found.
func (c *Catalog) Item(name string) (*Item, bool) {
	it, ok := c.byName[name]
	return it, ok
}

// MustResolve returns the named item or an error wrapping content.ErrNotFound.
func (c *Catalog) MustResolve(name string) (*Item, error) {
	it, ok := c.byName[name]
	if !ok {
		return nil, content.NotFound("item %q", name)
	}
	return it, nil
}

// Pool returns the items of tier.
func (c *Catalog) Pool(tier Tier) []*Item {
	return c.pools[tier]
}

// Sample returns a uniformly chosen item from tier.
//
// Precondition: src must be non-nil; tier must be TierStandard or TierUpgraded.
func (c *Catalog) Sample(tier Tier, src Source) *Item {
	pool := c.pools[tier]
	return pool[src.Intn(len(pool))]
}
