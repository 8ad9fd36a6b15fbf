package entity

import (
	"fmt"

	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

// Collection groups the active entities of a multi-selection so they share
// one bound and one set of handles. Its transform stays the identity, so its
// world bound is already in device space.
//
// A collection does not own its members: operators still transform each
// member on its own.
type Collection struct {
	Base

	entities []Entity
}

// NewCollection groups entities. Rotation is locked because members rotate
// about their own centers.
func NewCollection(entities []Entity) (*Collection, error) {
	if len(entities) == 0 {
		return nil, ErrEmptyCollection
	}

	c := &Collection{
		Base:     newBase(typeid.NewCollectionID()),
		entities: append([]Entity(nil), entities...),
	}
	c.RotateLocked = true
	c.Active = true
	return c, nil
}

func (c *Collection) Kind() Kind { return KindCollection }

// Entities returns the grouped entities.
func (c *Collection) Entities() []Entity {
	return append([]Entity(nil), c.entities...)
}

// Contains reports whether e is a member of the collection.
func (c *Collection) Contains(e Entity) bool {
	for _, m := range c.entities {
		if m == e {
			return true
		}
	}
	return false
}

// LockAll disables every handle of the group.
func (c *Collection) LockAll() {
	c.XLocked = true
	c.YLocked = true
	c.DiagLocked = true
	c.RotateLocked = true
}

func (c *Collection) BoundWorld() geom.Rectangle {
	bounds := make([]geom.Rectangle, len(c.entities))
	for i, e := range c.entities {
		bounds[i] = Bound(e)
	}
	// Non-empty by construction.
	r, _ := geom.Union(bounds)
	return r
}

func (c *Collection) SetRotateOrigin(geom.Point) error {
	return fmt.Errorf("set rotate origin of %s: %w", KindCollection, ErrNotSupported)
}
