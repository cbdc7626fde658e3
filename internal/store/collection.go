package store

// entity is anything the store can hold in a collection.
type entity interface {
	EntityID() string
}

// collection is the normalized-list primitive behind every Store operation.
// It enforces nothing about id uniqueness: Set passes duplicates through
// as-is and Add appends unconditionally. Lookups scan front-to-back and act
// on the first match, so under duplicate ids the first occurrence wins.
type collection[T entity] struct {
	items []T
}

// set replaces the whole collection. The input is copied so callers cannot
// alias store-owned backing arrays.
func (c *collection[T]) set(list []T) {
	c.items = append([]T(nil), list...)
}

// add appends unconditionally, even when the id duplicates an existing entry.
// Uniqueness enforcement, if any, lives in the remote data service.
func (c *collection[T]) add(e T) {
	c.items = append(c.items, e)
}

// update replaces the first element whose id matches. It never inserts;
// a miss is a no-op.
func (c *collection[T]) update(e T) {
	for i := range c.items {
		if c.items[i].EntityID() == e.EntityID() {
			c.items[i] = e
			return
		}
	}
}

// remove deletes the first element whose id matches; a miss is a no-op.
func (c *collection[T]) remove(id string) {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// snapshot returns a copy of the collection contents.
func (c *collection[T]) snapshot() []T {
	return append([]T(nil), c.items...)
}
