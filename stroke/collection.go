package stroke

import "slices"

// Change records a mutation of a Collection: strokes Removed from and then
// strokes Added at position Index. Hit testers tracking a collection must
// be handed every Change.
type Change struct {
	Index   int
	Added   []*Stroke
	Removed []*Stroke
}

// IsEmpty is a predicate: did the mutation leave the collection unchanged?
func (ch Change) IsEmpty() bool {
	return len(ch.Added) == 0 && len(ch.Removed) == 0
}

// Collection is an ordered set of strokes. Membership is by identity.
type Collection struct {
	strokes []*Stroke
}

// NewCollection creates a collection. Duplicates are dropped.
func NewCollection(strokes ...*Stroke) *Collection {
	c := &Collection{}
	c.Add(strokes...)
	return c
}

// Len returns the number of strokes.
func (c *Collection) Len() int {
	return len(c.strokes)
}

// At returns stroke i.
func (c *Collection) At(i int) *Stroke {
	return c.strokes[i]
}

// Strokes returns the strokes. Clients must not modify the slice.
func (c *Collection) Strokes() []*Stroke {
	return c.strokes
}

// IndexOf returns the position of s, or -1.
func (c *Collection) IndexOf(s *Stroke) int {
	return slices.Index(c.strokes, s)
}

// Add appends strokes.
func (c *Collection) Add(strokes ...*Stroke) Change {
	return c.Insert(len(c.strokes), strokes...)
}

// Insert inserts strokes at position i. Nil strokes and strokes already
// contained are skipped.
func (c *Collection) Insert(i int, strokes ...*Stroke) Change {
	ch := Change{Index: i}
	for _, s := range strokes {
		if s == nil || c.IndexOf(s) >= 0 || slices.Contains(ch.Added, s) {
			tracer().Debugf("collection: skipping nil or duplicate stroke")
			continue
		}
		ch.Added = append(ch.Added, s)
	}
	c.strokes = slices.Insert(c.strokes, i, ch.Added...)
	return ch
}

// Remove removes a stroke. Removing a stroke which is not contained
// results in an empty change.
func (c *Collection) Remove(s *Stroke) Change {
	i := c.IndexOf(s)
	if i < 0 {
		return Change{Index: -1}
	}
	return c.RemoveAt(i, 1)
}

// RemoveAt removes count strokes, starting at position i.
func (c *Collection) RemoveAt(i, count int) Change {
	ch := Change{Index: i, Removed: slices.Clone(c.strokes[i : i+count])}
	c.strokes = slices.Delete(c.strokes, i, i+count)
	return ch
}

// Replace substitutes a stroke by a list of strokes, which may be empty.
// This is how erasing applies its results.
func (c *Collection) Replace(s *Stroke, with ...*Stroke) Change {
	i := c.IndexOf(s)
	if i < 0 {
		return Change{Index: -1}
	}
	removed := c.RemoveAt(i, 1)
	added := c.Insert(i, with...)
	return Change{Index: i, Removed: removed.Removed, Added: added.Added}
}
