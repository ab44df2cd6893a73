package fretboard

import (
	"iter"
	"slices"
)

// TuningCollection is a non-empty, ordered set of tunings with one of them
// selected. The selected index always lies within the collection; Select is
// the only way to change it.
type TuningCollection struct {
	items    []Tuning
	selected int
}

// NewTuningCollection returns a collection over a copy of items with the
// tuning at index selected chosen. It fails with ErrCollectionEmpty when items
// is empty and with a *CollectionIndexError when selected is out of range.
func NewTuningCollection(items []Tuning, selected int) (*TuningCollection, error) {
	if len(items) == 0 {
		return nil, ErrCollectionEmpty
	}
	c := &TuningCollection{items: slices.Clone(items)}
	if err := c.Select(selected); err != nil {
		return nil, err
	}
	return c, nil
}

// Select makes the tuning at index idx the selected one.
func (c *TuningCollection) Select(idx int) error {
	if len(c.items) == 0 {
		return ErrCollectionEmpty
	}
	if idx < 0 || idx >= len(c.items) {
		return &CollectionIndexError{Index: idx, Len: len(c.items)}
	}
	c.selected = idx
	return nil
}

// SelectNext selects the tuning after the current one, wrapping around.
func (c *TuningCollection) SelectNext() error {
	if len(c.items) == 0 {
		return ErrCollectionEmpty
	}
	return c.Select((c.selected + 1) % len(c.items))
}

// SelectPrev selects the tuning before the current one, wrapping around.
func (c *TuningCollection) SelectPrev() error {
	if len(c.items) == 0 {
		return ErrCollectionEmpty
	}
	return c.Select((c.selected + len(c.items) - 1) % len(c.items))
}

// Selected returns the selected tuning. It only fails for a zero-value
// collection, which has nothing to select.
func (c *TuningCollection) Selected() (Tuning, error) {
	if len(c.items) == 0 {
		return Tuning{}, ErrCollectionEmpty
	}
	return c.items[c.selected], nil
}

// Index returns the index of the selected tuning.
func (c *TuningCollection) Index() int { return c.selected }

// Len returns the number of tunings.
func (c *TuningCollection) Len() int { return len(c.items) }

// At returns the tuning at index i.
func (c *TuningCollection) At(i int) Tuning { return c.items[i] }

// All iterates over the tunings with their indices.
func (c *TuningCollection) All() iter.Seq2[int, Tuning] {
	return slices.All(c.items)
}

// IndexOf returns the index of the first tuning called name.
func (c *TuningCollection) IndexOf(name string) (int, bool) {
	i := slices.IndexFunc(c.items, func(t Tuning) bool { return t.Name() == name })
	return i, i >= 0
}
