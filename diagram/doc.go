// Package diagram turns a tuning and a bounding rectangle into the drawing
// primitives of a fretboard: background, nut, frets, fret markers, strings
// and note labels, in the order they have to be painted.
//
// All geometry is first computed with the neck running left to right
// ("logical" coordinates) and then passed once through the Orientation of the
// layout, which swaps the axes when the surface is taller than it is wide.
//
// Nothing is cached: a Layout is a plain value derived from its inputs, and
// the same inputs always give the same primitives.
package diagram
