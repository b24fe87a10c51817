// Package svgdoc holds the in-memory tree of an SVG document:
// rectangles, circles, paths and recursively nested groups, each
// carrying the attributes not recognized as geometry.
//
// Every list of the tree is a svglist.List, which owns its elements.
// Queries spanning the whole tree (Rects, Circles, Paths, Groups)
// return svglist.View values, aliasing the entities without owning them.
//
// The mutation functions (SetEntityAttribute, AddComponent) only address
// the entities stored directly on the Document; they never descend into groups.
package svgdoc
