// Package richtext implements the pure formatted-content model for clipfit.
//
// A Fragment is an ordered sequence of content nodes (a paste payload or a
// truncation result). Lengths are measured in grapheme clusters; block-level
// siblings are separated by a single newline in the plain-text projection.
package richtext
