// Package render contains the pure text-layout primitives for the README:
// percentage bars, badges, side-by-side column layout, and the document
// composer. Nothing in this package performs I/O; sections build blocks and
// the app writes the composed result.
package render
