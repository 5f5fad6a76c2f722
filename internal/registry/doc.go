// Package registry holds the section handlers compiled into the binary.
// Each section module self-registers a named handler; the configuration's
// `section` blocks are resolved against this registry at startup, so a typo
// in a section name fails fast instead of producing a half-rendered README.
package registry
