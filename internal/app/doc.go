// Package app wires the application together: logger, configuration loader,
// section registry, and the run pipeline (fetch, render, write, publish).
package app
