// Package cli parses command-line arguments into the application's runtime
// configuration, producing exit-code-carrying errors for invalid input.
package cli
