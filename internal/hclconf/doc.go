// Package hclconf is the HCL implementation of the config.Loader interface.
// It discovers .hcl files, parses them with hclparse, and decodes the
// profile, output, section and schedule blocks into the format-agnostic
// config model. Attribute expressions are evaluated against an EvalContext
// that exposes process environment variables as `env.*`, so secrets such as
// the GitHub token never have to live in the config file itself.
package hclconf
