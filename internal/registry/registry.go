package registry

import (
	"context"
	"fmt"

	"github.com/vk/readmegen/internal/config"
	"github.com/vk/readmegen/internal/ctxlog"
	"github.com/vk/readmegen/internal/github"
	"github.com/vk/readmegen/internal/render"
)

// Module is the interface that all section modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// SectionFunc renders one README section. opts is the value produced by the
// section's NewOptions factory, populated from its HCL block.
type SectionFunc func(ctx context.Context, client *github.Client, opts any) (render.Block, error)

// RegisteredSection couples a section's options factory with its render
// function.
type RegisteredSection struct {
	NewOptions func() any
	Fn         SectionFunc
}

// Registry holds all registered section handlers for a single application
// instance.
type Registry struct {
	SectionRegistry map[string]*RegisteredSection
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		SectionRegistry: make(map[string]*RegisteredSection),
	}
}

// RegisterSection registers a section handler under the given name. A
// duplicate name is a programmer error.
func (r *Registry) RegisterSection(name string, section *RegisteredSection) {
	if _, exists := r.SectionRegistry[name]; exists {
		panic(fmt.Sprintf("section %q registered twice", name))
	}
	r.SectionRegistry[name] = section
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (*RegisteredSection, bool) {
	section, ok := r.SectionRegistry[name]
	return section, ok
}

// ValidateSections checks that every configured section block has a
// registered handler and that every section body decodes against that
// handler's options struct. A misspelled attribute is a startup error, not
// a mid-pipeline one.
func (r *Registry) ValidateSections(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)
	for _, section := range model.Sections {
		if _, ok := r.SectionRegistry[section.Name]; !ok {
			return fmt.Errorf("config references unknown section %q", section.Name)
		}
		if _, err := r.DecodeOptions(section, model.EvalCtx); err != nil {
			return err
		}
	}
	logger.Debug("Section validation passed.", "count", len(model.Sections))
	return nil
}
