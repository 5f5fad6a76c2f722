package registry

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/readmegen/internal/config"
)

// DecodeOptions materializes a section's options struct and populates it
// from the section's HCL body, evaluated against the model's context.
// Unknown attributes in the block are decode errors.
func (r *Registry) DecodeOptions(section *config.Section, evalCtx *hcl.EvalContext) (any, error) {
	registered, ok := r.Lookup(section.Name)
	if !ok {
		return nil, fmt.Errorf("no handler registered for section %q", section.Name)
	}

	var opts any = &struct{}{}
	if registered.NewOptions != nil {
		opts = registered.NewOptions()
	}

	if section.Body != nil {
		diags := gohcl.DecodeBody(section.Body, evalCtx, opts)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode options for section %q: %w", section.Name, diags)
		}
	}
	return opts, nil
}
