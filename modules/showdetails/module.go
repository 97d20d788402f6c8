// Package showdetails implements the show_details catalogue action: dump
// the entity's fields to stdout so a reviewer can see exactly what the
// backend delivered.
package showdetails

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/ctxlog"
	"github.com/vk/framejump/internal/registry"
)

// ActionName is the catalogue name this module handles.
const ActionName = "show_details"

// Module implements the registry.Module interface for this package.
type Module struct{}

// onShowDetails prints the entity fields in a stable order.
func onShowDetails(ctx context.Context, params actions.Params, entity actions.Entity) error {
	ctxlog.FromContext(ctx).Debug("Printing entity details.", "entityType", entity.Type())

	if len(entity) == 0 {
		fmt.Println("      (empty entity)")
		return nil
	}

	keys := make([]string, 0, len(entity))
	for k := range entity {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("      %s = %v\n", k, entity[k])
	}
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAction(ActionName, &registry.RegisteredAction{Fn: onShowDetails})
}
