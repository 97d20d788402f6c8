// Package unityjump offers and executes the jump_to_frame action: open the
// Unity scene a review entity was captured from and scrub the main timeline
// to the captured frame.
package unityjump

import (
	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the hook wrapper with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHook("unityjump", &registry.RegisteredHook{
		Wrap: func(base actions.Hook, env *registry.HookEnv) actions.Hook {
			return New(base, env.Settings, env.Resolver, env.Editor)
		},
	})
}
