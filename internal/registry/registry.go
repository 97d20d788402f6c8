package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/config"
	"github.com/vk/framejump/internal/hosteditor"
	"github.com/vk/framejump/internal/metadata"
)

// Module is the interface that all modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// HookEnv carries the collaborators a hook wrapper may need. The app fills
// it in once at startup from config and the built clients.
type HookEnv struct {
	Settings *config.Settings
	Resolver metadata.Resolver
	Editor   hosteditor.Client
}

// RegisteredAction holds the compiled Go handler for one catalogue action.
type RegisteredAction struct {
	Fn actions.HandlerFunc
}

// RegisteredHook holds the wrapper a module contributes to the hook chain.
// Wrap receives the hook assembled so far and returns the extended one;
// falling through to base is an explicit call on the wrapped hook.
type RegisteredHook struct {
	Wrap func(base actions.Hook, env *HookEnv) actions.Hook
}

// Registry holds all registered handlers and hook wrappers for a single
// application instance.
type Registry struct {
	ActionRegistry map[string]*RegisteredAction
	HookRegistry   map[string]*RegisteredHook
	hookOrder      []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		ActionRegistry: make(map[string]*RegisteredAction),
		HookRegistry:   make(map[string]*RegisteredHook),
	}
}

// RegisterAction registers the handler func for one catalogue action.
func (r *Registry) RegisterAction(name string, handler *RegisteredAction) {
	if _, exists := r.ActionRegistry[name]; exists {
		panic(fmt.Sprintf("action handler with name '%s' already registered", name))
	}
	slog.Debug("Registering action handler.", "name", name)
	r.ActionRegistry[name] = handler
}

// RegisterHook registers a hook wrapper under a unique name. Registration
// order is preserved and becomes chain order.
func (r *Registry) RegisterHook(name string, hook *RegisteredHook) {
	if _, exists := r.HookRegistry[name]; exists {
		panic(fmt.Sprintf("hook with name '%s' already registered", name))
	}
	slog.Debug("Registering hook.", "name", name)
	r.HookRegistry[name] = hook
	r.hookOrder = append(r.hookOrder, name)
}

// Handlers returns the action handler funcs for the base hook.
func (r *Registry) Handlers() map[string]actions.HandlerFunc {
	handlers := make(map[string]actions.HandlerFunc, len(r.ActionRegistry))
	for name, registered := range r.ActionRegistry {
		handlers[name] = registered.Fn
	}
	return handlers
}

// BuildChain folds every registered hook wrapper over the base hook in
// registration order. The last registered wrapper ends up outermost.
func (r *Registry) BuildChain(base actions.Hook, env *HookEnv) actions.Hook {
	hook := base
	for _, name := range r.hookOrder {
		hook = r.HookRegistry[name].Wrap(hook, env)
	}
	return hook
}
