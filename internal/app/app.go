package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/config"
	"github.com/vk/framejump/internal/ctxlog"
	"github.com/vk/framejump/internal/hosteditor/bridge"
	"github.com/vk/framejump/internal/metadata"
	"github.com/vk/framejump/internal/registry"
)

// App encapsulates the engine's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	hook     actions.Hook
	editor   *bridge.Client
}

// NewApp is the constructor for the engine. It returns a fully initialized
// App instance, including its own isolated logger and assembled hook chain.
// Configuration problems panic; the caller recovers and reports them.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	model, err := config.Load(appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded.", "actions", len(model.Actions))

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All modules registered.", "count", len(modules))

	resolver := &metadata.Service{
		ProjectID:   model.Settings.ProjectID,
		ProjectName: model.Settings.ProjectName,
		ProjectRoot: model.Settings.ProjectRoot,
	}

	// The bridge does not dial until the first editor call, so building it
	// here costs nothing when the invocation never reaches the editor.
	editor := bridge.New(bridge.Config{
		URL:                model.Editor.BridgeURL,
		Namespace:          model.Editor.Namespace,
		Timeout:            model.Editor.Timeout,
		InsecureSkipVerify: model.Editor.InsecureSkipVerify,
	})

	base := actions.NewBase(definitions(model), reg.Handlers())
	hook := reg.BuildChain(base, &registry.HookEnv{
		Settings: model.Settings,
		Resolver: resolver,
		Editor:   editor,
	})
	logger.Debug("Hook chain assembled.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		hook:     hook,
		editor:   editor,
	}
}

// definitions translates the configured catalogue into the base hook's form.
func definitions(model *config.Model) []actions.Definition {
	defs := make([]actions.Definition, 0, len(model.Actions))
	for _, action := range model.Actions {
		defs = append(defs, actions.Definition{
			Name:        action.Name,
			Caption:     action.Caption,
			Group:       action.Group,
			Description: action.Description,
			Params:      actions.Params(action.Params),
		})
	}
	return defs
}

// GenerateActions enumerates the actions offered for the entity.
func (a *App) GenerateActions(ctx context.Context, entity actions.Entity, names []string, uiArea string) ([]actions.Descriptor, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.hook.GenerateActions(ctx, entity, names, uiArea)
}

// ExecuteAction performs one previously enumerated action.
func (a *App) ExecuteAction(ctx context.Context, name string, params actions.Params, entity actions.Entity) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	return a.hook.ExecuteAction(ctx, name, params, entity)
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}

// Hook returns the assembled hook chain. This is primarily for testing.
func (a *App) Hook() actions.Hook {
	return a.hook
}

// Close releases the editor bridge connection, if one was ever dialed.
func (a *App) Close() {
	a.editor.Close()
}
