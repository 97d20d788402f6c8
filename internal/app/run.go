package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/ctxlog"
)

// Run executes one invocation: load the entity, enumerate its actions, and
// either render the list or execute the requested one.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	entity, err := loadEntity(appConfig.EntityPath)
	if err != nil {
		return err
	}

	names := appConfig.Actions
	if len(names) == 0 {
		names = a.model.ActionsFor(entity.Type())
	}
	a.logger.Debug("Requested action names resolved.", "entityType", entity.Type(), "names", names)

	descriptors, err := a.GenerateActions(ctx, entity, names, appConfig.UIArea)
	if err != nil {
		return fmt.Errorf("generating actions: %w", err)
	}

	if appConfig.Execute == "" {
		a.renderList(entity, descriptors)
		return nil
	}

	for _, descriptor := range descriptors {
		if descriptor.Name != appConfig.Execute {
			continue
		}
		if err := a.ExecuteAction(ctx, descriptor.Name, descriptor.Params, entity); err != nil {
			return fmt.Errorf("executing %s: %w", descriptor.Name, err)
		}
		a.logger.Debug("Action executed.", "name", descriptor.Name)
		return nil
	}
	return fmt.Errorf("action %q is not offered for this entity", appConfig.Execute)
}

// loadEntity reads one entity record from a JSON file.
func loadEntity(path string) (actions.Entity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entity file: %w", err)
	}
	var entity actions.Entity
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, fmt.Errorf("parsing entity file %s: %w", path, err)
	}
	return entity, nil
}

// renderList prints the offered actions for a human.
func (a *App) renderList(entity actions.Entity, descriptors []actions.Descriptor) {
	if len(descriptors) == 0 {
		fmt.Fprintf(a.outW, "No actions offered for this %s.\n", entityLabel(entity))
		return
	}

	caption := color.New(color.FgCyan, color.Bold)
	name := color.New(color.Faint)
	fmt.Fprintf(a.outW, "Actions for %s:\n", entityLabel(entity))
	for _, d := range descriptors {
		fmt.Fprintf(a.outW, "  %s %s\n", caption.Sprint(d.Caption), name.Sprintf("(%s)", d.Name))
		if d.Description != "" {
			fmt.Fprintf(a.outW, "      %s\n", d.Description)
		}
	}
}

func entityLabel(entity actions.Entity) string {
	entityType := entity.Type()
	if entityType == "" {
		entityType = "entity"
	}
	if id, ok := entity.ID(); ok {
		return fmt.Sprintf("%s %d", entityType, id)
	}
	return entityType
}
