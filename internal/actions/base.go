package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/framejump/internal/ctxlog"
)

// ErrUnknownAction is returned by the base hook when asked to execute an
// action no handler was registered for.
var ErrUnknownAction = errors.New("unknown action")

// HandlerFunc performs the side effect of one catalogue action.
type HandlerFunc func(ctx context.Context, params Params, entity Entity) error

// Definition is one catalogue entry the base hook can offer.
type Definition struct {
	Name        string
	Caption     string
	Group       string
	Description string
	Params      Params
}

// Base is the root of every hook chain. It offers the configured catalogue
// actions and dispatches their execution to registered handlers. Feature
// hooks wrap it and fall through to it for everything they do not own.
type Base struct {
	defs     map[string]Definition
	handlers map[string]HandlerFunc
}

// NewBase builds the base hook from the configured catalogue and the
// handler funcs the registered modules contributed.
func NewBase(defs []Definition, handlers map[string]HandlerFunc) *Base {
	byName := make(map[string]Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}
	return &Base{defs: byName, handlers: handlers}
}

// GenerateActions returns one descriptor per requested name present in the
// catalogue, in the requested order. Names without a catalogue entry are
// skipped silently; they belong to a wrapping hook or to nobody.
func (b *Base) GenerateActions(ctx context.Context, entity Entity, names []string, uiArea string) ([]Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Base hook generating actions.", "uiArea", uiArea, "requested", names, "entityType", entity.Type())

	var instances []Descriptor
	for _, name := range names {
		def, ok := b.defs[name]
		if !ok {
			continue
		}

		params := def.Params.Clone()
		if params == nil {
			params = Params{}
		}
		params["entity_type"] = entity.Type()
		if id, ok := entity.ID(); ok {
			params["entity_id"] = id
		}

		instances = append(instances, Descriptor{
			Name:        def.Name,
			Caption:     def.Caption,
			Group:       def.Group,
			Description: def.Description,
			Params:      params,
		})
	}
	return instances, nil
}

// ExecuteAction dispatches to the registered handler for the action name.
func (b *Base) ExecuteAction(ctx context.Context, name string, params Params, entity Entity) error {
	handler, ok := b.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	return handler(ctx, params, entity)
}
