package unityjump

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/config"
	"github.com/vk/framejump/internal/ctxlog"
	"github.com/vk/framejump/internal/hosteditor"
	"github.com/vk/framejump/internal/metadata"
)

// ActionName is the action this hook owns. Everything else falls through
// to the wrapped hook.
const ActionName = "jump_to_frame"

// timelinePanel is the editor menu path of the timeline window.
const timelinePanel = "Window/Sequencing/Timeline"

// Hook wraps another actions.Hook and adds the jump_to_frame action when an
// entity's metadata makes it actionable in the current editor project.
type Hook struct {
	base     actions.Hook
	settings *config.Settings
	resolver metadata.Resolver
	editor   hosteditor.Client
}

// New builds the hook around the given base.
func New(base actions.Hook, settings *config.Settings, resolver metadata.Resolver, editor hosteditor.Client) *Hook {
	return &Hook{base: base, settings: settings, resolver: resolver, editor: editor}
}

// GenerateActions returns the wrapped hook's descriptors, plus one
// jump_to_frame descriptor when the entity passes every eligibility check.
// An entity that fails a check gets the unmodified list back; ineligibility
// is an expected outcome, not an error.
func (h *Hook) GenerateActions(ctx context.Context, entity actions.Entity, names []string, uiArea string) ([]actions.Descriptor, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generate actions called.", "uiArea", uiArea, "requested", names, "entityType", entity.Type())

	instances, err := h.base.GenerateActions(ctx, entity, names, uiArea)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(names, ActionName) {
		return instances, nil
	}

	// The main timeline tag must be configured for jump to frame to work.
	tag := h.settings.MainTimelineTag
	if tag == "" {
		return instances, nil
	}

	meta, err := h.resolver.Resolve(ctx, entity)
	if err != nil {
		logger.Debug("Metadata resolution failed.", "entityType", entity.Type(), "error", err)
		return instances, nil
	}
	if len(meta) == 0 {
		return instances, nil
	}

	// The metadata must point at the project currently open in the editor.
	if !h.resolver.RelatesToCurrentProject(meta) {
		return instances, nil
	}

	// The metadata must point at a scene that exists in the project.
	if !h.resolver.RelatesToExistingScene(meta) {
		return instances, nil
	}

	// There must be a frame number to jump to.
	if !meta.HasFrameNumber() {
		return instances, nil
	}

	// Pass the metadata along as params, with the configured tag added so
	// the executor knows which object to look for.
	params := actions.Params(meta).Clone()
	params["main_timeline_tag"] = tag

	return append(instances, actions.Descriptor{
		Name:        ActionName,
		Params:      params,
		Group:       "Jump to Frame",
		Caption:     "Jump to Frame",
		Description: "Opens the associated Unity scene and scrubs to the associated frame.",
	}), nil
}

// ExecuteAction performs jump_to_frame and delegates everything else to the
// wrapped hook. Malformed params and a failed scene open are returned as
// errors; every failure past the open is reported through the log and
// swallowed, so a half-configured scene never takes the panel down.
func (h *Hook) ExecuteAction(ctx context.Context, name string, params actions.Params, entity actions.Entity) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Execute action called.", "name", name, "entityType", entity.Type())

	if name != ActionName {
		return h.base.ExecuteAction(ctx, name, params, entity)
	}

	jump, err := parseParams(params)
	if err != nil {
		// Only this hook produces jump_to_frame params, so a shape problem
		// is a contract violation, not a user condition.
		return fmt.Errorf("invalid %s params: %w", ActionName, err)
	}

	if err := h.editor.OpenScene(ctx, jump.ScenePath); err != nil {
		return fmt.Errorf("opening scene %q: %w", jump.ScenePath, err)
	}

	// Surface the timeline window. Best effort: scrubbing works without it.
	if err := h.editor.ShowPanel(ctx, timelinePanel); err != nil {
		logger.Debug("Could not show the timeline panel.", "error", err)
	}

	objects, err := h.editor.FindObjectsByTag(ctx, jump.MainTimelineTag)
	if err != nil {
		logger.Error("Unable to jump to frame: " + err.Error())
		return nil
	}

	var director *hosteditor.Director
	var tagged hosteditor.GameObject
	if len(objects) > 0 {
		tagged = objects[0]
		director, err = h.editor.DirectorComponent(ctx, tagged)
		if err != nil {
			logger.Error("Unable to jump to frame: " + err.Error())
			return nil
		}
	}

	if director == nil {
		logger.Error(fmt.Sprintf("Unable to jump to frame: please choose a PlayableDirector and tag it with %q.", jump.MainTimelineTag))
		return nil
	}

	if err := h.scrub(ctx, director, tagged, jump.FrameNumber); err != nil {
		logger.Error("Unable to jump to frame: " + err.Error())
	}
	return nil
}

// scrub focuses the director in the editor and moves its playhead to the
// requested frame. A director without a timeline asset is reported and
// left alone.
func (h *Hook) scrub(ctx context.Context, director *hosteditor.Director, tagged hosteditor.GameObject, frame int) error {
	if err := h.editor.Select(ctx, director.ID); err != nil {
		return err
	}

	timeline, err := h.editor.DirectorTimeline(ctx, director.ID)
	if err != nil {
		return err
	}
	if timeline == nil {
		ctxlog.FromContext(ctx).Error(fmt.Sprintf("Unable to jump to frame: the %q PlayableDirector does not have a valid playable asset assigned.", tagged.Name))
		return nil
	}
	if timeline.FPS <= 0 {
		return fmt.Errorf("timeline %q reports a frame rate of %v", timeline.Name, timeline.FPS)
	}

	return h.editor.SetDirectorTime(ctx, director.ID, float64(frame)/timeline.FPS)
}
