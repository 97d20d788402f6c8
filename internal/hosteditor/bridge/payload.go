package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/framejump/internal/hosteditor"
)

// Bridge operation names. These are the wire contract with the editor-side
// plugin and change in lockstep with it.
const (
	opOpenScene         = "open_scene"
	opShowPanel         = "show_panel"
	opFindObjectsByTag  = "find_objects_by_tag"
	opDirectorComponent = "director_component"
	opSelect            = "select"
	opDirectorTimeline  = "director_timeline"
	opSetDirectorTime   = "set_director_time"
)

// command builds the payload for one command event.
func command(id, op string, args map[string]any) map[string]any {
	payload := map[string]any{"id": id, "op": op}
	if len(args) > 0 {
		payload["args"] = args
	}
	return payload
}

// decodeInto re-marshals a loosely typed socket.io payload into a typed
// struct. The bridge speaks JSON end to end, so the round trip is lossless.
func decodeInto(data any, into any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding bridge payload: %w", err)
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decoding bridge payload: %w", err)
	}
	return nil
}

type objectsPayload struct {
	Objects []hosteditor.GameObject `json:"objects"`
}

type directorPayload struct {
	Director *hosteditor.Director `json:"director"`
}

type timelinePayload struct {
	Timeline *hosteditor.Timeline `json:"timeline"`
}

// OpenScene implements hosteditor.Client.
func (c *Client) OpenScene(ctx context.Context, path string) error {
	_, err := c.call(ctx, opOpenScene, map[string]any{"path": path})
	return err
}

// ShowPanel implements hosteditor.Client.
func (c *Client) ShowPanel(ctx context.Context, panel string) error {
	_, err := c.call(ctx, opShowPanel, map[string]any{"panel": panel})
	return err
}

// FindObjectsByTag implements hosteditor.Client.
func (c *Client) FindObjectsByTag(ctx context.Context, tag string) ([]hosteditor.GameObject, error) {
	data, err := c.call(ctx, opFindObjectsByTag, map[string]any{"tag": tag})
	if err != nil {
		return nil, err
	}
	var payload objectsPayload
	if err := decodeInto(data, &payload); err != nil {
		return nil, err
	}
	return payload.Objects, nil
}

// DirectorComponent implements hosteditor.Client.
func (c *Client) DirectorComponent(ctx context.Context, obj hosteditor.GameObject) (*hosteditor.Director, error) {
	data, err := c.call(ctx, opDirectorComponent, map[string]any{"object_id": obj.ID})
	if err != nil {
		return nil, err
	}
	var payload directorPayload
	if err := decodeInto(data, &payload); err != nil {
		return nil, err
	}
	return payload.Director, nil
}

// Select implements hosteditor.Client.
func (c *Client) Select(ctx context.Context, directorID string) error {
	_, err := c.call(ctx, opSelect, map[string]any{"director_id": directorID})
	return err
}

// DirectorTimeline implements hosteditor.Client.
func (c *Client) DirectorTimeline(ctx context.Context, directorID string) (*hosteditor.Timeline, error) {
	data, err := c.call(ctx, opDirectorTimeline, map[string]any{"director_id": directorID})
	if err != nil {
		return nil, err
	}
	var payload timelinePayload
	if err := decodeInto(data, &payload); err != nil {
		return nil, err
	}
	return payload.Timeline, nil
}

// SetDirectorTime implements hosteditor.Client.
func (c *Client) SetDirectorTime(ctx context.Context, directorID string, seconds float64) error {
	_, err := c.call(ctx, opSetDirectorTime, map[string]any{
		"director_id": directorID,
		"seconds":     seconds,
	})
	return err
}
