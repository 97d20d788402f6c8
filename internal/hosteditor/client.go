package hosteditor

import (
	"context"
	"fmt"
)

// GameObject identifies one object in the currently open scene.
type GameObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Director identifies a PlayableDirector component driving a timeline.
type Director struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Timeline describes the playable asset assigned to a director. FPS comes
// from the asset's editor settings and is what frame numbers divide by.
type Timeline struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	FPS  float64 `json:"fps"`
}

// Client is the host editor command surface consumed by hooks. Every method
// maps to exactly one editor operation; none of them retries. Lookup
// methods return nil rather than an error when the editor answers "nothing
// there": a missing component or an unassigned timeline is an answer, not
// a failure.
type Client interface {
	// OpenScene opens the scene file at path in the editor, replacing the
	// currently open scene.
	OpenScene(ctx context.Context, path string) error

	// ShowPanel asks the editor to surface the named UI panel.
	ShowPanel(ctx context.Context, panel string) error

	// FindObjectsByTag returns the scene objects carrying the tag, in the
	// editor's own order.
	FindObjectsByTag(ctx context.Context, tag string) ([]GameObject, error)

	// DirectorComponent returns the PlayableDirector component on the
	// object, or nil when the object has none.
	DirectorComponent(ctx context.Context, obj GameObject) (*Director, error)

	// Select makes the director the editor's active selection.
	Select(ctx context.Context, directorID string) error

	// DirectorTimeline returns the timeline asset assigned to the director,
	// or nil when none is assigned.
	DirectorTimeline(ctx context.Context, directorID string) (*Timeline, error)

	// SetDirectorTime moves the director's playhead to the given time in
	// seconds.
	SetDirectorTime(ctx context.Context, directorID string, seconds float64) error
}

// RemoteError is a failure reported by the editor side of the bridge.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("editor %s: %s", e.Op, e.Message)
}
