package metadata

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Metadata is the document the editor integration attaches to an entity
// when publishing a review item. Expected keys include scene_path,
// frame_number and the project identifiers, but the map may carry anything
// the publisher added; unknown keys ride along untouched.
type Metadata map[string]any

// ScenePath returns the recorded scene path, or "" when absent.
func (m Metadata) ScenePath() string {
	s, _ := m["scene_path"].(string)
	return s
}

// ProjectName returns the recorded project name, or "" when absent.
func (m Metadata) ProjectName() string {
	s, _ := m["project_name"].(string)
	return s
}

// ProjectID returns the recorded project id. The second return is false
// when the document carries no usable id.
func (m Metadata) ProjectID() (int64, bool) {
	switch v := m["project_id"].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// HasFrameNumber reports whether the document carries a usable, non-zero
// frame number. Frame zero counts as absent: publishers write it when no
// frame was captured.
func (m Metadata) HasFrameNumber() bool {
	switch v := m["frame_number"].(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil && n != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case json.Number:
		n, err := v.Int64()
		return err == nil && n != 0
	default:
		return false
	}
}
