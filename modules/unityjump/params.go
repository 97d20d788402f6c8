package unityjump

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/framejump/internal/actions"
)

// jumpParams is the typed view of the params this hook's enumerator
// produced. The wire shape stays the resolver's metadata map; only the
// fields the executor acts on are pulled out here.
type jumpParams struct {
	ScenePath       string
	FrameNumber     int
	MainTimelineTag string
}

func parseParams(p actions.Params) (*jumpParams, error) {
	frame, err := frameNumber(p["frame_number"])
	if err != nil {
		return nil, err
	}
	return &jumpParams{
		ScenePath:       p.Str("scene_path"),
		FrameNumber:     frame,
		MainTimelineTag: p.Str("main_timeline_tag"),
	}, nil
}

// frameNumber parses the frame_number param, tolerating the numeric shapes
// JSON decoding and the resolver can hand over.
func frameNumber(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("frame_number %v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("frame_number %q is not an integer: %w", n.String(), err)
		}
		return int(parsed), nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("frame_number %q is not an integer: %w", n, err)
		}
		return parsed, nil
	case nil:
		return 0, fmt.Errorf("frame_number is missing")
	default:
		return 0, fmt.Errorf("frame_number has unsupported type %T", v)
	}
}
