package unityjump

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/framejump/internal/actions"
)

func TestFrameNumber_Shapes(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		value any
		want  int
	}{
		"int":           {value: 48, want: 48},
		"int64":         {value: int64(96), want: 96},
		"float":         {value: float64(12), want: 12},
		"json number":   {value: json.Number("240"), want: 240},
		"string":        {value: "36", want: 36},
		"padded string": {value: " 24 ", want: 24},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := frameNumber(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFrameNumber_Rejections(t *testing.T) {
	t.Parallel()

	for name, value := range map[string]any{
		"missing":         nil,
		"word":            "forty-eight",
		"fractional":      float64(12.5),
		"unsupported":     []any{48},
		"fraction string": "12.5",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := frameNumber(value)
			require.Error(t, err)
		})
	}
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	got, err := parseParams(actions.Params{
		"scene_path":        "Assets/Scenes/shot_020.unity",
		"frame_number":      "72",
		"main_timeline_tag": "MainTimeline",
		"extra":             "ignored",
	})

	require.NoError(t, err)
	require.Equal(t, &jumpParams{
		ScenePath:       "Assets/Scenes/shot_020.unity",
		FrameNumber:     72,
		MainTimelineTag: "MainTimeline",
	}, got)
}
