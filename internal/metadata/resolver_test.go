package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/framejump/internal/actions"
)

func testService(t *testing.T) *Service {
	t.Helper()
	root := t.TempDir()
	scenes := filepath.Join(root, "Assets", "Scenes")
	require.NoError(t, os.MkdirAll(scenes, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scenes, "shot_010.unity"), []byte("scene"), 0o600))

	return &Service{ProjectID: 7, ProjectName: "Conveyor", ProjectRoot: root}
}

func TestService_Resolve(t *testing.T) {
	t.Parallel()
	svc := testService(t)
	ctx := context.Background()

	t.Run("json string field", func(t *testing.T) {
		t.Parallel()
		entity := actions.Entity{
			"type":        "Version",
			"sg_metadata": `{"scene_path": "Assets/Scenes/shot_010.unity", "frame_number": 48, "project_id": 7}`,
		}
		meta, err := svc.Resolve(ctx, entity)
		require.NoError(t, err)
		require.Equal(t, "Assets/Scenes/shot_010.unity", meta.ScenePath())
		require.True(t, meta.HasFrameNumber())
	})

	t.Run("decoded map field", func(t *testing.T) {
		t.Parallel()
		entity := actions.Entity{
			"sg_metadata": map[string]any{"scene_path": "Assets/Scenes/shot_010.unity"},
		}
		meta, err := svc.Resolve(ctx, entity)
		require.NoError(t, err)
		require.Equal(t, "Assets/Scenes/shot_010.unity", meta.ScenePath())
	})

	t.Run("absent, blank, or malformed resolves to nothing", func(t *testing.T) {
		t.Parallel()
		for name, entity := range map[string]actions.Entity{
			"no field":    {"type": "Version"},
			"blank field": {"sg_metadata": "   "},
			"bad json":    {"sg_metadata": "{scene_path"},
			"wrong type":  {"sg_metadata": 42},
		} {
			meta, err := svc.Resolve(ctx, entity)
			require.NoError(t, err, name)
			require.Empty(t, meta, name)
		}
	})
}

func TestService_RelatesToCurrentProject(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	require.True(t, svc.RelatesToCurrentProject(Metadata{"project_id": float64(7)}))
	require.False(t, svc.RelatesToCurrentProject(Metadata{"project_id": float64(8)}))

	// Name is the fallback when no id is recorded.
	require.True(t, svc.RelatesToCurrentProject(Metadata{"project_name": "conveyor"}))
	require.False(t, svc.RelatesToCurrentProject(Metadata{"project_name": "Other"}))
	require.False(t, svc.RelatesToCurrentProject(Metadata{}))
}

func TestService_RelatesToExistingScene(t *testing.T) {
	t.Parallel()
	svc := testService(t)

	require.True(t, svc.RelatesToExistingScene(Metadata{"scene_path": "Assets/Scenes/shot_010.unity"}))
	require.True(t, svc.RelatesToExistingScene(Metadata{
		"scene_path": filepath.Join(svc.ProjectRoot, "Assets", "Scenes", "shot_010.unity"),
	}))

	require.False(t, svc.RelatesToExistingScene(Metadata{"scene_path": "Assets/Scenes/missing.unity"}))
	require.False(t, svc.RelatesToExistingScene(Metadata{"scene_path": ""}))
	require.False(t, svc.RelatesToExistingScene(Metadata{}))

	// A path escaping the project root never counts, even if it exists.
	outside := filepath.Join(svc.ProjectRoot, "..", "elsewhere.unity")
	require.NoError(t, os.WriteFile(filepath.Clean(outside), []byte("scene"), 0o600))
	require.False(t, svc.RelatesToExistingScene(Metadata{"scene_path": "../elsewhere.unity"}))

	// A directory is not a scene file.
	require.False(t, svc.RelatesToExistingScene(Metadata{"scene_path": "Assets/Scenes"}))
}

func TestMetadata_HasFrameNumber(t *testing.T) {
	t.Parallel()

	require.True(t, Metadata{"frame_number": float64(48)}.HasFrameNumber())
	require.True(t, Metadata{"frame_number": "48"}.HasFrameNumber())
	require.True(t, Metadata{"frame_number": 12}.HasFrameNumber())

	// Zero and junk count as absent.
	require.False(t, Metadata{"frame_number": float64(0)}.HasFrameNumber())
	require.False(t, Metadata{"frame_number": "0"}.HasFrameNumber())
	require.False(t, Metadata{"frame_number": ""}.HasFrameNumber())
	require.False(t, Metadata{"frame_number": "soon"}.HasFrameNumber())
	require.False(t, Metadata{}.HasFrameNumber())
}
