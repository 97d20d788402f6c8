package showdetails

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/registry"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	(&Module{}).Register(reg)

	handlers := reg.Handlers()
	require.Contains(t, handlers, ActionName)
}

func TestOnShowDetails(t *testing.T) {
	t.Parallel()

	entity := actions.Entity{"type": "Version", "id": float64(1), "code": "sh010_v003"}
	require.NoError(t, onShowDetails(context.Background(), nil, entity))
	require.NoError(t, onShowDetails(context.Background(), nil, actions.Entity{}))
}
