package metadata

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/framejump/internal/actions"
	"github.com/vk/framejump/internal/ctxlog"
)

// metadataField is the entity field the editor integration writes its
// metadata document into when publishing.
const metadataField = "sg_metadata"

// Resolver resolves metadata for an entity and answers the eligibility
// questions hooks ask about it. A nil, empty Metadata means the entity has
// no editor metadata; that is a normal outcome, not an error.
type Resolver interface {
	Resolve(ctx context.Context, entity actions.Entity) (Metadata, error)
	RelatesToCurrentProject(m Metadata) bool
	RelatesToExistingScene(m Metadata) bool
}

// Service is the standard Resolver: it reads the metadata document embedded
// in the entity record and checks it against the project the panel is
// configured for. It holds no state between calls and never caches.
type Service struct {
	ProjectID   int64
	ProjectName string
	ProjectRoot string
}

// Resolve extracts the metadata document from the entity. The field may be
// a JSON string or an already-decoded map; anything else, including a
// document that fails to parse, resolves to no metadata.
func (s *Service) Resolve(ctx context.Context, entity actions.Entity) (Metadata, error) {
	logger := ctxlog.FromContext(ctx)

	switch raw := entity[metadataField].(type) {
	case string:
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		var meta Metadata
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			logger.Debug("Entity metadata is not valid JSON.", "entityType", entity.Type(), "error", err)
			return nil, nil
		}
		return meta, nil

	case map[string]any:
		meta := make(Metadata, len(raw))
		for k, v := range raw {
			meta[k] = v
		}
		return meta, nil

	default:
		return nil, nil
	}
}

// RelatesToCurrentProject reports whether the metadata points at the
// project the panel is configured for. The project id wins when both sides
// have one; the name is the fallback for older documents without ids.
func (s *Service) RelatesToCurrentProject(m Metadata) bool {
	if id, ok := m.ProjectID(); ok && s.ProjectID != 0 {
		return id == s.ProjectID
	}
	if name := m.ProjectName(); name != "" && s.ProjectName != "" {
		return strings.EqualFold(name, s.ProjectName)
	}
	return false
}

// RelatesToExistingScene reports whether the recorded scene path resolves
// to a file inside the configured project root. Relative paths are taken as
// project-relative; paths that escape the root do not count as existing.
func (s *Service) RelatesToExistingScene(m Metadata) bool {
	scenePath := m.ScenePath()
	if scenePath == "" || s.ProjectRoot == "" {
		return false
	}

	full := scenePath
	if !filepath.IsAbs(full) {
		full = filepath.Join(s.ProjectRoot, full)
	}
	full = filepath.Clean(full)

	rel, err := filepath.Rel(s.ProjectRoot, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}

	info, err := os.Stat(full)
	return err == nil && info.Mode().IsRegular()
}
