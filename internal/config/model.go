package config

import "time"

// Settings holds the validated panel-wide options. Values are read once per
// process; hooks read them once per call and never write them back.
type Settings struct {
	MainTimelineTag string
	ProjectID       int64
	ProjectName     string
	ProjectRoot     string
}

// Editor holds the validated bridge connection options.
type Editor struct {
	BridgeURL          string
	Namespace          string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

// Action is one catalogue entry the base hook can offer. Params are static
// values declared in the config that ride along on the generated descriptor.
type Action struct {
	Name        string
	Caption     string
	Group       string
	Description string
	Params      map[string]any
}

// Model is the fully loaded and validated configuration.
type Model struct {
	Settings *Settings
	Editor   *Editor
	Actions  []Action

	// entityActions maps an entity type to the action names the panel
	// requests for it, in declaration order.
	entityActions map[string][]string
}

// ActionsFor returns the action names configured for the given entity type.
// Unknown types get no actions, which downstream treats as "offer nothing".
func (m *Model) ActionsFor(entityType string) []string {
	return m.entityActions[entityType]
}
