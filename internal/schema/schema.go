// Package schema defines the HCL shapes of the panel configuration file.
// These structs are decode targets only; the validated, ready-to-use form
// lives in the config package.
package schema

import "github.com/hashicorp/hcl/v2"

// Config represents the top-level structure of a panel configuration file.
type Config struct {
	Settings *Settings      `hcl:"settings,block"`
	Editor   *Editor        `hcl:"editor,block"`
	Actions  []*ActionBlock `hcl:"action,block"`
	Entities []*EntityBlock `hcl:"entity,block"`
}

// Settings represents the `settings` block: the panel-wide options that
// govern which actions can be offered.
type Settings struct {
	// MainTimelineTag identifies the director-carrying object in a scene.
	// Leaving it unset disables jump-to-frame entirely.
	MainTimelineTag string `hcl:"main_timeline_tag,optional"`
	ProjectID       int64  `hcl:"project_id,optional"`
	ProjectName     string `hcl:"project_name,optional"`
	ProjectRoot     string `hcl:"project_root,optional"`
}

// Editor represents the `editor` block describing how to reach the
// editor-side bridge.
type Editor struct {
	BridgeURL          string `hcl:"bridge_url,optional"`
	Namespace          string `hcl:"namespace,optional"`
	Timeout            string `hcl:"timeout,optional"`
	InsecureSkipVerify bool   `hcl:"insecure_skip_verify,optional"`
}

// ActionBlock represents one `action "<name>"` block: a catalogue entry the
// base hook can offer. Attributes beyond the presentation fields land in
// Remain and become static action params.
type ActionBlock struct {
	Name        string   `hcl:"name,label"`
	Caption     string   `hcl:"caption"`
	Group       string   `hcl:"group,optional"`
	Description string   `hcl:"description,optional"`
	Remain      hcl.Body `hcl:",remain"`
}

// EntityBlock represents one `entity "<type>"` block mapping an entity type
// to the action names the panel requests for it.
type EntityBlock struct {
	Type    string   `hcl:"type,label"`
	Actions []string `hcl:"actions"`
}
