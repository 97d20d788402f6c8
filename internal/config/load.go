package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/framejump/internal/schema"
)

const (
	defaultBridgeURL = "http://127.0.0.1:9977"
	defaultNamespace = "/editor"
	defaultTimeout   = 10 * time.Second
)

// Load parses the HCL configuration file at path and returns the validated
// model. Any parse, decode, or validation problem is returned as an error;
// there is no partially loaded model.
func Load(path string) (*Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}
	return decode(file.Body)
}

// LoadSource parses configuration from an in-memory HCL document. The
// filename is only used in diagnostics.
func LoadSource(src, filename string) (*Model, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(src), filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Model, error) {
	var raw schema.Config
	if diags := gohcl.DecodeBody(body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode configuration: %w", diags)
	}

	model := &Model{
		Settings:      translateSettings(raw.Settings),
		entityActions: make(map[string][]string),
	}

	editor, err := translateEditor(raw.Editor)
	if err != nil {
		return nil, err
	}
	model.Editor = editor

	seen := make(map[string]bool)
	for _, block := range raw.Actions {
		if block.Name == "jump_to_frame" {
			// jump_to_frame is conditional and owned by its hook; a static
			// catalogue entry would bypass the eligibility checks.
			return nil, fmt.Errorf("action %q is reserved and cannot be declared in the catalogue", block.Name)
		}
		if seen[block.Name] {
			return nil, fmt.Errorf("duplicate action %q in configuration", block.Name)
		}
		seen[block.Name] = true

		action, err := translateAction(block)
		if err != nil {
			return nil, err
		}
		model.Actions = append(model.Actions, action)
	}

	for _, block := range raw.Entities {
		if _, exists := model.entityActions[block.Type]; exists {
			return nil, fmt.Errorf("duplicate entity block for type %q", block.Type)
		}
		model.entityActions[block.Type] = block.Actions
	}

	if err := validate(model); err != nil {
		return nil, err
	}
	return model, nil
}

func translateSettings(s *schema.Settings) *Settings {
	if s == nil {
		return &Settings{}
	}
	return &Settings{
		MainTimelineTag: s.MainTimelineTag,
		ProjectID:       s.ProjectID,
		ProjectName:     s.ProjectName,
		ProjectRoot:     s.ProjectRoot,
	}
}

func translateEditor(e *schema.Editor) (*Editor, error) {
	editor := &Editor{
		BridgeURL: defaultBridgeURL,
		Namespace: defaultNamespace,
		Timeout:   defaultTimeout,
	}
	if e == nil {
		return editor, nil
	}
	if e.BridgeURL != "" {
		editor.BridgeURL = e.BridgeURL
	}
	if e.Namespace != "" {
		editor.Namespace = e.Namespace
	}
	if e.Timeout != "" {
		timeout, err := time.ParseDuration(e.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid editor timeout %q: %w", e.Timeout, err)
		}
		editor.Timeout = timeout
	}
	editor.InsecureSkipVerify = e.InsecureSkipVerify
	return editor, nil
}

func translateAction(block *schema.ActionBlock) (Action, error) {
	action := Action{
		Name:        block.Name,
		Caption:     block.Caption,
		Group:       block.Group,
		Description: block.Description,
	}

	params, err := staticParams(block.Remain)
	if err != nil {
		return Action{}, fmt.Errorf("action %q: %w", block.Name, err)
	}
	action.Params = params
	return action, nil
}

// staticParams evaluates the leftover attributes of an action block into
// native Go values. Only constant expressions are allowed here; the config
// file has no variables in scope.
func staticParams(body hcl.Body) (map[string]any, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid params: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	// Stable iteration keeps error reporting deterministic.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make(map[string]any, len(attrs))
	for _, name := range names {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("param %q: %w", name, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		params[name] = native
	}
	return params, nil
}

func validate(m *Model) error {
	if m.Settings.MainTimelineTag != "" && m.Settings.ProjectRoot == "" {
		return fmt.Errorf("settings: project_root is required when main_timeline_tag is set")
	}

	known := make(map[string]bool, len(m.Actions))
	for _, action := range m.Actions {
		known[action.Name] = true
	}
	for entityType, names := range m.entityActions {
		for _, name := range names {
			if name == "jump_to_frame" || known[name] {
				continue
			}
			return fmt.Errorf("entity %q requests unknown action %q", entityType, name)
		}
	}
	return nil
}
