package app

// Config holds everything an App instance needs to run one invocation.
type Config struct {
	ConfigPath string // panel configuration, HCL
	EntityPath string // entity record, JSON

	// Execute names the action to run. Empty means list the offered
	// actions instead.
	Execute string

	// UIArea is the menu placement hint forwarded to the hooks.
	UIArea string

	// Actions overrides the configured per-entity-type action names.
	Actions []string

	LogFormat string
	LogLevel  string
}
