// Package actions defines the action model of the panel: entity records,
// action descriptors, and the Hook contract that enumerates and executes
// actions. The base hook implements the configured catalogue; feature hooks
// wrap it and append their own conditional actions.
package actions
