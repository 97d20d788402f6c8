// Package registry provides the central "glue" for the module system.
//
// Modules contribute two kinds of things: handler funcs for catalogue
// actions the base hook executes, and hook wrappers that extend the chain
// with conditional actions of their own. The registry stores both and the
// app assembles them at startup, so adding a feature means adding a module
// and nothing else.
package registry
