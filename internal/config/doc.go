// Package config loads the panel configuration file and translates it into
// the validated model the rest of the application consumes. The HCL-specific
// decode targets live in the schema package; nothing outside this package
// touches HCL bodies directly.
package config
