// Package hosteditor defines the capability interface through which hooks
// drive the host editor: opening scenes, finding tagged objects, selecting
// them, and scrubbing timeline playback. The concrete transport lives in
// the bridge subpackage; tests substitute their own fakes.
package hosteditor
