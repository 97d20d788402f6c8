// Package metadata resolves the editor metadata attached to review
// entities: which scene a reviewed item came from, which project that scene
// belongs to, and which frame was captured. Hooks use it to decide whether
// an entity can be acted on inside the currently open editor project.
package metadata
