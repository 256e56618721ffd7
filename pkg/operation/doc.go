// Package operation wraps a captured HTTP interaction and provides the
// extraction strategies that derive the actual parameter-name sets snippet
// verification compares against. Extractors are pure reads over the captured
// request; nothing here mutates or replays the interaction.
package operation
