// Package snippet implements the verification and model-building core of
// restdocgen. A ParametersSnippet compares the parameter names declared in a
// descriptor registry against the names actually observed in a captured
// interaction, dispatches mismatches to a pluggable failure handler, and on
// success assembles the ordered template model.
//
// Each CreateModel call is a pure function of the registry and the
// interaction; registries are read-only after construction, so a snippet can
// serve concurrent calls without locking.
package snippet
