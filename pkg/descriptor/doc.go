// Package descriptor defines the parameter descriptors documentation authors
// declare and the insertion-ordered, name-keyed registry that snippet
// verification and model building run against. Registries are built once and
// read-only afterwards, so they can be shared across concurrent snippet calls.
package descriptor
