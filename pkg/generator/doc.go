// Package generator coordinates the full pipeline from declared parameter
// descriptors (supplied directly or derived from an OpenAPI document) through
// snippet verification to rendered documentation output. It applies sensible
// defaults (request-parameter extraction, fail-fast verification, built-in
// renderers) while remaining open to dependency injection.
package generator
