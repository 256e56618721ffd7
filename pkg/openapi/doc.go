// Package openapi exposes the public contracts for sourcing declared
// parameter descriptors from OpenAPI documents: where a document lives
// (Source), how it is fetched (Loader), and how declared operation parameters
// become descriptors (Parser). Implementations live under internal/openapi to
// keep kin-openapi hidden from consumers.
package openapi
