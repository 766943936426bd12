// Package openapi exposes the public contracts for the loader and parser
// stages together with the domain types downstream packages consume.
// Implementations live under internal/openapi so kin-openapi stays hidden
// from consumers.
package openapi
