// Package validation compiles JSON Schema documents and checks request
// bodies, query strings and path parameters against them.
//
// Schemas follow Draft 2020-12 with format assertions enabled. A failed
// validation is reported as a single [*Error] describing the first
// violation found; violations are never aggregated.
package validation
