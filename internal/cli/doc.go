// Package cli implements the hydrate command-line tool.
//
// It drives the same services as the HTTP API directly against the configured
// store, so drinks logged from a terminal show up in the API and vice versa.
package cli
