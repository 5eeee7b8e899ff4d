// Package config provides configuration loading, merging, and validation
// facilities for the schema gate.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The merged result is checked with go-playground/validator. The main
// entry point is [GetStructuredConfig].
package config
