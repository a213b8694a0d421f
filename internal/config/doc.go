// Package config provides configuration loading, merging, and validation
// facilities for the server and the plantctl CLI.
//
// Server configuration is assembled from multiple sources in the following
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetCLIConfig] for the operator CLI.
package config
