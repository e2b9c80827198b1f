// Package config provides configuration loading, merging, and validation
// facilities for the class-sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// Missing values are then filled from defaults. The main entry point is
// [GetClientConfig].
package config
