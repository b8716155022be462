// Package config provides configuration loading, merging, and validation
// facilities for the relay server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The returned config is
// built once at process start and handed to constructors; nothing in the
// application reads the environment afterwards.
package config
