// Package config loads, normalizes, and validates docuvid configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and pipeline driver need: workspace directories, logging, pipeline
// concurrency, and default video styling.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
