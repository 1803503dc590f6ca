// Package file provides the TOML-backed configuration store. Settings
// live in a single config.toml under the wayfarer config directory and
// are addressed with dot-notation keys ("embedding.model").
package file
