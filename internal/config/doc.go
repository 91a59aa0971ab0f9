// Package config assembles the application settings from the environment.
//
// Settings are loaded once at startup from environment variables with
// documented defaults. Numeric values that fail to parse abort the load so a
// misconfigured deployment fails fast instead of running with partial
// settings. The satellite system registry is part of the settings and is
// built from a fixed factory rather than the environment.
package config
