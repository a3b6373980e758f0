// Package config loads tascal settings from TOML.
//
// A missing path yields Default(). Loaded values are normalized (trimmed,
// lower-cased, unknown log formats mapped to console) and then validated so
// callers can pass them straight to the peak, calibration and ΔAbs packages.
package config
