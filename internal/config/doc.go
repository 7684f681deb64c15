// Package config defines the tool settings (ENC directory, lock file, log
// file and downtime windows) and provides helpers to load, validate and
// save them in YAML format.
//
// The settings file is optional: when it is missing, package defaults
// apply, matching the behavior of a fresh installation.
package config
