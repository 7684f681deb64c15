// Package enc implements persistence for per-host ENC documents.
//
// The DirRepository loads and stores the YAML files the configuration
// agent consumes and exposes a Repository interface that the switcher
// service depends on.
package enc
