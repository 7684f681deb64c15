// Package lock serializes tool invocations with an advisory file lock so
// two runs never edit the ENC directory at the same time.
package lock
