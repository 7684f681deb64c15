// Package updates contains core domain types for the update switching logic.
//
// It defines UpdateMode (the value of the updates property), Host (one ENC
// document and safe access to that property), downtime Window parsing and
// matching, and Actor (who ran the tool).
package updates
