// Package switcher implements the business flow of the tool: one run locks
// out concurrent invocations, loads every host ENC document, applies the
// requested update mode honoring downtime windows, writes back only the
// documents whose value changed and reports aggregate statistics.
package switcher
