package updates

// UpdateMode is the value of the updates key inside a host ENC document.
// It is the single piece of state this tool owns.
type UpdateMode string

const (
	// Security means security updates are applied to the host.
	Security UpdateMode = "security"
	// SecurityOff means security updates are suspended for a downtime.
	SecurityOff UpdateMode = "security_off"
	// None means no updates are applied at all.
	None UpdateMode = "none"
)

// Known reports whether the mode is one of the values this tool manages.
func (m UpdateMode) Known() bool {
	switch m {
	case Security, SecurityOff, None:
		return true
	default:
		return false
	}
}

// Description returns the human-readable form used in the statistics report.
func (m UpdateMode) Description() string {
	switch m {
	case Security:
		return "security updates ON"
	case SecurityOff:
		return "security updates OFF"
	case None:
		return "no updates"
	default:
		return "unknown updates status"
	}
}

// String returns the raw key value.
func (m UpdateMode) String() string {
	return string(m)
}
