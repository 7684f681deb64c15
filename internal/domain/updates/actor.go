package updates

import (
	"fmt"
	"os"
	"os/user"
)

// Actor identifies who invoked the tool, for the audit trail in the logs.
type Actor struct {
	// Hostname is the machine name where the tool was run.
	Hostname string
	// Username is the system user who ran it.
	Username string
}

// DetectActor gathers host and user information for audit logging.
func DetectActor() (*Actor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &Actor{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}
