package switcher

import (
	"context"
	"fmt"
	"io"

	"manage-updates/internal/domain/updates"
	"manage-updates/internal/logger"
)

// report logs every host's update mode and prints aggregate statistics.
// Hosts without an updates key are skipped, they are not managed by this tool.
func report(ctx context.Context, hosts []*updates.Host, quiet bool, out io.Writer) {
	var (
		counts  = make(map[updates.UpdateMode]int)
		unknown int
	)

	for _, host := range hosts {
		mode, err := host.UpdateMode()
		if err != nil {
			logger.Debugf(ctx, "%s: %v", host.Name(), err)
			continue
		}

		logger.Infof(ctx, "%s - updates: %s", host.Name(), mode)

		if mode.Known() {
			counts[mode]++
		} else {
			unknown++
		}
	}

	if quiet || out == nil {
		return
	}

	for _, mode := range []updates.UpdateMode{updates.Security, updates.SecurityOff, updates.None} {
		printCount(out, mode.Description(), counts[mode])
	}

	if unknown > 0 {
		printCount(out, "unknown updates status", unknown)
	}
}

// printCount writes one aligned summary line of the statistics report.
func printCount(out io.Writer, description string, count int) {
	_, _ = fmt.Fprintf(out, "Hosts with %20s: %3d\n", description, count)
}
