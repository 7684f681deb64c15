package switcher

import (
	"context"
	"fmt"
	"io"
	"time"

	"manage-updates/internal/config"
	"manage-updates/internal/domain/updates"
	"manage-updates/internal/lock"
	"manage-updates/internal/logger"
	"manage-updates/internal/repository/enc"
)

// Mode selects the operation performed on the ENC documents.
type Mode string

const (
	// ModeOn switches security updates on for every host.
	ModeOn Mode = "on"
	// ModeOff switches updates off for every host.
	ModeOff Mode = "off"
	// ModeUpdate suspends updates during a downtime and resumes them after it.
	ModeUpdate Mode = "update"
	// ModeStatus only reports the current state.
	ModeStatus Mode = "status"
)

// Options configures a single switcher run.
type Options struct {
	// Settings is the loaded and validated tool configuration.
	Settings *config.Settings

	// Quiet suppresses the statistics report on Out.
	Quiet bool

	// Out receives the statistics report, normally stdout.
	Out io.Writer
}

// Run executes one invocation: take the run lock, read every host document,
// apply the requested mode and report the resulting state.
func (m Mode) Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithKV(logger.WithName(ctx, "switcher"), "mode", string(m))
	settings := opts.Settings

	// Audit line: who flipped the switch.
	if actor, err := updates.DetectActor(); err != nil {
		logger.Warnf(ctx, "unable to identify invoking user: %v", err)
	} else {
		logger.InfoKV(ctx, "running", "user", actor.Username, "host", actor.Hostname)
	}

	windows, err := updates.ParseWindows(settings.Downtimes, time.Now())
	if err != nil {
		return fmt.Errorf("downtime configuration: %w", err)
	}

	guard := lock.New(settings.LockFile)
	if err = guard.Acquire(ctx); err != nil {
		return err
	}
	defer guard.Release()

	repository := enc.NewDirRepository(settings.ENCDirectory)

	hosts, err := repository.LoadAll(ctx)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "loaded %d host documents from %s", len(hosts), settings.ENCDirectory)

	if m != ModeStatus {
		if err = apply(ctx, repository, hosts, m, windows); err != nil {
			return err
		}
	}

	// The operator always sees the outcome of a mutation; quiet only mutes status.
	report(ctx, hosts, opts.Quiet && m == ModeStatus, opts.Out)

	return nil
}

// apply computes and persists the new update mode for every host,
// writing a file back only when its value actually changed.
func apply(ctx context.Context, repository enc.Repository, hosts []*updates.Host, m Mode, windows []updates.Window) error {
	window, inDowntime := updates.ActiveWindow(windows, time.Now())
	if inDowntime {
		logger.InfoKV(ctx, "downtime window is active", "window", window.Raw)

		if m == ModeOn {
			logger.Warn(ctx, "updates cannot be switched on during a downtime")
			return nil
		}
	}

	for _, host := range hosts {
		current, err := host.UpdateMode()
		if err != nil {
			return fmt.Errorf("host %s: %w", host.Name(), err)
		}

		target := transition(m, current, inDowntime)
		if target == current {
			logger.Debugf(ctx, "%s: updates already %s", host.Name(), current)
			continue
		}

		if err = host.SetUpdateMode(target); err != nil {
			return fmt.Errorf("host %s: %w", host.Name(), err)
		}

		if err = repository.Save(ctx, host); err != nil {
			return err
		}

		logger.Infof(ctx, "%s: updates %s -> %s", host.Name(), current, target)
	}

	return nil
}

// transition maps the current update mode to the target one for the given
// command. Values it does not manage pass through unchanged.
func transition(m Mode, current updates.UpdateMode, inDowntime bool) updates.UpdateMode {
	switch m {
	case ModeOn:
		return updates.Security
	case ModeOff:
		return updates.None
	case ModeUpdate:
		// Suspend during a downtime, resume once it is over.
		if inDowntime {
			if current == updates.Security {
				return updates.SecurityOff
			}
		} else if current == updates.SecurityOff {
			return updates.Security
		}
	case ModeStatus:
	}

	return current
}
