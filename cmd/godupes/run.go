// run.go -- wires CLI flags to the discovery engine and action package
//
// (c) 2024 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opencoff/go-dupes"
	"github.com/opencoff/go-dupes/action"
)

func runGodupes(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths given; see --help")
	}

	if err := validateActionFlags(); err != nil {
		return fmt.Errorf("%w: %s", dupes.ErrBadConfig, err)
	}

	cfg := buildConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	e, err := dupes.NewEngine(cfg)
	if err != nil {
		return err
	}

	installSignalHandler(e)

	if err := e.Run(args); err != nil {
		return err
	}

	heads := e.DuplicateHeads()
	files, bytes := e.Stats()
	reportSummary(files, bytes, heads)

	mode, ok := selectedActionMode()
	if !ok {
		return nil
	}

	jobs, planErrs := action.Plan(heads)
	for _, e := range planErrs {
		warn("%s", e)
	}
	if len(jobs) == 0 {
		return nil
	}

	results, err := action.Execute(jobs, mode, config.nworkers)
	reportActionResults(results)
	return err
}

// buildConfig translates the flat CLI flag set into the engine's
// Config bundle (spec §6).
func buildConfig() *dupes.Config {
	recurse := dupes.RecurseOff
	switch {
	case config.recurseAfterMarker:
		recurse = dupes.RecurseAfterMarker
	case config.recurse:
		recurse = dupes.RecurseOn
	}

	sortKey := dupes.OrderName
	if config.sortByTime {
		sortKey = dupes.OrderTime
	}

	return &dupes.Config{
		Recurse:           recurse,
		FollowSymlinks:    config.followSymlinks,
		OneFilesystem:     config.oneFilesystem,
		IncludeEmpty:      config.includeEmpty,
		Hidden:            config.hidden,
		ConsiderHardlink:  config.considerHardlink,
		PermissionsStrict: config.permissionsStrict,
		Isolate:           config.isolate,
		PartialOnly:       config.partialOnly,
		Quick:             config.quick,
		ChunkSizeOverride: config.chunkSize,
		SortKey:           sortKey,
		ReverseSort:       config.reverseSort,
		ParameterOrder:    config.parameterOrder,
		SoftAbort:         config.softAbort,
	}
}

func validateActionFlags() error {
	n := 0
	for _, b := range []bool{config.deleteAction, config.hardlinkAction, config.symlinkAction, config.reflinkAction} {
		if b {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("only one of --delete/--link-hard/--link-soft/--reflink may be given")
	}
	return nil
}

func selectedActionMode() (action.Mode, bool) {
	switch {
	case config.deleteAction:
		return action.Delete, true
	case config.hardlinkAction:
		return action.Hardlink, true
	case config.symlinkAction:
		return action.Symlink, true
	case config.reflinkAction:
		return action.Reflink, true
	default:
		return 0, false
	}
}

// installSignalHandler mirrors spec §4.9/§4.11's interrupt policy. A
// SIGINT sets the cancellation flag and lets the run finish its
// current file and unwind cleanly when soft-abort is on; otherwise (or
// on a second SIGINT) the process exits immediately, discarding
// whatever hasn't been reported yet. SIGUSR1 toggles the engine's
// live soft-abort policy without needing a restart, the same escape
// hatch jdupes.c offers by toggling F_SOFTABORT from its own SIGUSR1
// handler independently of how -Z/--softabort was set at startup.
func installSignalHandler(e *dupes.Engine) {
	toggle := softAbortToggleSignal()

	ch := make(chan os.Signal, 2)
	if toggle != nil {
		signal.Notify(ch, os.Interrupt, toggle)
	} else {
		signal.Notify(ch, os.Interrupt)
	}

	go func() {
		interrupted := false
		for sig := range ch {
			if toggle != nil && sig == toggle {
				on := e.ToggleSoftAbort()
				warn("soft-abort is now %s", onOff(on))
				continue
			}

			if !interrupted && e.SoftAbortEnabled() {
				e.Cancel()
				interrupted = true
				continue
			}
			os.Exit(130)
		}
	}()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func warn(format string, args ...any) {
	if config.quiet {
		return
	}
	fmt.Fprintln(color.Error, color.YellowString("warning:"), fmt.Sprintf(format, args...))
}
