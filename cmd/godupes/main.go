// main.go -- godupes command line entry point
//
// Flag parsing follows mutagen-io/mutagen's cmd/ tree: one *cobra.Command,
// a config struct of flag destinations filled by an init(), SortFlags
// disabled so -h prints options in the order they're declared below.
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

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "godupes: %s\n", err)
		os.Exit(1)
	}
}

var rootCommand = &cobra.Command{
	Use:   "godupes [flags] <path>...",
	Short: "Find (and optionally collapse) duplicate files",
	RunE:  runGodupes,
}

var config struct {
	help bool

	recurse            bool
	recurseAfterMarker bool
	followSymlinks     bool
	oneFilesystem      bool
	includeEmpty       bool
	hidden             bool

	considerHardlink  bool
	permissionsStrict bool
	isolate           bool
	partialOnly       bool
	quick             bool
	softAbort         bool
	reverseSort       bool
	parameterOrder    bool

	sortByTime bool
	chunkSize  int

	quiet bool

	deleteAction   bool
	hardlinkAction bool
	symlinkAction  bool
	reflinkAction  bool
	nworkers       int
}

func init() {
	flags := rootCommand.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&config.help, "help", "h", false, "Show help information")

	flags.BoolVarP(&config.recurse, "recurse", "r", false, "Recurse into subdirectories")
	flags.BoolVarP(&config.recurseAfterMarker, "recurse-after-marker", "R", false, "Recurse into subdirectories, same as -r (no '--' marker is tracked)")
	flags.BoolVarP(&config.followSymlinks, "follow-symlinks", "s", false, "Follow symbolic links during traversal")
	flags.BoolVar(&config.oneFilesystem, "one-filesystem", false, "Don't cross filesystem boundaries while recursing")
	flags.BoolVar(&config.includeEmpty, "include-empty", false, "Consider zero-length files as candidates")
	flags.BoolVarP(&config.hidden, "hidden", "H", false, "Include hidden (dot) files and directories")

	flags.BoolVar(&config.considerHardlink, "consider-hardlinks", false, "Report existing hard links as duplicates too")
	flags.BoolVar(&config.permissionsStrict, "permissions-strict", false, "Require identical mode/uid/gid to consider a match")
	flags.BoolVarP(&config.isolate, "isolate", "O", false, "Never match two files from the same command-line argument")
	flags.BoolVar(&config.partialOnly, "partial-only", false, "Match on the partial hash alone, skip full-file hashing")
	flags.BoolVarP(&config.quick, "quick", "Q", false, "Trust the hash match, skip byte-for-byte confirmation")
	flags.BoolVar(&config.softAbort, "soft-abort", false, "Finish the current file before honoring a second interrupt")
	flags.BoolVar(&config.reverseSort, "reverse", false, "Reverse the duplicate-chain sort order")
	flags.BoolVarP(&config.parameterOrder, "param-order", "I", false, "Tie-break by command-line argument order before the sort key")

	flags.BoolVarP(&config.sortByTime, "order-time", "t", false, "Sort duplicate chains by mtime instead of name")
	flags.IntVar(&config.chunkSize, "chunk-size", 0, "Override the auto-tuned I/O chunk size, in bytes")

	flags.BoolVarP(&config.quiet, "quiet", "q", false, "Suppress non-fatal diagnostics")

	flags.BoolVarP(&config.deleteAction, "delete", "d", false, "Delete every duplicate but the keeper")
	flags.BoolVar(&config.hardlinkAction, "link-hard", false, "Replace duplicates with hard links to the keeper")
	flags.BoolVar(&config.symlinkAction, "link-soft", false, "Replace duplicates with symlinks to the keeper")
	flags.BoolVar(&config.reflinkAction, "reflink", false, "Replace duplicates with copy-on-write clones of the keeper")
	flags.IntVarP(&config.nworkers, "workers", "j", 0, "Worker count for the action phase (0 = NumCPU)")
}
