// report.go -- human-readable summary of a scan and action run
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

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/opencoff/go-dupes"
	"github.com/opencoff/go-dupes/action"
)

func reportSummary(files int, bytes int64, heads []*dupes.FileRec) {
	fmt.Printf("scanned %d files (%s)\n", files, humanize.IBytes(uint64(bytes)))

	if len(heads) == 0 {
		fmt.Println("no duplicates found")
		return
	}

	var reclaimable int64
	for _, head := range heads {
		color.Green("%s", head.Path())
		for v := head.Duplicates; v != nil; v = v.Duplicates {
			fmt.Printf("  %s\n", v.Path())
			reclaimable += v.Size
		}
	}
	fmt.Printf("\n%d duplicate set(s), %s reclaimable\n", len(heads), humanize.IBytes(uint64(reclaimable)))
}

func reportActionResults(results *action.ResultMap) {
	var reclaimed int64
	var failed int

	results.Range(func(path string, r action.Result) bool {
		if r.Err != nil {
			failed++
			warn("%s: %s", path, r.Err)
			return true
		}
		reclaimed += r.BytesReclaimed
		return true
	})

	fmt.Printf("reclaimed %s", humanize.IBytes(uint64(reclaimed)))
	if failed > 0 {
		color.Red(", %d action(s) failed", failed)
	} else {
		fmt.Println()
	}
}
