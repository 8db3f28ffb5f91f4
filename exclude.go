// exclude.go - the exclusion filter (C4)
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

package dupes

import (
	"strings"
)

// Admit reports whether fr survives the exclusion filter (spec §4.4).
// fr must already carry a valid stat.
func Admit(fr *FileRec, cfg *Config) bool {
	if !cfg.Hidden {
		name := fr.Name()
		if strings.HasPrefix(name, ".") && name != "." && name != ".." {
			return false
		}
	}

	if fr.IsRegular() && fr.Size == 0 && !cfg.IncludeEmpty {
		return false
	}

	for _, r := range cfg.ExcludeSizes {
		if r.match(fr.Size) {
			return false
		}
	}

	if cfg.MaxLinkCount > 0 && fr.Nlink >= cfg.MaxLinkCount {
		return false
	}

	return true
}
