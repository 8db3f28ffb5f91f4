// change.go - the change detector (C10)
//
// Consumed exclusively by destructive-action collaborators (see
// go-dupes/action) before they act on a pair: re-stat the path and
// compare every field a destructive action cares about against the
// FileRec's stored snapshot.
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

// Changed reports whether fr's file has changed on disk since it was
// stat'd, by re-stat-ing the path and comparing inode, device, size,
// mtime, mode, the symlink bit, uid, gid and xattr against the stored
// snapshot. A record that was never successfully stat'd, or whose
// re-stat now fails, is reported as changed (conservative: refuse to
// act rather than risk acting on stale data). The xattr comparison
// catches "funny" entries: a file whose content and ordinary metadata
// are untouched but whose extended attributes were rewritten out from
// under the scan.
func Changed(fr *FileRec) bool {
	if !fr.HasFlag(ValidStat) {
		return true
	}

	now, err := Stat(fr.path, fr.UserOrder)
	if err != nil {
		return true
	}

	switch {
	case now.Ino != fr.Ino,
		now.Dev != fr.Dev,
		now.Size != fr.Size,
		!now.Mtim.Equal(fr.Mtim),
		now.Mode != fr.Mode,
		now.HasFlag(IsSymlink) != fr.HasFlag(IsSymlink),
		now.Uid != fr.Uid,
		now.Gid != fr.Gid,
		!now.Xattr.Equal(fr.Xattr):
		return true
	default:
		return false
	}
}
