// stat_test.go - test harness for the stat acquirer (C1)
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
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
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestStat(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := t.TempDir()

	fp := filepath.Join(tmpdir, "a")
	err := mkfilex(fp)
	assert(err == nil, "mkfile: %s", err)

	st, err := os.Stat(fp)
	assert(err == nil, "os.stat: %s", err)

	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	err = statEq(st, fr)
	assert(err == nil, "%s", err)
}

func statEq(st os.FileInfo, fr *FileRec) error {
	if st.Size() != fr.Size {
		return fmt.Errorf("size: exp %d, saw %d", st.Size(), fr.Size)
	}
	if st.Mode() != fr.Mode {
		return fmt.Errorf("mode: exp %#b, saw %#b", st.Mode(), fr.Mode)
	}
	return nil
}

// a second StatInto on a record that already carries ValidStat must be
// a no-op: fields already populated are never clobbered, even if the
// underlying file changes between calls (spec §4.1 invariant 7).
func TestStatIdempotent(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := t.TempDir()

	fp := filepath.Join(tmpdir, "a")
	err := mkfileSize(fp, 128, 'a')
	assert(err == nil, "mkfile: %s", err)

	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)
	assert(fr.HasFlag(ValidStat), "ValidStat not set after first stat")

	size1, mtime1 := fr.Size, fr.Mtim

	err = os.WriteFile(fp, []byte("this file grew and its mtime moved on"), 0644)
	assert(err == nil, "rewrite: %s", err)

	err = StatInto(fr)
	assert(err == nil, "second StatInto: %s", err)
	assert(fr.Size == size1, "size changed across idempotent StatInto: %d -> %d", size1, fr.Size)
	assert(fr.Mtim.Equal(mtime1), "mtime changed across idempotent StatInto")
}

func TestStatFileGone(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := t.TempDir()

	fp := filepath.Join(tmpdir, "nonexistent")
	_, err := Stat(fp, 0)
	assert(err != nil, "stat of missing file should fail")
	assert(errAny(err, ErrFileGone), "exp ErrFileGone, saw %s", err)
}

func TestStatSymlink(t *testing.T) {
	assert := newAsserter(t)
	tmpdir := t.TempDir()

	target := filepath.Join(tmpdir, "target")
	err := mkfilex(target)
	assert(err == nil, "mkfile: %s", err)

	link := filepath.Join(tmpdir, "link")
	err = os.Symlink(target, link)
	assert(err == nil, "symlink: %s", err)

	fr, err := Lstat(link)
	assert(err == nil, "lstat: %s", err)
	assert(fr.HasFlag(IsSymlink), "IsSymlink not set for %s", link)
}
