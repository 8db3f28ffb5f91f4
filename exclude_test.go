// exclude_test.go - tests for the exclusion filter (C4)
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
	"path/filepath"
	"testing"
)

func TestAdmitHiddenFiles(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	fp := filepath.Join(dir, ".hidden")
	mustWrite(t, fp, []byte("x"))
	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	cfg := &Config{}
	assert(!Admit(fr, cfg), "dotfile admitted with Hidden=false")

	cfg.Hidden = true
	assert(Admit(fr, cfg), "dotfile rejected with Hidden=true")
}

func TestAdmitSizeExclusion(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	fp := filepath.Join(dir, "small")
	mustWrite(t, fp, []byte("12345"))
	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	cfg := &Config{ExcludeSizes: []SizeRule{{Op: SizeLT, Threshold: 10}}}
	assert(!Admit(fr, cfg), "file under threshold should be excluded")

	cfg.ExcludeSizes = []SizeRule{{Op: SizeGT, Threshold: 10}}
	assert(Admit(fr, cfg), "file under a GT-10 rule should be admitted")
}

func TestAdmitMaxLinkCount(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	fp := filepath.Join(dir, "a")
	mustWrite(t, fp, []byte("x"))
	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	cfg := &Config{MaxLinkCount: 1}
	assert(!Admit(fr, cfg), "nlink==MaxLinkCount should be excluded")
}
