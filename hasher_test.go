// hasher_test.go - tests for partial/full hashing (C5)
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

func TestHashPartialIdempotent(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	fp := filepath.Join(dir, "a")
	mustWrite(t, fp, []byte("hello hello hello"))
	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	err = HashPartial(fr, 0, nil)
	assert(err == nil, "hash partial: %s", err)
	h1 := fr.PartialHash

	err = HashPartial(fr, 0, nil)
	assert(err == nil, "second hash partial: %s", err)
	assert(fr.PartialHash == h1, "partial hash changed across idempotent call")
}

func TestHashFullExtendsPartialState(t *testing.T) {
	assert := newAsserter(t)
	dir := t.TempDir()

	content := make([]byte, PartialSize*3)
	for i := range content {
		content[i] = byte(i)
	}

	fp := filepath.Join(dir, "a")
	mustWrite(t, fp, content)
	fr, err := Stat(fp, 0)
	assert(err == nil, "stat: %s", err)

	err = HashPartial(fr, 0, nil)
	assert(err == nil, "hash partial: %s", err)
	assert(fr.hstate != nil, "expected hashing scratch state to be retained")

	err = HashFull(fr, 0, nil)
	assert(err == nil, "hash full: %s", err)
	assert(fr.hstate == nil, "hashing scratch state should be released after full hash")

	fp2 := filepath.Join(dir, "b")
	mustWrite(t, fp2, content)
	fr2, err := Stat(fp2, 0)
	assert(err == nil, "stat: %s", err)
	err = HashFull(fr2, 0, nil)
	assert(err == nil, "hash full (no prior partial): %s", err)

	assert(fr.FullHash == fr2.FullHash, "full hash should not depend on whether a partial hash preceded it")
}

func TestChunkSizeClamping(t *testing.T) {
	assert := newAsserter(t)

	assert(ChunkSize(0) == defaultChunk, "override<=0 should use the default chunk size")
	assert(ChunkSize(1) == MinChunk, "tiny override should clamp up to MinChunk")
	assert(ChunkSize(MaxChunk*2) == MaxChunk, "huge override should clamp down to MaxChunk")
	assert(ChunkSize(MinChunk+1)%(4*1024) == 0, "chunk size must be a 4KiB multiple")
}
