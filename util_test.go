// util_test.go -- small test helpers shared across this package's tests
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
	"math/rand/v2"
	"os"
	"testing"
)

// newAsserter returns a closure that fails the test immediately with a
// formatted message when cond is false - cuts down on repeated
// if err != nil { t.Fatalf(...) } boilerplate in the tests below.
func newAsserter(t *testing.T) func(cond bool, format string, args ...any) {
	t.Helper()
	return func(cond bool, format string, args ...any) {
		if !cond {
			t.Helper()
			t.Fatalf(format, args...)
		}
	}
}

// mkfilex creates a small regular file with fixed text content at nm.
func mkfilex(nm string) error {
	return mkfile(nm, []byte("the quick brown fox jumped over the lazy dog\n"))
}

// mkfile creates nm with the exact contents 'b'.
func mkfile(nm string, b []byte) error {
	return os.WriteFile(nm, b, 0644)
}

// mkfileSize creates nm with 'sz' bytes, each byte equal to 'fill'.
func mkfileSize(nm string, sz int, fill byte) error {
	b := make([]byte, sz)
	for i := range b {
		b[i] = fill
	}
	return os.WriteFile(nm, b, 0644)
}

// mkfileRandom creates nm with 'sz' pseudo-random bytes, seeded for
// reproducibility across test runs.
func mkfileRandom(nm string, sz int, seed uint64) error {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := make([]byte, sz)
	for i := range b {
		b[i] = byte(r.IntN(256))
	}
	return os.WriteFile(nm, b, 0644)
}
