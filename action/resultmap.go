// resultmap.go -- a concurrency safe map of path to action outcome
//
// Adapted from go-fio's fiomap.go: that file mapped a relative path to
// its Stat/Lstat Info for a clone operation. Here, workers executing
// Delete/Hardlink/Symlink/Reflink jobs concurrently record one Result
// per path so the caller can summarize reclaimed bytes and failures
// after WorkPool.Wait() returns.

package action

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Result is the outcome of applying an action to a single duplicate
// member.
type Result struct {
	Path           string
	BytesReclaimed int64
	Err            error
}

// ResultMap is a concurrency safe map of path name to its Result,
// populated by the WorkPool workers running the executors in
// action.go/hardlink.go/symlink.go/reflink.go.
type ResultMap = xsync.MapOf[string, Result]

func NewResultMap() *ResultMap {
	return xsync.NewMapOf[string, Result]()
}
