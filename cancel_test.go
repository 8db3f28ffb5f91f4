// cancel_test.go - tests for cooperative cancellation (C11)
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

import "testing"

func TestCancelerPoll(t *testing.T) {
	assert := newAsserter(t)
	var c Canceler

	assert(c.Poll() == nil, "unfired canceler should poll clean")
	assert(!c.Canceled(), "unfired canceler reports canceled")

	c.Cancel()
	assert(c.Canceled(), "canceler not reporting canceled after Cancel")
	assert(errAny(c.Poll(), ErrAborted), "expected ErrAborted after Cancel")

	c.Reset()
	assert(!c.Canceled(), "canceler still reports canceled after Reset")
	assert(c.Poll() == nil, "reset canceler should poll clean")
}

func TestCancelerSoftAbortToggle(t *testing.T) {
	assert := newAsserter(t)
	var c Canceler

	assert(!c.SoftAbortEnabled(), "zero-value canceler should start with soft-abort off")

	c.SetSoftAbort(true)
	assert(c.SoftAbortEnabled(), "SetSoftAbort(true) did not take effect")

	on := c.ToggleSoftAbort()
	assert(!on, "first toggle from true should return false")
	assert(!c.SoftAbortEnabled(), "SoftAbortEnabled disagrees with ToggleSoftAbort's return")

	on = c.ToggleSoftAbort()
	assert(on, "second toggle from false should return true")
	assert(c.SoftAbortEnabled(), "SoftAbortEnabled disagrees with ToggleSoftAbort's return")
}
