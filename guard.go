package rustbox

import "sync/atomic"

// running is the process-wide session flag. Open sets it with an atomic
// swap so contending opens cannot trample each other; Close clears it
// strictly after the driver has been shut down.
var running atomic.Bool

// Running reports whether a Session is currently open.
//
// This is a single unsynchronized read for diagnostic use only, e.g. to
// decide whether printing a backtrace would be swallowed by the alternate
// screen. It is not a concurrency primitive; do not gate correctness on it.
func Running() bool {
	return running.Load()
}

func acquireRunning() bool {
	return running.CompareAndSwap(false, true)
}

func releaseRunning() {
	running.Store(false)
}
