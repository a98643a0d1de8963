package parallel

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the numeric goroutine id of the calling goroutine by
// parsing the header line of its own stack trace. Go exposes no public
// goroutine-local storage, so this is the established way to answer "which
// goroutine is this" without threading an explicit handle through every
// call — the same technique the dedicated (and otherwise dependency-free)
// github.com/joeycumines/goroutineid module exists to wrap.
//
// Called at worker-registration time, at the top of every entry point, and
// once per branch task (task.run looks up its worker before forking), never
// inside a leaf's compute/combine loop.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	const prefix = "goroutine "
	buf = bytes.TrimPrefix(buf, []byte(prefix))
	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
