//go:build !windows

package termination

import "syscall"

// brokenPipeErrnos lists platform errnos besides EPIPE that mean the reader
// went away.
var brokenPipeErrnos []syscall.Errno
