package exitcode

import (
	"context"
	"errors"
	"io/fs"
	"strconv"
	"syscall"
)

// Errno-style codes used when an error carries no numeric code of its own.
const (
	codeNotExist   = 2   // ENOENT
	codePermission = 13  // EACCES
	codeExist      = 17  // EEXIST
	codeInvalid    = 22  // EINVAL
	codeTimeout    = 110 // ETIMEDOUT
)

// ErrInvalidArgument marks errors caused by a bad value passed by the user.
var ErrInvalidArgument = errors.New("invalid argument")

// Coder is implemented by errors that carry their own process exit code.
type Coder interface {
	ExitCode() int
}

// Classify maps err to a process exit code.
//
// Lookup order:
//   - nil => Success
//   - an error in the chain implementing Coder => its ExitCode()
//   - a syscall.Errno in the chain => its numeric value
//   - fs.ErrNotExist / fs.ErrPermission / fs.ErrExist => 2 / 13 / 17
//   - context.DeadlineExceeded => 110
//   - *strconv.NumError or ErrInvalidArgument => 22
//   - anything else => Error
func Classify(err error) int {
	if err == nil {
		return Success
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return codeNotExist
	case errors.Is(err, fs.ErrPermission):
		return codePermission
	case errors.Is(err, fs.ErrExist):
		return codeExist
	case errors.Is(err, context.DeadlineExceeded):
		return codeTimeout
	case errors.Is(err, ErrInvalidArgument):
		return codeInvalid
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return codeInvalid
	}

	return Error
}
