// Package exitcode defines named exit codes for the lib-template CLI and the
// classifier that turns an arbitrary error into one of them.
//
// Signal-derived codes follow the shell convention of 128 + signal number.
package exitcode

// Exit code constants.
const (
	Success     = 0   // Command completed
	Error       = 1   // Generic runtime failure
	Usage       = 2   // Bad flags or arguments; also the Go runtime status for an uncaught panic
	Interrupted = 130 // SIGINT received
	BrokenPipe  = 141 // Output pipe closed by reader (128 + SIGPIPE)
	Terminated  = 143 // SIGTERM received
	Break       = 149 // SIGBREAK received (Windows console break)
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Usage:
		return "Usage"
	case Interrupted:
		return "Interrupted"
	case BrokenPipe:
		return "BrokenPipe"
	case Terminated:
		return "Terminated"
	case Break:
		return "Break"
	default:
		return "unknown"
	}
}
