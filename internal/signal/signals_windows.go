//go:build windows

package signal

import (
	"os"
	"syscall"

	"github.com/bitranox/lib-template/internal/termination"
)

// The Go runtime delivers both CTRL_C_EVENT and CTRL_BREAK_EVENT as
// os.Interrupt, so a console break surfaces as KindInterrupt here.
var notifySignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

var signalKinds = map[os.Signal]termination.Kind{
	os.Interrupt:    termination.KindInterrupt,
	syscall.SIGTERM: termination.KindTerminate,
}
