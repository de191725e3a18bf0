//go:build !windows

package signal

import (
	"os"
	"syscall"

	"github.com/bitranox/lib-template/internal/termination"
)

var notifySignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGPIPE}

var signalKinds = map[os.Signal]termination.Kind{
	syscall.SIGINT:  termination.KindInterrupt,
	syscall.SIGTERM: termination.KindTerminate,
}
