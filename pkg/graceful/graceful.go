package graceful

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wdr/pkg/logger"

	"github.com/jpillora/overseer"
)

const RestartSignal = syscall.SIGUSR2

// ShutdownSignals end a program run: termination from the OS, plus the
// signals overseer uses to retire a child during a restart.
var ShutdownSignals = []os.Signal{
	RestartSignal,
	syscall.SIGHUP,
	os.Interrupt,
	overseer.SIGTERM,
	overseer.SIGUSR1,
}

// ShutdownContext returns a context cancelled on the first shutdown signal or
// when the returned cancel is called. The signal is logged with the program
// name so API and worker exits can be told apart.
func ShutdownContext(parent context.Context, program string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, ShutdownSignals...)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			logger.WithField("program", program).Warnf("🔴 Received signal %v. Initiating shutdown...", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
