package mcp

import (
	"context"
	"os"
	"time"

	"vinomorph/internal/logging"
)

// WatchParent monitors for parent process death in a background
// goroutine. When the parent PID changes (the MCP client disconnected
// or restarted), it calls cancelFn to trigger graceful shutdown. This
// prevents zombie server processes from accumulating.
//
// IMPORTANT: This must NOT read from stdin — the MCP SDK's
// StdioTransport owns stdin exclusively. Reading from stdin here would
// steal bytes and corrupt the JSON-RPC protocol.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	logger := logging.New("watchdog")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logger.Warn("parent process died, initiating shutdown", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
