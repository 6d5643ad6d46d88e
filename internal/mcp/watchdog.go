package mcp

import (
	"context"
	"os"
	"time"

	"prolom/internal/logging"
)

// WatchParent polls for parent process death in a background goroutine and
// calls cancelFn when the parent PID changes, so an orphaned server shuts
// down instead of lingering after its client is gone.
//
// It must NOT read from stdin: the SDK's stdio transport owns stdin
// exclusively, and stealing bytes from it would corrupt the JSON-RPC stream.
// The goroutine exits when ctx is cancelled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
