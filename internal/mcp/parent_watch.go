package mcp

import (
	"context"
	"os"
	"time"

	"toolcodex/internal/logging"
)

// WatchParent monitors for parent process death in a background
// goroutine and calls cancelFn when the parent PID changes, so a
// disconnected editor does not leave zombie servers behind.
//
// It must NOT read from stdin: the SDK's StdioTransport owns stdin
// exclusively and stealing bytes would corrupt the JSON-RPC stream.
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "parent_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
