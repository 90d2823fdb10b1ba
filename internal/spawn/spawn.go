// Package spawn starts programs detached from the window manager.
package spawn

import (
	"fmt"
	"log/slog"
	"os/exec"
	"syscall"
)

// Shell runs commands with /bin/sh -c in a new session.
type Shell struct {
	// Path defaults to /bin/sh.
	Path string
}

// Start runs command without waiting for it to finish. The child is reaped in
// the background.
func (s Shell) Start(command string) (*exec.Cmd, error) {
	path := s.Path
	if path == "" {
		path = "/bin/sh"
	}

	cmd := exec.Command(path, "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %q: %w", command, err)
	}

	// Wait only reaps the child so it does not stay a zombie of the window
	// manager. Nothing tracks it.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("Command exited", "package", "spawn", "command", command, "error", err)
		}
	}()

	return cmd, nil
}

// Launch is Start with the error logged.
func (s Shell) Launch(command string) {
	if _, err := s.Start(command); err != nil {
		slog.Error("Failed to launch", "package", "spawn", "command", command, "error", err)
		return
	}
	slog.Debug("Launched", "package", "spawn", "command", command)
}
