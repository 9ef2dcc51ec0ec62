//go:build !unix

package process

import (
	"os"
	"os/exec"
)

// setProcessGroup is a no-op without process group support.
func setProcessGroup(*exec.Cmd) {}

func interruptProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}

func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

func exitCodeFromError(*exec.ExitError) (int, bool) {
	return 0, false
}
