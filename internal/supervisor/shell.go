// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package supervisor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/matt-FFFFFF/prun/internal/ctxlog"
)

const (
	goosWindows          = "windows"    // GOOS value for Windows.
	commandSwitchWindows = "/C"         // Command switch for Windows cmd.exe
	commandSwitchUnix    = "-c"         // Command switch for Unix-like shells
	winSystem32          = "System32"   // Directory where cmd.exe is located on Windows.
	cmdExe               = "cmd.exe"    // Command interpreter executable on Windows.
	binSh                = "/bin/sh"    // Default shell for Unix-like systems.
	winSystemRootEnv     = "SystemRoot" // Environment variable for Windows system root directory.
)

func defaultShell(ctx context.Context) string {
	if runtime.GOOS == goosWindows {
		systemRoot := os.Getenv(winSystemRootEnv)
		if systemRoot == "" {
			systemRoot = `C:\Windows`
		}

		return fmt.Sprintf(`%s\%s\%s`, systemRoot, winSystem32, cmdExe)
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		ctxlog.Debug(ctx, "using SHELL environment variable", "shell", shell)
		return shell
	}

	return binSh
}

// shellArgv returns the argv used to run command through shell, including argv[0].
func shellArgv(shell, command string) []string {
	sw := commandSwitchUnix
	if runtime.GOOS == goosWindows {
		sw = commandSwitchWindows
	}

	return []string{filepath.Base(shell), sw, command}
}
