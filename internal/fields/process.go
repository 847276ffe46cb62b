// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fields

import (
	"os"
	"runtime"
)

// Process returns the "process" field map describing the running program:
// cwd, pid, platform, arch, execPath and argv.
func Process(args []string) map[string]any {
	cwd, _ := os.Getwd()
	execPath, _ := os.Executable()

	argv := make([]any, len(args))
	for i, arg := range args {
		argv[i] = arg
	}

	return map[string]any{
		"cwd":      cwd,
		"pid":      os.Getpid(),
		"platform": runtime.GOOS,
		"arch":     runtime.GOARCH,
		"execPath": execPath,
		"argv":     argv,
	}
}
