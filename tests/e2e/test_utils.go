package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// FindBinary is a helper to find the binary path for tests.
// It checks in the following order:
// 1. READMEGEN_BINARY environment variable
// 2. Common relative paths from test execution directory
// 3. System PATH
func FindBinary() (string, error) {
	if binary := os.Getenv("READMEGEN_BINARY"); binary != "" {
		return binary, nil
	}

	candidates := []string{
		"./bin/readmegen",
		"../bin/readmegen",
		"../../bin/readmegen",
		"../../../bin/readmegen",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			absPath, err := filepath.Abs(candidate)
			if err != nil {
				return "", err
			}
			return absPath, nil
		}
	}

	if path, err := exec.LookPath("readmegen"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("could not find readmegen binary - please set READMEGEN_BINARY environment variable or ensure readmegen is built and in PATH")
}
