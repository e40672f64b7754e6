package tests

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"testing"
)

func buildDietcheckBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "dietcheck")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build dietcheck binary: %v\n%s", err, string(out))
	}
	return binPath
}

// runDietcheck runs the binary inside dir with an isolated config file.
func runDietcheck(t *testing.T, binPath, dir string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...)
	cmd := exec.Command(binPath, allArgs...)
	cmd.Dir = dir
	cmd.Env = []string{"HOME=" + dir}
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run dietcheck command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}
