// Package testutil provides test utilities and helpers for relnotes tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// relnotesBinaryPath caches the built relnotes binary path.
	relnotesBinaryPath string
	relnotesBuildOnce  sync.Once
	relnotesBuildErr   error
)

// E2EEnv provides an isolated environment for E2E testing.
// The relnotes binary runs in a temp directory that is also HOME, with
// XDG_CONFIG_HOME at <temp>/.config. RELNOTES_* variables are only present
// when set via SetEnv.
type E2EEnv struct {
	t         *testing.T
	tempDir   string
	binDir    string
	extraEnv  []string
	cleanedUp bool
}

// CommandResult captures the result of running a relnotes command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment with the relnotes binary built.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{t: t}

	env.setup()
	t.Cleanup(env.Cleanup)

	return env
}

func (e *E2EEnv) setup() {
	e.t.Helper()

	tempDir, err := os.MkdirTemp("", "relnotes-e2e-*")
	if err != nil {
		e.t.Fatalf("creating temp directory: %v", err)
	}
	e.tempDir = tempDir

	e.binDir = filepath.Join(tempDir, "bin")
	if err := os.MkdirAll(e.binDir, 0o755); err != nil {
		e.t.Fatalf("creating bin directory: %v", err)
	}

	e.buildRelnotes()
}

func (e *E2EEnv) buildRelnotes() {
	e.t.Helper()

	// Build relnotes binary once per test session
	relnotesBuildOnce.Do(func() {
		relnotesBinaryPath, relnotesBuildErr = doBuildRelnotes()
	})

	if relnotesBuildErr != nil {
		e.t.Fatalf("building relnotes: %v", relnotesBuildErr)
	}

	content, err := os.ReadFile(relnotesBinaryPath)
	if err != nil {
		e.t.Fatalf("reading relnotes binary: %v", err)
	}

	if err := os.WriteFile(e.binaryPath(), content, 0o755); err != nil {
		e.t.Fatalf("writing relnotes binary: %v", err)
	}
}

func doBuildRelnotes() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "relnotes-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, binaryName())

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/relnotes")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.RemoveAll(tmpDir)
		return "", fmt.Errorf("building relnotes: %w\nOutput: %s", err, output)
	}

	return binaryPath, nil
}

// CleanupBuild removes the directory holding the shared relnotes binary.
// Call it from TestMain once all tests of the package have run.
func CleanupBuild() error {
	if relnotesBinaryPath == "" {
		return nil
	}
	return os.RemoveAll(filepath.Dir(relnotesBinaryPath))
}

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "relnotes.exe"
	}
	return "relnotes"
}

func (e *E2EEnv) binaryPath() string {
	return filepath.Join(e.binDir, binaryName())
}

// Run executes relnotes in the isolated E2E environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(e.binaryPath(), args...)
	cmd.Dir = e.tempDir
	cmd.Env = e.buildIsolatedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}

	return result
}

// SetEnv adds an environment variable to every subsequent Run.
func (e *E2EEnv) SetEnv(key, value string) {
	e.extraEnv = append(e.extraEnv, key+"="+value)
}

func (e *E2EEnv) buildIsolatedEnv() []string {
	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + e.tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.tempDir, ".config"),
		"NO_COLOR=1",
	}

	// Add safe environment variables from original environment
	safeVars := []string{
		"LANG",
		"LC_ALL",
		"TMPDIR",
		"TMP",
		"TEMP",
		"SYSTEMROOT",
	}

	for _, key := range safeVars {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}

	return append(env, e.extraEnv...)
}

// TempDir returns the working directory of the relnotes process.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// WriteFile writes content to a path relative to TempDir.
func (e *E2EEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of a path relative to TempDir.
func (e *E2EEnv) ReadFile(name string) (string, bool) {
	e.t.Helper()

	data, err := os.ReadFile(filepath.Join(e.tempDir, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Cleanup removes temp files.
func (e *E2EEnv) Cleanup() {
	if e.cleanedUp {
		return
	}
	e.cleanedUp = true

	if e.tempDir != "" {
		if err := os.RemoveAll(e.tempDir); err != nil {
			e.t.Logf("note: could not remove temp directory: %v", err)
		}
	}
}
