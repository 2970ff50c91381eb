package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper provides utilities for E2E tests
type TestHelper struct {
	t          *testing.T
	binPath    string
	configPath string
	env        []string
}

// Remote is one entry of the gtl config file.
type Remote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewTestHelper builds gtl and isolates HOME, the global git config and the
// gtl config file inside temp directories.
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}

	home := t.TempDir()
	globalConfig := filepath.Join(home, ".gitconfig")
	// push <remote> 不带 refspec 时推送当前分支
	gitconfig := "[init]\n\tdefaultBranch = main\n[push]\n\tdefault = current\n"
	require.NoError(t, os.WriteFile(globalConfig, []byte(gitconfig), 0644))

	h := &TestHelper{
		t:          t,
		binPath:    buildBinary(t),
		configPath: filepath.Join(home, ".git_helper", "config.json"),
	}
	h.env = append(os.Environ(),
		"HOME="+home,
		"GIT_CONFIG_GLOBAL="+globalConfig,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GTL_CONFIG="+h.configPath,
	)
	return h
}

// buildBinary 构建 gtl 可执行文件并返回路径。
func buildBinary(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "gtl-bin")
	if runtime.GOOS == "windows" {
		binPath += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", binPath, "github.com/penwyp/gtl")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v, output: %s", err, string(out))
	}
	return binPath
}

// WorkDir returns an empty directory under its canonical path, the same
// form gtl looks remotes up by.
func (h *TestHelper) WorkDir() string {
	dir, err := filepath.EvalSymlinks(h.t.TempDir())
	require.NoError(h.t, err)
	return dir
}

// CreateBareRemote creates a bare repository usable as a push target.
func (h *TestHelper) CreateBareRemote(name string) string {
	dir := filepath.Join(h.t.TempDir(), name+".git")
	h.RunGit("", "init", "--bare", dir)
	return dir
}

// WriteConfig writes the gtl config mapping dir to remotes.
func (h *TestHelper) WriteConfig(dir string, remotes ...Remote) {
	data, err := json.Marshal(map[string][]Remote{dir: remotes})
	require.NoError(h.t, err)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(h.configPath), 0755))
	require.NoError(h.t, os.WriteFile(h.configPath, data, 0644))
}

// RunGit executes git in dir and fails the test on error.
func (h *TestHelper) RunGit(dir string, args ...string) string {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = h.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		h.t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// RunGtl executes gtl in dir with stdin and returns stdout, stderr and the
// process error.
func (h *TestHelper) RunGtl(dir, stdin string, args ...string) (string, string, error) {
	cmd := exec.Command(h.binPath, args...)
	cmd.Dir = dir
	cmd.Env = h.env
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// AddFile creates a file in the repository.
func (h *TestHelper) AddFile(repoDir, filename, content string) {
	filePath := filepath.Join(repoDir, filename)
	require.NoError(h.t, os.MkdirAll(filepath.Dir(filePath), 0755))
	require.NoError(h.t, os.WriteFile(filePath, []byte(content), 0644))
}

// LastCommitMessage returns the subject of the last commit on ref in the
// repository at gitDir.
func (h *TestHelper) LastCommitMessage(gitDir, ref string) string {
	return h.RunGit("", "--git-dir", gitDir, "log", "-1", "--pretty=%s", ref)
}

// AssertExitCode checks the exit code of an exec.ExitError
func (h *TestHelper) AssertExitCode(err error, expectedCode int) {
	h.t.Helper()
	exitErr, ok := err.(*exec.ExitError)
	require.True(h.t, ok, fmt.Sprintf("expected exec.ExitError, got %T", err))
	require.Equal(h.t, expectedCode, exitErr.ExitCode())
}
