package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_NoArgs(t *testing.T) {
	h := NewTestHelper(t)

	stdout, stderr, err := h.RunGtl(h.WorkDir(), "")

	h.AssertExitCode(err, 1)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: gtl help")
	_, statErr := os.Stat(h.configPath)
	assert.True(t, os.IsNotExist(statErr), "config must not be created")
}

func TestE2E_Version(t *testing.T) {
	h := NewTestHelper(t)

	for _, arg := range []string{"version", "-v", "--version"} {
		stdout, _, err := h.RunGtl(h.WorkDir(), "", arg)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(stdout, "gtl version: "), stdout)
	}
	assert.FileExists(t, h.configPath)
}

func TestE2E_PassThrough(t *testing.T) {
	h := NewTestHelper(t)
	dir := h.WorkDir()
	h.RunGit(dir, "init")

	stdout, _, err := h.RunGtl(dir, "", "rev-parse", "--is-inside-work-tree")
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(stdout))

	_, _, err = h.RunGtl(dir, "", "checkout", "no-such-branch")
	h.AssertExitCode(err, 1)
}

func TestE2E_InitAcpPush(t *testing.T) {
	h := NewTestHelper(t)
	dir := h.WorkDir()
	origin := h.CreateBareRemote("origin")
	mirror := h.CreateBareRemote("mirror")
	h.WriteConfig(dir, Remote{Name: "origin", URL: origin}, Remote{Name: "mirror", URL: mirror})

	_, stderr, err := h.RunGtl(dir, "", "init")
	require.NoError(t, err, stderr)
	assert.ElementsMatch(t, []string{"origin", "mirror"}, strings.Split(h.RunGit(dir, "remote"), "\n"))

	h.AddFile(dir, "README.md", "# demo\n")
	stdout, stderr, err := h.RunGtl(dir, "feat: first commit\n", "acp")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Pushing to origin")
	assert.Equal(t, "feat: first commit", h.LastCommitMessage(origin, "main"))
	assert.Equal(t, "feat: first commit", h.LastCommitMessage(mirror, "main"))

	// 空输入时从 Cargo.toml 生成提交信息
	h.AddFile(dir, "Cargo.toml", "[package]\nname = \"demo\"\nversion = \"2.0.0\"\n")
	_, stderr, err = h.RunGtl(dir, "\n", "acp")
	require.NoError(t, err, stderr)
	assert.Equal(t, "feat: v2.0.0", h.LastCommitMessage(origin, "main"))

	h.AddFile(dir, "CHANGELOG.md", "- 2.0.0\n")
	h.RunGit(dir, "add", "CHANGELOG.md")
	h.RunGit(dir, "commit", "-m", "docs: changelog")
	_, stderr, err = h.RunGtl(dir, "", "push")
	require.NoError(t, err, stderr)
	assert.Equal(t, "docs: changelog", h.LastCommitMessage(mirror, "main"))
}

func TestE2E_PushWithoutConfigEntry(t *testing.T) {
	h := NewTestHelper(t)
	dir := h.WorkDir()
	h.WriteConfig("/not/this/directory", Remote{Name: "origin", URL: "/nowhere.git"})
	h.RunGit(dir, "init")

	stdout, stderr, err := h.RunGtl(dir, "", "push")

	require.NoError(t, err, stderr)
	assert.NotContains(t, stdout, "Pushing to")
}

func TestE2E_MalformedConfig(t *testing.T) {
	h := NewTestHelper(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(h.configPath), 0755))
	require.NoError(t, os.WriteFile(h.configPath, []byte("{broken"), 0644))

	_, stderr, err := h.RunGtl(h.WorkDir(), "", "status")

	h.AssertExitCode(err, 1)
	assert.Contains(t, stderr, "unable to parse config file")
}
