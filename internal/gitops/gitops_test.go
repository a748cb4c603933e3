package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.yaml"), []byte("state: initial\n"), 0o644))

	hash, err := CommitAll(dir, "disburse: advance for Raja's Thela", "Vendorfund", "fund@vendorfund.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "disburse: advance for Raja's Thela")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Vendorfund <fund@vendorfund.dev>")
}

func TestCommitAll_NoAmbientGitIdentity(t *testing.T) {
	// Commits must succeed on a machine with no git config at all.
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)

	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.csv"), []byte("entry_id\n"), 0o644))

	hash, err := CommitAll(dir, "record: bonus for Raja's Thela", "Vendorfund", "fund@vendorfund.dev")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	committerLog := exec.Command("git", "log", "--format=%cn <%ce>", "-1")
	committerLog.Dir = dir
	out, err := committerLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Vendorfund <fund@vendorfund.dev>")
}
