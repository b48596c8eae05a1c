package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gogitobj "github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitFile(t *testing.T, repo *gogit.Repository, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit(message, &gogit.CommitOptions{
		Author: &gogitobj.Signature{
			Name:  "Test Author",
			Email: "author@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestGetHeadCommitMessage(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "hello\n", "feat: add a.txt\n")

	msg, err := GetHeadCommitMessage()
	require.NoError(t, err)
	assert.Equal(t, "feat: add a.txt", msg)
}

func TestListCommitsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "one\n", "first commit")
	commitFile(t, repo, dir, "a.txt", "two\n", "second commit")

	commits, err := ListCommits()
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Contains(t, commits[0].Message, "second commit")
	assert.Contains(t, commits[1].Message, "first commit")
}

func TestGetCommitDiffRootCommit(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "hello world\n", "initial")

	commits, err := ListCommits()
	require.NoError(t, err)
	require.Len(t, commits, 1)

	diff, err := GetCommitDiff(commits[0])
	require.NoError(t, err)
	assert.Contains(t, diff, "a.txt")
	assert.Contains(t, diff, "hello world")
}

func TestGetCommitDiffWithParent(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "old line\n", "first")
	commitFile(t, repo, dir, "a.txt", "new line\n", "second")

	commits, err := ListCommits()
	require.NoError(t, err)
	diff, err := GetCommitDiff(commits[0])
	require.NoError(t, err)
	assert.Contains(t, diff, "new line")
}

func TestGetStagedDiff(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "original content\n", "initial")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("changed content\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.txt")
	require.NoError(t, err)

	diff, err := GetStagedDiff()
	require.NoError(t, err)
	assert.Contains(t, diff, "diff --git a/a.txt b/a.txt")
	assert.NotEmpty(t, diff)
}

func TestGetStagedDiffSkipsBinary(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)

	commitFile(t, repo, dir, "a.txt", "text\n", "initial")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x00, 0x01, 0x02}, 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("blob.bin")
	require.NoError(t, err)

	diff, err := GetStagedDiff()
	require.NoError(t, err)
	assert.NotContains(t, diff, "blob.bin")
}

func TestIsBinary(t *testing.T) {
	assert.False(t, isBinary(nil))
	assert.False(t, isBinary([]byte("plain text")))
	assert.True(t, isBinary([]byte{'a', 0x00, 'b'}))
}
