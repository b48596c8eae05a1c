// Package git wraps the repository operations git-commit-helper needs:
// staged diffs, commit history and the commit-msg hook.
package git

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gogitobj "github.com/go-git/go-git/v5/plumbing/object"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// isBinary checks if the provided data is binary by scanning for a null byte.
func isBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return bytes.IndexByte(data, 0) != -1
}

// CheckRepository reports whether the current directory is inside a git
// repository.
func CheckRepository() bool {
	_, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// GetStagedDiff returns a unified diff of staged changes by comparing the
// HEAD tree against the working directory. Binary files are skipped.
func GetStagedDiff() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD commit: %w", err)
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD tree: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree status: %w", err)
	}

	var diffResult strings.Builder
	dmp := diffmatchpatch.New()

	for filePath, fileStatus := range status {
		if fileStatus.Staging == gogit.Unmodified || fileStatus.Staging == gogit.Untracked {
			continue
		}

		var oldContent string
		if fileInTree, err := headTree.File(filePath); err == nil {
			if reader, err := fileInTree.Blob.Reader(); err == nil {
				data, err := io.ReadAll(reader)
				reader.Close()
				if err == nil {
					oldContent = string(data)
				}
			}
		}

		var newContent string
		if data, err := os.ReadFile(filePath); err == nil {
			if isBinary(data) {
				continue
			}
			newContent = string(data)
		}

		diffs := dmp.DiffMain(oldContent, newContent, true)
		patches := dmp.PatchMake(oldContent, newContent, diffs)
		patchText := dmp.PatchToText(patches)

		if strings.TrimSpace(patchText) != "" {
			diffResult.WriteString(fmt.Sprintf("diff --git a/%s b/%s\n", filePath, filePath))
			diffResult.WriteString(patchText)
			diffResult.WriteString("\n")
		}
	}

	return diffResult.String(), nil
}

// GetHeadCommitMessage retrieves the last commit message on HEAD.
func GetHeadCommitMessage() (string, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}
	headRef, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	commit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD commit: %w", err)
	}
	return strings.TrimSpace(commit.Message), nil
}

// ListCommits returns all commits reachable from HEAD, newest first.
func ListCommits() ([]*gogitobj.Commit, error) {
	repo, err := gogit.PlainOpenWithOptions(".", &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("cannot find HEAD: %w", err)
	}
	commitIter, err := repo.Log(&gogit.LogOptions{From: headRef.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}
	defer commitIter.Close()

	var commits []*gogitobj.Commit
	err = commitIter.ForEach(func(c *gogitobj.Commit) error {
		commits = append(commits, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to iterate commits: %w", err)
	}
	return commits, nil
}

// GetCommitDiff obtains the diff introduced by the given commit.
func GetCommitDiff(commit *gogitobj.Commit) (string, error) {
	if commit.NumParents() == 0 {
		tree, err := commit.Tree()
		if err != nil {
			return "", err
		}
		emptyTree := &gogitobj.Tree{}
		patch, err := emptyTree.Patch(tree)
		if err != nil {
			return "", err
		}
		return patch.String(), nil
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return "", err
	}
	patch, err := parent.Patch(commit)
	if err != nil {
		return "", err
	}
	return patch.String(), nil
}
