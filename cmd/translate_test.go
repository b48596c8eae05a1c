package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/githelper/git-commit-helper/pkg/config"
)

func TestCommitMessageBody(t *testing.T) {
	raw := `fix: handle empty input

# Please enter the commit message for your changes. Lines starting
# with '#' will be ignored, and an empty message aborts the commit.
`
	assert.Equal(t, "fix: handle empty input", commitMessageBody(raw))
	assert.Equal(t, "", commitMessageBody("# only comments\n# here\n"))
	assert.Equal(t, "", commitMessageBody("   \n\n"))
}

func TestTranslateHookFilePassthrough(t *testing.T) {
	cfg := config.NewConfig()

	cases := map[string]string{
		"merge":        "Merge branch 'feature' into main\n",
		"fixup":        "fixup! earlier change\n",
		"squash":       "squash! earlier change\n",
		"comment only": "# nothing here\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			require.NoError(t, translateHookFile(cfg, path))

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(after), "message file untouched")
		})
	}
}

func TestTranslateHookFileMissingFile(t *testing.T) {
	cfg := config.NewConfig()
	err := translateHookFile(cfg, filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestParseIndex(t *testing.T) {
	n, err := parseIndex("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseIndex("abc")
	assert.Error(t, err)
}
