package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageRulesNeitherFlag(t *testing.T) {
	rules := languageRules(false, false)
	assert.Contains(t, rules, "Translate Chinese text to English")
}

func TestLanguageRulesSingleFlags(t *testing.T) {
	assert.Contains(t, languageRules(true, false), "Chinese only")
	assert.NotContains(t, languageRules(true, false), "English only")
	assert.Contains(t, languageRules(false, true), "English only")
	assert.NotContains(t, languageRules(false, true), "Chinese only")
}

func TestLanguageRulesBothFlags(t *testing.T) {
	// The flags are advisory hints, not mutually exclusive: both rules appear.
	rules := languageRules(true, true)
	assert.Contains(t, rules, "Chinese only")
	assert.Contains(t, rules, "English only")
}

func TestBuildTranslatePrompt(t *testing.T) {
	p := BuildTranslatePrompt("修复错误", false, false)
	assert.Contains(t, p, "修复错误")
	assert.Contains(t, p, "Conventional Commits")
	assert.NotContains(t, p, "{TEXT}")
	assert.NotContains(t, p, "{LANGUAGE_RULES}")
}

func TestBuildReviewPrompt(t *testing.T) {
	p := BuildReviewPrompt("diff --git a/x b/x", true, false)
	assert.Contains(t, p, "diff --git a/x b/x")
	assert.Contains(t, p, "Chinese only")
	assert.NotContains(t, p, "{DIFF}")
}

func TestBuildCommitSummaryPrompt(t *testing.T) {
	p := BuildCommitSummaryPrompt("Alice <alice@example.com>", "2024-05-01 10:00:00", "feat: add thing", "diff body", false, true)
	for _, want := range []string{"Alice <alice@example.com>", "2024-05-01 10:00:00", "feat: add thing", "diff body", "English only"} {
		assert.Contains(t, p, want)
	}
	for _, placeholder := range []string{"{AUTHOR}", "{DATE}", "{COMMIT_MSG}", "{DIFF}", "{LANGUAGE_RULES}"} {
		assert.False(t, strings.Contains(p, placeholder), "placeholder %s not substituted", placeholder)
	}
}
