// Package prompt builds the texts sent to the AI backends.
package prompt

import (
	"strings"
)

// DefaultTranslateTemplate is used for commit-message translation.
const DefaultTranslateTemplate = `Translate the following git commit message, following these rules:
- Keep the Conventional Commits prefix (e.g. "feat:", "fix:") unchanged if present.
- Preserve issue references, URLs, file paths and code identifiers verbatim.
- Do not add explanations, quotes or any text besides the translated message.
{LANGUAGE_RULES}
Commit message:
{TEXT}
`

// DefaultReviewTemplate is used for AI review of a staged diff.
const DefaultReviewTemplate = `Review the following code diff and provide suggestions, following these rules:
- Identify potential bugs, style issues and refactoring opportunities.
- Provide concise suggestions in bullet points, prefixed with "- ".
- Be direct and avoid extraneous conversational text.
- If no issues are found, explicitly state "No issues found."
{LANGUAGE_RULES}
Diff:
{DIFF}
`

// DefaultCommitSummaryTemplate is used when summarizing a past commit.
const DefaultCommitSummaryTemplate = `Summarize the following git commit in markdown format.
Use "###" to denote section titles. Include:

### General Summary
- Main purpose or key changes

### Detailed Changes
- Any noteworthy details (e.g., new features, bug fixes, refactors)
{LANGUAGE_RULES}
Commit Information:
Author: {AUTHOR}
Date: {DATE}
Commit Message:
{COMMIT_MSG}

Diff:
{DIFF}
`

// languageRules renders the advisory language hints. Both flags may be set;
// each simply contributes its own rule.
func languageRules(onlyChinese, onlyEnglish bool) string {
	var rules []string
	if onlyChinese {
		rules = append(rules, "- The response MUST be written in Chinese only.")
	}
	if onlyEnglish {
		rules = append(rules, "- The response MUST be written in English only.")
	}
	if len(rules) == 0 {
		rules = append(rules, "- Translate Chinese text to English; keep text already in English unchanged.")
	}
	return strings.Join(rules, "\n") + "\n"
}

// BuildTranslatePrompt builds the prompt for commit-message translation.
func BuildTranslatePrompt(text string, onlyChinese, onlyEnglish bool) string {
	p := strings.ReplaceAll(DefaultTranslateTemplate, "{LANGUAGE_RULES}", languageRules(onlyChinese, onlyEnglish))
	return strings.ReplaceAll(p, "{TEXT}", text)
}

// BuildReviewPrompt builds the prompt for diff review.
func BuildReviewPrompt(diff string, onlyChinese, onlyEnglish bool) string {
	p := strings.ReplaceAll(DefaultReviewTemplate, "{LANGUAGE_RULES}", languageRules(onlyChinese, onlyEnglish))
	return strings.ReplaceAll(p, "{DIFF}", diff)
}

// BuildCommitSummaryPrompt builds the prompt used to summarize a past commit.
func BuildCommitSummaryPrompt(author, date, message, diff string, onlyChinese, onlyEnglish bool) string {
	p := strings.ReplaceAll(DefaultCommitSummaryTemplate, "{LANGUAGE_RULES}", languageRules(onlyChinese, onlyEnglish))
	p = strings.ReplaceAll(p, "{AUTHOR}", author)
	p = strings.ReplaceAll(p, "{DATE}", date)
	p = strings.ReplaceAll(p, "{COMMIT_MSG}", message)
	return strings.ReplaceAll(p, "{DIFF}", diff)
}
