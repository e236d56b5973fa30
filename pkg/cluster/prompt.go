package cluster

import (
	"fmt"
	"strings"
)

const PromptTemplate = `You are clustering short student answers.
Return JSON only with {"clusters": [{ "title": string, "indices": number[] }]}.
Use 2–5 concise clusters, non-overlapping indices, no prose outside JSON.
Responses array is zero-indexed; indices must be a JSON array of integers.`

// BuildPrompt renders the exact text sent to the model. The output depends only
// on the template and the answers, so equal inputs give byte-identical prompts.
func BuildPrompt(answers []string) string {
	prompt := PromptTemplate + "\n\nRESPONSES:\n" + FormatAnswers(answers)
	return strings.TrimSpace(prompt)
}

// FormatAnswers numbers each answer by its zero-based position, one per line.
func FormatAnswers(answers []string) string {
	var sb strings.Builder
	for i, a := range answers {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %s", i, a))
	}
	return sb.String()
}
