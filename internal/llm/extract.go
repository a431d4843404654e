package llm

import (
	"encoding/json"
	"strings"
)

// ExtractTitles pulls a JSON array of strings out of model output.
// The model is instructed to answer with a bare array, but it may
// still wrap it in explanatory prose, so this searches for the first
// '['..last ']' span instead of requiring a strict-prefix parse.
// Returns nil when no array-shaped substring parses.
func ExtractTitles(content string, count int) []string {
	arr := extractArray(content)
	if arr == "" {
		return nil
	}

	var titles []string
	if err := json.Unmarshal([]byte(arr), &titles); err != nil {
		return nil
	}

	if count > 0 && len(titles) > count {
		titles = titles[:count]
	}

	return titles
}

func extractArray(content string) string {
	start := strings.Index(content, "[")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content, "]")
	if end == -1 || end < start {
		return ""
	}

	return content[start : end+1]
}
