package faq

import (
	"regexp"
	"strings"
)

// fuzzyKeywords includes "on" and "the", so nearly every English sentence is
// treated as a command. Callers rely on this.
var fuzzyKeywords = []string{
	"show me", "list", "what is", "tell me about", "find", "display", "search for",
	"?", "on", "the", "fni", "frequently negotiated issue",
}

// fillerPattern is matched leftmost-first, so "list" wins over "list out".
var fillerPattern = regexp.MustCompile(`(?i)(show me|list|list out|what is|tell me about|find|tell me|display|search for|frequently negotiated issue|fni|on|\?)`)

// IsFuzzyCommand reports whether text looks like a natural-language request.
func IsFuzzyCommand(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range fuzzyKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// CleanQuery strips conversational filler in a single pass and trims the result.
func CleanQuery(input string) string {
	return strings.TrimSpace(fillerPattern.ReplaceAllString(input, ""))
}
