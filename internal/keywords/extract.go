// Package keywords derives relevant terms from a job description and scores
// resume content against them.
package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mobee/resume-tailor/internal/parsing"
)

// topTokenCount is how many frequency-derived tokens follow the matched skills.
const topTokenCount = 8

// wordToken matches word-like tokens: a letter followed by alphanumerics or
// '+', '#', '-' (covers C++, C#, CI-CD and similar skill spellings).
var wordToken = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+#-]+`)

var stopwords = map[string]bool{
	"the": true, "and": true, "a": true, "an": true, "to": true, "of": true,
	"in": true, "for": true, "with": true, "on": true, "at": true, "by": true,
	"from": true, "as": true, "is": true, "are": true, "be": true, "this": true,
	"that": true, "it": true, "or": true, "we": true, "you": true, "your": true,
	"our": true, "their": true, "they": true, "i": true, "me": true, "my": true,
	"us": true, "will": true, "can": true, "may": true, "must": true,
	"should": true, "could": true, "would": true, "role": true, "position": true,
	"team": true, "work": true, "working": true, "experience": true,
	"skills": true, "ability": true, "strong": true,
}

// Extract builds the keyword set for a job description: known skills found
// verbatim in the job text (in skills-list order), followed by the
// highest-frequency job-text tokens. Deduplicated case-insensitively.
// Frequency ties break on first occurrence index so output is reproducible.
func Extract(jobText string, skills []string) []string {
	if jobText == "" {
		return nil
	}
	jobLower := strings.ToLower(parsing.Normalize(jobText))

	var keywords []string
	seen := make(map[string]bool)
	add := func(k string) {
		key := strings.ToLower(k)
		if !seen[key] {
			seen[key] = true
			keywords = append(keywords, k)
		}
	}

	for _, s := range skills {
		if strings.Contains(jobLower, strings.ToLower(s)) {
			add(s)
		}
	}
	for _, w := range TopTokens(jobLower, topTokenCount) {
		add(w)
	}
	return keywords
}

// TopTokens returns the n highest-frequency significant tokens in text,
// ties broken by first occurrence.
func TopTokens(text string, n int) []string {
	tokens := Tokenize(text)
	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for i, w := range tokens {
		if freq[w] == 0 {
			firstSeen[w] = i
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if freq[order[a]] != freq[order[b]] {
			return freq[order[a]] > freq[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

// Tokenize extracts significant word-like tokens from lowercased text,
// dropping stopwords and tokens shorter than 3 characters.
func Tokenize(text string) []string {
	var out []string
	for _, w := range wordToken.FindAllString(text, -1) {
		if len(w) < 3 || stopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// RelevanceScore counts how many keywords occur, case-insensitively, as
// substrings of text. Used as a descending sort key for entries and as a
// partition key for skills.
func RelevanceScore(text string, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}
	t := strings.ToLower(text)
	score := 0
	for _, k := range keywords {
		if strings.Contains(t, strings.ToLower(k)) {
			score++
		}
	}
	return score
}
