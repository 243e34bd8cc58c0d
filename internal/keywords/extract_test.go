package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMatchedSkillsFirst(t *testing.T) {
	job := "We need Kubernetes operators. Kubernetes and kubernetes everywhere. Grafana helps."
	skills := []string{"Go", "Kubernetes", "Grafana"}

	got := Extract(job, skills)

	require.NotEmpty(t, got)
	// Matched skills lead in resume order, then frequency tokens.
	assert.Equal(t, "Kubernetes", got[0])
	assert.Equal(t, "Grafana", got[1])
}

func TestExtractDeduplicatesCaseInsensitively(t *testing.T) {
	job := "python python python"
	got := Extract(job, []string{"Python"})
	assert.Equal(t, []string{"Python"}, got)
}

func TestExtractEmptyJob(t *testing.T) {
	assert.Nil(t, Extract("", []string{"Go"}))
}

func TestTopTokensFrequencyThenFirstSeen(t *testing.T) {
	text := "redis postgres redis kafka postgres kafka nats"
	got := TopTokens(text, 4)
	// All of redis/postgres/kafka occur twice; redis was seen first.
	assert.Equal(t, []string{"redis", "postgres", "kafka", "nats"}, got)
}

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	got := Tokenize("the role is go and grpc for our team")
	assert.Equal(t, []string{"grpc"}, got)
}

func TestRelevanceScore(t *testing.T) {
	score := RelevanceScore("Built Go services on Kubernetes", []string{"go", "kubernetes", "terraform"})
	assert.Equal(t, 2, score)
	assert.Equal(t, 0, RelevanceScore("anything", nil))
}
