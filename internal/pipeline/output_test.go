package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeLabel(t *testing.T) {
	assert.Equal(t, "Acme-Backend-Engineer", SafeLabel("Acme Backend / Engineer!"))
	assert.Equal(t, "", SafeLabel("  ///  "))
	assert.Equal(t, "already_safe-1", SafeLabel("already_safe-1"))
}

func TestArtifactName(t *testing.T) {
	ts := time.Date(2025, 1, 15, 9, 30, 42, 0, time.UTC)
	assert.Equal(t, "Resume_Acme_20250115_093042.pdf", ArtifactName("Resume", "Acme", ts, "pdf"))
	assert.Equal(t, "CoverLetter_20250115_093042.html", ArtifactName("CoverLetter", "", ts, "html"))
}
