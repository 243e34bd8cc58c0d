package pipeline

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const stampLayout = "20060102_150405"

var unsafeLabelChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// SafeLabel reduces a free-form label to filename-safe characters.
func SafeLabel(label string) string {
	label = unsafeLabelChars.ReplaceAllString(strings.TrimSpace(label), "-")
	return strings.Trim(label, "-")
}

// ArtifactName builds a timestamped output filename like
// Resume_Acme-Backend_20250115_093042.pdf.
func ArtifactName(prefix, label string, t time.Time, ext string) string {
	safe := SafeLabel(label)
	if safe == "" {
		return fmt.Sprintf("%s_%s.%s", prefix, t.Format(stampLayout), ext)
	}
	return fmt.Sprintf("%s_%s_%s.%s", prefix, safe, t.Format(stampLayout), ext)
}
