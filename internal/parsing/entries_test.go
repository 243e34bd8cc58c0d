package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEntries(t *testing.T) {
	blocks := SplitEntries([]string{"a", "b", "", "", "c", ""})
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, blocks)
}

func TestParseEducation(t *testing.T) {
	entries := ParseEducation([]string{
		"BSc Computer Science",
		"Some University",
		"09/2015 - 06/2019",
		"Courses: Algorithms, Databases",
		"- Graduated with honors",
	})

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "BSc Computer Science", e.Title)
	assert.Equal(t, "Some University", e.Subtitle)
	assert.Equal(t, "09/2015 - 06/2019", e.Date)
	assert.Equal(t, []string{"Graduated with honors"}, e.Bullets)
}

func TestParseEducationShortBlocks(t *testing.T) {
	entries := ParseEducation([]string{
		"BSc Computer Science",
		"",
		"MSc Data Engineering",
		"Other University",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "BSc Computer Science", entries[0].Title)
	assert.Empty(t, entries[0].Subtitle)
	assert.Empty(t, entries[0].Date)
	assert.Empty(t, entries[0].Bullets)
	assert.Equal(t, "MSc Data Engineering", entries[1].Title)
	assert.Equal(t, "Other University", entries[1].Subtitle)
	assert.Empty(t, entries[1].Date)
}

func TestParseExperience(t *testing.T) {
	entries := ParseExperience([]string{
		"Inventory Service",
		"03/2021 - Present",
		"- Built REST APIs in Go",
		"- Cut query latency by 40%",
		"",
		"Side Project",
		"- Static site generator",
	})

	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, "Inventory Service", first.Title)
	assert.Equal(t, "03/2021 - Present", first.Date)
	assert.Equal(t, []string{"Built REST APIs in Go", "Cut query latency by 40%"}, first.Bullets)
	assert.Contains(t, first.Raw, "Cut query latency")

	second := entries[1]
	assert.Equal(t, "Side Project", second.Title)
	assert.Empty(t, second.Date)
	assert.Equal(t, []string{"Static site generator"}, second.Bullets)
}

func TestParseSkills(t *testing.T) {
	skills := ParseSkills([]string{
		"Go | Python, SQL",
		"- Docker, go",
	})
	assert.Equal(t, []string{"Go", "Python", "SQL", "Docker"}, skills)
}

func TestParseList(t *testing.T) {
	items := ParseList([]string{"- AWS Certified", "Hiking"})
	assert.Equal(t, []string{"AWS Certified", "Hiking"}, items)
}

func TestClassifyWork(t *testing.T) {
	entries := ParseExperience([]string{
		"Web Developer at Acme",
		"- stuff",
		"",
		"Inventory Service",
		"- stuff",
		"",
		"Independent Contractor",
		"- stuff",
	})

	experience, projects := ClassifyWork(entries)
	require.Len(t, experience, 2)
	require.Len(t, projects, 1)
	assert.Equal(t, "Web Developer at Acme", experience[0].Title)
	assert.Equal(t, "Independent Contractor", experience[1].Title)
	assert.Equal(t, "Inventory Service", projects[0].Title)
}
