package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCatalog_PreservesOrderAndLowercasesTitles(t *testing.T) {
	c := NewCatalog([]JobRole{
		{Title: "Data Scientist", RequiredSkills: []string{"python", "sql"}},
		{Title: "Backend ENGINEER", RequiredSkills: []string{"go"}, Summary: strPtr("builds services")},
	})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Data Scientist", c.Role(0).Title)
	assert.Equal(t, "data scientist", c.LowerTitle(0))
	assert.Equal(t, "backend engineer", c.LowerTitle(1))
	assert.Equal(t, "builds services", c.Role(1).SummaryText())
	assert.Equal(t, "", c.Role(0).SummaryText())
}

func TestCatalog_IsNotMutatedThroughInputsOrCopies(t *testing.T) {
	skills := []string{"python", "sql"}
	roles := []JobRole{{Title: "Data Scientist", RequiredSkills: skills}}
	c := NewCatalog(roles)

	skills[0] = "changed"
	roles[0].Title = "changed"
	got := c.Role(0)
	got.RequiredSkills[1] = "changed"

	again := c.Role(0)
	assert.Equal(t, "Data Scientist", again.Title)
	assert.Equal(t, []string{"python", "sql"}, again.RequiredSkills)
}

func TestCatalog_Fingerprint(t *testing.T) {
	a := NewCatalog([]JobRole{{Title: "Data Scientist", RequiredSkills: []string{"python"}}})
	b := NewCatalog([]JobRole{{Title: "Data Scientist", RequiredSkills: []string{"python"}}})
	c := NewCatalog([]JobRole{{Title: "Data Scientist", RequiredSkills: []string{"python", "sql"}}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.Len(t, a.Fingerprint(), 16)
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Roles())
	assert.Equal(t, "", c.Fingerprint())
}
