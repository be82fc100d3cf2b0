package matching

import (
	"testing"

	"skill-roadmap/internal/domain/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *role.Catalog {
	return role.NewCatalog([]role.JobRole{
		{Title: "Data Scientist", RequiredSkills: []string{"python", "sql", "statistics"}},
		{Title: "Software Engineer", RequiredSkills: []string{"git", "go"}},
		{Title: "Senior Software Engineer", RequiredSkills: []string{"go", "kubernetes"}},
		{Title: "Data Analyst", RequiredSkills: []string{"excel", "sql"}},
	})
}

func TestRoleMatcher_ExactAndFuzzy(t *testing.T) {
	m := NewRoleMatcher(testCatalog(), nil, 0)

	res, ok := m.Match("data scientist")
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", res.Role.Title)
	assert.InDelta(t, 1.0, res.Score, 1e-12)

	res, ok = m.Match("data scientst")
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", res.Role.Title)

	res, ok = m.Match("sr software engineer")
	require.True(t, ok)
	assert.Equal(t, "Software Engineer", res.Role.Title)

	res, ok = m.Match("data anal")
	require.True(t, ok)
	assert.Equal(t, "Data Analyst", res.Role.Title)
}

func TestRoleMatcher_CaseInsensitive(t *testing.T) {
	m := NewRoleMatcher(testCatalog(), nil, DefaultThreshold)

	upper, ok1 := m.Match("Software Engineer")
	lower, ok2 := m.Match("software engineer")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, lower, upper)
}

func TestRoleMatcher_NoMatchBelowThreshold(t *testing.T) {
	m := NewRoleMatcher(testCatalog(), nil, DefaultThreshold)

	_, ok := m.Match("underwater basket weaving")
	assert.False(t, ok)
}

func TestRoleMatcher_ThresholdIsInclusive(t *testing.T) {
	half := SimilarityFunc(func(a, b string) float64 { return 0.5 })
	m := NewRoleMatcher(testCatalog(), half, 0.5)

	res, ok := m.Match("anything")
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", res.Role.Title, "first maximum wins on ties")
}

func TestRoleMatcher_TieKeepsFirstInCatalogOrder(t *testing.T) {
	c := role.NewCatalog([]role.JobRole{
		{Title: "QA Engineer", RequiredSkills: []string{"selenium"}},
		{Title: "qa engineer", RequiredSkills: []string{"cypress"}},
	})
	m := NewRoleMatcher(c, nil, 0)

	res, ok := m.Match("QA ENGINEER")
	require.True(t, ok)
	assert.Equal(t, "QA Engineer", res.Role.Title)
}

func TestRoleMatcher_PluggableSimilarity(t *testing.T) {
	var calls []string
	sim := SimilarityFunc(func(a, b string) float64 {
		calls = append(calls, a+"|"+b)
		if a == "data analyst" {
			return 0.9
		}
		return 0.1
	})
	m := NewRoleMatcher(testCatalog(), sim, 0.5)

	res, ok := m.Match("Whatever")
	require.True(t, ok)
	assert.Equal(t, "Data Analyst", res.Role.Title)
	assert.Contains(t, calls, "data scientist|whatever")
	assert.Len(t, calls, 4)
}

func TestRoleMatcher_EmptyCatalog(t *testing.T) {
	m := NewRoleMatcher(role.NewCatalog(nil), nil, 0)
	_, ok := m.Match("data scientist")
	assert.False(t, ok)
}
