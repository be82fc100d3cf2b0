package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_JoinsFiltersAndDedupes(t *testing.T) {
	titles := []PostingTitleRecord{
		{PostingID: "p1", Title: "Data Scientist"},
		{PostingID: "p2", Title: "Backend Engineer"},
		{PostingID: "p3", Title: "Data Scientist"},
		{PostingID: "p4", Title: "No Skills Posted"},
		{PostingID: "p5", Title: "  "},
		{PostingID: "p6", Title: "Never Joined"},
	}
	skills := map[string][]string{
		"p1": {"python", "sql"},
		"p2": {"go"},
		"p3": {"excel"},
		"p4": nil,
		"p5": {"go"},
	}
	summaries := []PostingSummaryRecord{
		{PostingID: "p1", Summary: "analyse data"},
		{PostingID: "p1", Summary: "second summary"},
		{PostingID: "p2", Summary: ""},
	}

	roles, stats := Merge(titles, skills, summaries)

	require.Len(t, roles, 2)
	assert.Equal(t, "Data Scientist", roles[0].Title)
	assert.Equal(t, []string{"python", "sql"}, roles[0].RequiredSkills, "first posting wins on duplicate titles")
	require.NotNil(t, roles[0].Summary)
	assert.Equal(t, "analyse data", *roles[0].Summary)

	assert.Equal(t, "Backend Engineer", roles[1].Title)
	assert.Nil(t, roles[1].Summary, "empty summary becomes null")

	assert.Equal(t, MergeStats{TitleRows: 6, Joined: 5, DroppedEmpty: 2, DroppedDuplicate: 1, Roles: 2}, stats)
}

func TestMerge_DuplicateDetectionAfterEmptyFilter(t *testing.T) {
	titles := []PostingTitleRecord{
		{PostingID: "p1", Title: "QA"},
		{PostingID: "p2", Title: "QA"},
	}
	skills := map[string][]string{"p1": nil, "p2": {"selenium"}}

	roles, _ := Merge(titles, skills, nil)
	require.Len(t, roles, 1)
	assert.Equal(t, []string{"selenium"}, roles[0].RequiredSkills)
}

func TestMerge_TitlesAreCaseSensitiveKeys(t *testing.T) {
	titles := []PostingTitleRecord{
		{PostingID: "p1", Title: "QA Engineer"},
		{PostingID: "p2", Title: "qa engineer"},
	}
	skills := map[string][]string{"p1": {"a"}, "p2": {"b"}}

	roles, _ := Merge(titles, skills, nil)
	assert.Len(t, roles, 2)
}
