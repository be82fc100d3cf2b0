package dataset

import (
	"strings"

	"skill-roadmap/internal/domain/role"
)

type MergeStats struct {
	TitleRows        int
	Joined           int
	DroppedEmpty     int
	DroppedDuplicate int
	Roles            int
}

// Merge inner-joins titles with aggregated skills and left-joins summaries on
// the posting id, keeping title order. Rows with a blank title or no skills are
// dropped, then titles are deduplicated with the first occurrence kept.
func Merge(titles []PostingTitleRecord, skillsByPosting map[string][]string, summaries []PostingSummaryRecord) ([]role.JobRole, MergeStats) {
	stats := MergeStats{TitleRows: len(titles)}

	summaryByPosting := make(map[string]string, len(summaries))
	for _, s := range summaries {
		if _, ok := summaryByPosting[s.PostingID]; ok {
			continue
		}
		summaryByPosting[s.PostingID] = s.Summary
	}

	roles := make([]role.JobRole, 0, len(titles))
	seenTitles := make(map[string]struct{}, len(titles))
	for _, t := range titles {
		skills, ok := skillsByPosting[t.PostingID]
		if !ok {
			continue
		}
		stats.Joined++

		if strings.TrimSpace(t.Title) == "" || len(skills) == 0 {
			stats.DroppedEmpty++
			continue
		}
		if _, dup := seenTitles[t.Title]; dup {
			stats.DroppedDuplicate++
			continue
		}
		seenTitles[t.Title] = struct{}{}

		jr := role.JobRole{Title: t.Title, RequiredSkills: skills}
		if s, ok := summaryByPosting[t.PostingID]; ok && s != "" {
			summary := s
			jr.Summary = &summary
		}
		roles = append(roles, jr)
	}

	stats.Roles = len(roles)
	return roles, stats
}
