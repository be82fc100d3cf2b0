package dataset

import (
	"sort"
	"strings"
)

// AggregateSkills joins every skill text of one posting with commas, splits
// the result on commas and returns the trimmed, lowercased, non-empty tokens
// as a sorted set. Postings without any token yield nil.
func AggregateSkills(texts []string) []string {
	seen := make(map[string]struct{})
	for _, piece := range strings.Split(strings.Join(texts, ","), ",") {
		s := strings.TrimSpace(piece)
		if s == "" {
			continue
		}
		seen[strings.ToLower(s)] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// AggregateByPosting groups skill records by posting id and aggregates each
// group with AggregateSkills.
func AggregateByPosting(records []RawSkillRecord) map[string][]string {
	grouped := make(map[string][]string)
	for _, r := range records {
		grouped[r.PostingID] = append(grouped[r.PostingID], r.SkillText)
	}

	out := make(map[string][]string, len(grouped))
	for id, texts := range grouped {
		out[id] = AggregateSkills(texts)
	}
	return out
}
