package role

// JobRole is one deduplicated title with the skills its postings ask for.
// RequiredSkills is sorted, unique, trimmed and lowercase.
type JobRole struct {
	Title          string
	RequiredSkills []string
	Summary        *string
}

func (r JobRole) SummaryText() string {
	if r.Summary == nil {
		return ""
	}
	return *r.Summary
}

func (r JobRole) clone() JobRole {
	out := JobRole{Title: r.Title}
	if len(r.RequiredSkills) > 0 {
		out.RequiredSkills = append([]string(nil), r.RequiredSkills...)
	}
	if r.Summary != nil {
		s := *r.Summary
		out.Summary = &s
	}
	return out
}
