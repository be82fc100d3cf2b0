package matching

import "strings"

func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MissingSkills returns the required skills absent from userSkills, in the
// order of required. User skills are compared after NormalizeSkill.
func MissingSkills(required []string, userSkills []string) []string {
	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[NormalizeSkill(s)] = struct{}{}
	}

	missing := make([]string, 0, len(required))
	for _, r := range required {
		if _, ok := have[r]; ok {
			continue
		}
		missing = append(missing, r)
	}
	return missing
}
