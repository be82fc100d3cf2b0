package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"skill-roadmap/internal/domain/matching"
)

type recommendationCacheKeyInput struct {
	DesiredRole string   `json:"desired_role"`
	Skills      []string `json:"skills"`
	Threshold   string   `json:"threshold"`
}

// RecommendationCacheKey hashes only what the result depends on. The role is
// lowercased but not trimmed because the matcher scores whitespace too.
func RecommendationCacheKey(fingerprint string, threshold float64, in RecommendationInput) string {
	seen := make(map[string]struct{}, len(in.Skills))
	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = matching.NormalizeSkill(s)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}
	sort.Strings(skills)

	key := recommendationCacheKeyInput{
		DesiredRole: strings.ToLower(in.DesiredRole),
		Skills:      skills,
		Threshold:   strconv.FormatFloat(threshold, 'g', -1, 64),
	}

	b, _ := json.Marshal(key)
	sum := sha256.Sum256(b)
	return "recommend:" + fingerprint + ":" + hex.EncodeToString(sum[:])
}
