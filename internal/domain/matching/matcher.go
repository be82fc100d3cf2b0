package matching

import (
	"strings"

	"skill-roadmap/internal/domain/role"
)

// DefaultThreshold is the lowest similarity accepted as a role match.
const DefaultThreshold = 0.5

type MatchResult struct {
	Role  role.JobRole
	Score float64
}

// RoleMatcher resolves a free-text desired role to the closest catalog title.
type RoleMatcher struct {
	catalog   *role.Catalog
	sim       Similarity
	threshold float64
}

func NewRoleMatcher(catalog *role.Catalog, sim Similarity, threshold float64) *RoleMatcher {
	if sim == nil {
		sim = SimilarityFunc(SequenceRatio)
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &RoleMatcher{catalog: catalog, sim: sim, threshold: threshold}
}

func (m *RoleMatcher) Threshold() float64 {
	return m.threshold
}

// Match scores every title against the lowercased query and returns the first
// highest-scoring role. ok is false when no score reaches the threshold.
func (m *RoleMatcher) Match(desiredRole string) (MatchResult, bool) {
	if m == nil || m.catalog.Len() == 0 {
		return MatchResult{}, false
	}

	query := strings.ToLower(desiredRole)

	best := -1
	bestScore := 0.0
	for i := 0; i < m.catalog.Len(); i++ {
		s := m.sim.Score(m.catalog.LowerTitle(i), query)
		if s < m.threshold {
			continue
		}
		if best < 0 || s > bestScore {
			best = i
			bestScore = s
		}
	}

	if best < 0 {
		return MatchResult{}, false
	}
	return MatchResult{Role: m.catalog.Role(best), Score: bestScore}, true
}
