package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"skill-roadmap/internal/domain/matching"
)

const (
	StatusNotFound         = "Desired role not found. Try again with a different title."
	statusSkillsNeededTmpl = "Skills needed for %s"
)

func StatusSkillsNeeded(title string) string {
	return fmt.Sprintf(statusSkillsNeededTmpl, title)
}

// RecommendationInput mirrors the request body. Interests and
// CurrentPosition are accepted but do not influence the result.
type RecommendationInput struct {
	Skills          []string
	Interests       []string
	CurrentPosition string
	DesiredRole     string
}

type RoadmapStep struct {
	Step        int    `json:"step"`
	Description string `json:"description"`
}

type Recommendation struct {
	Status        string        `json:"status"`
	Matched       bool          `json:"matched"`
	Title         string        `json:"title,omitempty"`
	Score         float64       `json:"score,omitempty"`
	JobSummary    string        `json:"job_summary,omitempty"`
	MissingSkills []string      `json:"missing_skills"`
	Roadmap       []RoadmapStep `json:"roadmap"`
}

type RoleMatcher interface {
	Match(desiredRole string) (matching.MatchResult, bool)
	Threshold() float64
}

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecommendationUsecase struct {
	matcher     RoleMatcher
	fingerprint string
	cache       RecommendationCache
	cacheTTL    time.Duration
	logger      *log.Logger
}

// NewRecommendationUsecase builds the use case over one catalog. fingerprint
// identifies that catalog in cache keys; cache may be nil.
func NewRecommendationUsecase(matcher RoleMatcher, fingerprint string, cache RecommendationCache, cacheTTL time.Duration, logger *log.Logger) *RecommendationUsecase {
	if logger == nil {
		logger = log.Default()
	}
	return &RecommendationUsecase{
		matcher:     matcher,
		fingerprint: fingerprint,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Recommend resolves the desired role and lists the skills the user lacks for
// it. An unknown role is a normal outcome with Matched set to false.
func (u *RecommendationUsecase) Recommend(ctx context.Context, in RecommendationInput) (Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return Recommendation{}, err
	}

	key := ""
	if u.cache != nil {
		key = RecommendationCacheKey(u.fingerprint, u.matcher.Threshold(), in)
		var cached Recommendation
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Printf("[Cache] recommend get error key=%s err=%v", key, err)
		} else if hit {
			return normalizeRecommendation(cached), nil
		}
	}

	rec := u.compute(in)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, rec, u.cacheTTL); err != nil {
			u.logger.Printf("[Cache] recommend set error key=%s err=%v", key, err)
		}
	}
	return rec, nil
}

func (u *RecommendationUsecase) compute(in RecommendationInput) Recommendation {
	m, ok := u.matcher.Match(in.DesiredRole)
	if !ok {
		return Recommendation{
			Status:        StatusNotFound,
			MissingSkills: []string{},
			Roadmap:       []RoadmapStep{},
		}
	}

	missing := matching.MissingSkills(m.Role.RequiredSkills, in.Skills)
	steps := matching.BuildRoadmap(missing)
	roadmap := make([]RoadmapStep, 0, len(steps))
	for _, s := range steps {
		roadmap = append(roadmap, RoadmapStep{Step: s.Step, Description: s.Description})
	}

	return Recommendation{
		Status:        StatusSkillsNeeded(m.Role.Title),
		Matched:       true,
		Title:         m.Role.Title,
		Score:         m.Score,
		JobSummary:    m.Role.SummaryText(),
		MissingSkills: missing,
		Roadmap:       roadmap,
	}
}

func normalizeRecommendation(r Recommendation) Recommendation {
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	if r.Roadmap == nil {
		r.Roadmap = []RoadmapStep{}
	}
	return r
}
