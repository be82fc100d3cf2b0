package dataset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"skill-roadmap/internal/domain/role"

	"golang.org/x/sync/errgroup"
)

var ErrLoad = errors.New("dataset load failed")

// Specs names the three input tables. Summary is optional; a zero spec skips it.
type Specs struct {
	Skills   TableSpec
	Postings TableSpec
	Summary  TableSpec
}

type Loader struct {
	source Source
	specs  Specs
	logger *log.Logger
}

func NewLoader(source Source, specs Specs, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{source: source, specs: specs, logger: logger}
}

// Load reads every table, validates the required columns and builds the
// catalog. Any error aborts the whole load; no partial catalog is returned.
func (l *Loader) Load(ctx context.Context) (*role.Catalog, error) {
	start := time.Now()

	var skillsT, postingsT, summaryT Table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := l.source.ReadTable(gctx, l.specs.Skills)
		skillsT = t
		return err
	})
	g.Go(func() error {
		t, err := l.source.ReadTable(gctx, l.specs.Postings)
		postingsT = t
		return err
	})
	if !l.specs.Summary.IsZero() {
		g.Go(func() error {
			t, err := l.source.ReadTable(gctx, l.specs.Summary)
			summaryT = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	skills, err := SkillRecords(skillsT)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	titles, err := TitleRecords(postingsT)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	var summaries []PostingSummaryRecord
	if !l.specs.Summary.IsZero() {
		summaries, err = SummaryRecords(summaryT)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
	}

	byPosting := AggregateByPosting(skills)
	roles, stats := Merge(titles, byPosting, summaries)
	catalog := role.NewCatalog(roles)

	l.logger.Printf(
		"[Dataset] loaded skill_rows=%d postings_with_skills=%d title_rows=%d summary_rows=%d joined=%d dropped_empty=%d dropped_duplicate=%d roles=%d fingerprint=%s took=%s",
		len(skills), len(byPosting), stats.TitleRows, len(summaries), stats.Joined, stats.DroppedEmpty, stats.DroppedDuplicate, stats.Roles, catalog.Fingerprint(), time.Since(start),
	)
	if catalog.Len() == 0 {
		l.logger.Printf("[Dataset] catalog is empty, every recommendation will report the role as not found")
	}

	return catalog, nil
}
