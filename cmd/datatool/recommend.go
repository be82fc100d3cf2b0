package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"skill-roadmap/internal/dataset"
	"skill-roadmap/internal/domain/matching"
	"skill-roadmap/internal/usecase"

	"github.com/spf13/cobra"
)

type recommendOptions struct {
	skillsCSV   []string
	postingsCSV []string
	summaryCSV  []string

	role      string
	skills    []string
	threshold float64
	verbose   bool
}

func newRecommendCmd() *cobra.Command {
	var opts recommendOptions
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Load CSV tables and print the recommendation for one role as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.skillsCSV, "skills-csv", nil, "Skills CSV locations")
	f.StringSliceVar(&opts.postingsCSV, "postings-csv", nil, "Postings CSV locations")
	f.StringSliceVar(&opts.summaryCSV, "summary-csv", nil, "Summary CSV locations")
	f.StringVar(&opts.role, "role", "", "Desired role")
	f.StringArrayVar(&opts.skills, "skill", nil, "A skill the user already has (repeatable)")
	f.Float64Var(&opts.threshold, "threshold", matching.DefaultThreshold, "Minimum similarity for a role match")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log dataset statistics to stderr")
	_ = cmd.MarkFlagRequired("skills-csv")
	_ = cmd.MarkFlagRequired("postings-csv")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

type recommendOutput struct {
	Status        string                `json:"status"`
	JobSummary    string                `json:"job_summary,omitempty"`
	MissingSkills []string              `json:"missing_skills"`
	Roadmap       []usecase.RoadmapStep `json:"roadmap"`
}

func runRecommend(cmd *cobra.Command, opts recommendOptions) error {
	if opts.threshold <= 0 || opts.threshold > 1 {
		return fmt.Errorf("--threshold must be in (0,1], got %v", opts.threshold)
	}

	logger := log.New(io.Discard, "", 0)
	if opts.verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	specs := dataset.Specs{
		Skills:   dataset.TableSpec{Name: "skills", Locations: opts.skillsCSV},
		Postings: dataset.TableSpec{Name: "postings", Locations: opts.postingsCSV},
	}
	if len(opts.summaryCSV) > 0 {
		specs.Summary = dataset.TableSpec{Name: "summary", Locations: opts.summaryCSV}
	}

	catalog, err := dataset.NewLoader(dataset.NewCSVSource(dataset.NewHTTPFetcher(0)), specs, logger).Load(cmd.Context())
	if err != nil {
		return err
	}

	m := matching.NewRoleMatcher(catalog, nil, opts.threshold)
	rec, err := usecase.NewRecommendationUsecase(m, catalog.Fingerprint(), nil, 0, logger).Recommend(cmd.Context(), usecase.RecommendationInput{
		Skills:      opts.skills,
		DesiredRole: opts.role,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(recommendOutput{
		Status:        rec.Status,
		JobSummary:    rec.JobSummary,
		MissingSkills: rec.MissingSkills,
		Roadmap:       rec.Roadmap,
	})
}
