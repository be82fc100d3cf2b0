package main

import (
	"context"
	"fmt"
	"strings"

	"skill-roadmap/internal/config"
	"skill-roadmap/internal/database"
	dbpostgres "skill-roadmap/internal/database/postgres"
	dbsqlite "skill-roadmap/internal/database/sqlite"
	"skill-roadmap/internal/dataset"

	"github.com/spf13/cobra"
)

type importOptions struct {
	driver     string
	sqlitePath string

	skills   []string
	postings []string
	summary  []string

	skillsTable   string
	postingsTable string
	summaryTable  string
}

func newImportCmd() *cobra.Command {
	var opts importOptions
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Stage CSV tables into sqlite or postgres for the SQL data sources",
		Long:  "Reads the skills, postings and optional summary CSVs and replaces the matching tables in the target database. Postgres connection settings come from the DB_* environment variables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.driver, "driver", config.DataSourceSQLite, "Target database: sqlite or postgres")
	f.StringVar(&opts.sqlitePath, "sqlite-path", "", "sqlite database file (required for sqlite)")
	f.StringSliceVar(&opts.skills, "skills", nil, "Skills CSV locations")
	f.StringSliceVar(&opts.postings, "postings", nil, "Postings CSV locations")
	f.StringSliceVar(&opts.summary, "summary", nil, "Summary CSV locations")
	f.StringVar(&opts.skillsTable, "skills-table", "job_skills", "Target table for skills")
	f.StringVar(&opts.postingsTable, "postings-table", "linkedin_job_postings", "Target table for postings")
	f.StringVar(&opts.summaryTable, "summary-table", "job_summary", "Target table for summaries")
	_ = cmd.MarkFlagRequired("skills")
	_ = cmd.MarkFlagRequired("postings")

	return cmd
}

func runImport(cmd *cobra.Command, opts importOptions) error {
	ctx := cmd.Context()

	db, err := openTarget(ctx, opts)
	if err != nil {
		return err
	}
	defer db.Close()

	jobs := []struct {
		table     string
		locations []string
	}{
		{opts.skillsTable, opts.skills},
		{opts.postingsTable, opts.postings},
		{opts.summaryTable, opts.summary},
	}

	src := dataset.NewCSVSource(dataset.NewHTTPFetcher(0))
	for _, j := range jobs {
		if len(j.locations) == 0 {
			continue
		}
		t, err := src.ReadTable(ctx, dataset.TableSpec{Name: j.table, Locations: j.locations})
		if err != nil {
			return err
		}
		if err := dataset.ExportTable(ctx, db, t); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported table=%s rows=%d columns=%d\n", t.Name, len(t.Rows), len(t.Header))
	}
	return nil
}

func openTarget(ctx context.Context, opts importOptions) (database.DB, error) {
	switch strings.ToLower(opts.driver) {
	case config.DataSourceSQLite:
		if strings.TrimSpace(opts.sqlitePath) == "" {
			return nil, fmt.Errorf("--sqlite-path is required for the sqlite driver")
		}
		return dbsqlite.Open(ctx, opts.sqlitePath)
	case config.DataSourcePostgres:
		cfg, err := config.LoadDatabase()
		if err != nil {
			return nil, err
		}
		return dbpostgres.Connect(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown driver %q (want sqlite or postgres)", opts.driver)
	}
}
