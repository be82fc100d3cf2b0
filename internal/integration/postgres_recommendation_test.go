package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"skill-roadmap/internal/app"
	"skill-roadmap/internal/config"
	"skill-roadmap/internal/database"
	dbpostgres "skill-roadmap/internal/database/postgres"
	"skill-roadmap/internal/dataset"

	"github.com/google/uuid"
)

type recommendationBody struct {
	Status        string   `json:"status"`
	JobSummary    string   `json:"job_summary"`
	MissingSkills []string `json:"missing_skills"`
	Roadmap       []struct {
		Step        int    `json:"step"`
		Description string `json:"description"`
	} `json:"roadmap"`
}

func TestIntegration_Postgres_Import_Load_Recommend(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	dbcfg := testDBConfig(t)
	db := connectTestDB(t, ctx, dbcfg)
	defer func() { _ = db.Close() }()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	tables := seedTables(t, ctx, db, suffix)
	defer dropTables(t, db, tables)

	cfg := config.Config{
		App: config.AppConfig{AppName: "skill-roadmap-it", Environment: "test", HTTPPort: "0"},
		Data: config.DataConfig{
			Source:        config.DataSourcePostgres,
			SkillsTable:   tables[0],
			PostingsTable: tables[1],
			SummaryTable:  tables[2],
			LoadTimeout:   30 * time.Second,
		},
		Database: dbcfg,
		Match:    config.MatchConfig{Threshold: 0.5},
	}

	a, cleanup, err := app.Bootstrap(ctx, cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = cleanup() }()

	if got := a.Container.Catalog.Len(); got != 2 {
		t.Fatalf("catalog: expected 2 roles, got %d", got)
	}

	got := callRecommend(t, a, `{"skills":["Python"," sql "],"interests":[],"current_position":"analyst","desired_role":"data scientist"}`)
	if got.Status != "Skills needed for Data Scientist" {
		t.Fatalf("recommend: unexpected status %q", got.Status)
	}
	if got.JobSummary != "Turn data into decisions." {
		t.Fatalf("recommend: unexpected job_summary %q", got.JobSummary)
	}
	if len(got.MissingSkills) != 1 || got.MissingSkills[0] != "statistics" {
		t.Fatalf("recommend: expected missing_skills [statistics], got %v", got.MissingSkills)
	}
	if len(got.Roadmap) != 1 || got.Roadmap[0].Step != 1 {
		t.Fatalf("recommend: expected one roadmap step, got %+v", got.Roadmap)
	}

	notFound := callRecommend(t, a, `{"skills":[],"interests":[],"current_position":"","desired_role":"underwater basket weaving"}`)
	if !strings.HasPrefix(notFound.Status, "Desired role not found") {
		t.Fatalf("recommend: expected not found, got %q", notFound.Status)
	}
	if notFound.MissingSkills == nil || len(notFound.MissingSkills) != 0 {
		t.Fatalf("recommend: expected empty missing_skills, got %v", notFound.MissingSkills)
	}
}

func testDBConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()

	host := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("SKILLROADMAP_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set SKILLROADMAP_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	return config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}
}

func connectTestDB(t *testing.T, ctx context.Context, cfg config.DatabaseConfig) database.DB {
	t.Helper()

	db, err := dbpostgres.Connect(ctx, cfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

// seedTables stages the three tables through the same export path the import
// command uses and returns their names.
func seedTables(t *testing.T, ctx context.Context, db database.DB, suffix string) []string {
	t.Helper()

	seed := []dataset.Table{
		{
			Name:   "it_job_skills_" + suffix,
			Header: []string{"job_link", "job_skills"},
			Rows: [][]string{
				{"https://jobs/1", "Python, SQL"},
				{"https://jobs/1", "statistics"},
				{"https://jobs/2", "Go, Docker"},
				{"https://jobs/3", ""},
			},
		},
		{
			Name:   "it_job_postings_" + suffix,
			Header: []string{"job_link", "job_title", "company"},
			Rows: [][]string{
				{"https://jobs/1", "Data Scientist", "Acme"},
				{"https://jobs/2", "Backend Developer", "Acme"},
				{"https://jobs/3", "Data Scientist", "Other"},
			},
		},
		{
			Name:   "it_job_summary_" + suffix,
			Header: []string{"job_link", "job_summary"},
			Rows:   [][]string{{"https://jobs/1", "Turn data into decisions."}},
		},
	}

	names := make([]string, 0, len(seed))
	for _, tbl := range seed {
		if err := dataset.ExportTable(ctx, db, tbl); err != nil {
			t.Fatalf("export %s: %v", tbl.Name, err)
		}
		names = append(names, tbl.Name)
	}
	return names
}

func dropTables(t *testing.T, db database.DB, names []string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, n := range names {
		if _, err := db.Exec(ctx, `DROP TABLE IF EXISTS "`+n+`"`); err != nil {
			t.Logf("cleanup: drop %s: %v", n, err)
		}
	}
}

func callRecommend(t *testing.T, a *app.App, body string) recommendationBody {
	t.Helper()

	req := httptest.NewRequest("POST", "/recommend", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := a.Fiber.Test(req)
	if err != nil {
		t.Fatalf("recommend request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("recommend: expected 200, got %d: %s", resp.StatusCode, string(b))
	}

	var out recommendationBody
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("recommend: decode: %v", err)
	}
	return out
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(def)
}
