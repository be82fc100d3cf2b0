package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCSVSource_ReadsLocalFileWithBOMAndQuotes(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "job_skills.csv", "\xEF\xBB\xBFjob_link,job_skills\n"+
		"https://x/1,\"Python, SQL\"\n"+
		"https://x/2,\n"+
		"https://x/3\n")

	tbl, err := NewCSVSource(nil).ReadTable(context.Background(), TableSpec{Name: "job_skills", Locations: []string{p}})
	require.NoError(t, err)

	assert.Equal(t, "job_skills", tbl.Name)
	assert.Equal(t, []string{"job_link", "job_skills"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"https://x/1", "Python, SQL"}, tbl.Rows[0])
	assert.Equal(t, []string{"https://x/2", ""}, tbl.Rows[1])
	assert.Equal(t, []string{"https://x/3", ""}, tbl.Rows[2], "short rows are padded")
}

func TestCSVSource_ConcatenatesGlobPartsInNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "skills_part10.csv", "job_link,job_skills\np10,a\n")
	writeFile(t, dir, "skills_part2.csv", "job_link,job_skills\np2,b\n")
	writeFile(t, dir, "skills_part1.csv", "job_link,job_skills\np1,c\n")

	tbl, err := NewCSVSource(nil).ReadTable(context.Background(), TableSpec{
		Locations: []string{filepath.Join(dir, "skills_part*.csv")},
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		ids = append(ids, r[0])
	}
	assert.Equal(t, []string{"p1", "p2", "p10"}, ids)
}

func TestCSVSource_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.csv", "job_link,job_skills\np1,x\n")
	b := writeFile(t, dir, "b.csv", "job_link,job_title\np1,x\n")
	empty := writeFile(t, dir, "empty.csv", "")
	src := NewCSVSource(nil)
	ctx := context.Background()

	_, err := src.ReadTable(ctx, TableSpec{Name: "skills"})
	assert.ErrorIs(t, err, ErrNoLocations)

	_, err = src.ReadTable(ctx, TableSpec{Locations: []string{a, b}})
	assert.ErrorIs(t, err, ErrHeaderMismatch)

	_, err = src.ReadTable(ctx, TableSpec{Locations: []string{empty}})
	assert.ErrorIs(t, err, ErrEmptyCSV)

	_, err = src.ReadTable(ctx, TableSpec{Locations: []string{filepath.Join(dir, "nothing*.csv")}})
	assert.ErrorIs(t, err, ErrNoMatches)

	_, err = src.ReadTable(ctx, TableSpec{Locations: []string{filepath.Join(dir, "missing.csv")}})
	assert.ErrorIs(t, err, os.ErrNotExist)

	var fe *FetchError
	_, err = src.ReadTable(ctx, TableSpec{Locations: []string{"https://example.invalid/a.csv"}})
	assert.ErrorAs(t, err, &fe)
}

func TestCSVSource_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.csv", "job_link,job_skills\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVSource(nil).ReadTable(ctx, TableSpec{Locations: []string{p}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVSource_RemoteParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/part1.csv":
			_, _ = w.Write([]byte("job_link,job_title\np1,Data Scientist\n"))
		case "/part2.csv":
			_, _ = w.Write([]byte("job_link,job_title\np2,Backend Engineer\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	src := NewCSVSource(NewHTTPFetcher(5 * time.Second))
	tbl, err := src.ReadTable(context.Background(), TableSpec{
		Name:      "postings",
		Locations: []string{srv.URL + "/part1.csv", srv.URL + "/part2.csv"},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"p1", "Data Scientist"}, {"p2", "Backend Engineer"}}, tbl.Rows)

	_, err = src.ReadTable(context.Background(), TableSpec{Locations: []string{srv.URL + "/missing.csv"}})
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Message, "404")
}

func TestCSVSource_ReadHeader(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "postings.csv", "job_link,job_title,company\np1,x,y\n")

	header, err := NewCSVSource(nil).ReadHeader(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"job_link", "job_title", "company"}, header)
}

func TestNaturalLess(t *testing.T) {
	in := []string{"p_part10.csv", "p_part2.csv", "p_part1.csv", "a.csv", "p_part02.csv"}
	sort.Slice(in, func(i, j int) bool { return naturalLess(in[i], in[j]) })
	assert.Equal(t, "a.csv", in[0])
	assert.Equal(t, "p_part1.csv", in[1])
	assert.Equal(t, "p_part10.csv", in[4])
}
