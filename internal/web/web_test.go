package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/hay-kot/practica/internal/core/practice"
	"github.com/hay-kot/practica/internal/store/csvfile"
	"github.com/hay-kot/practica/internal/store/jsonfile"
	"github.com/hay-kot/practica/internal/tracker"
)

var fixedNow = time.Date(2026, 5, 4, 18, 45, 0, 0, time.UTC)

type testEnv struct {
	handler  http.Handler
	log      *csvfile.EntryLog
	jsonPath string
}

func newTestEnv(t *testing.T, lister ChallengeLister) *testEnv {
	t.Helper()

	dir := t.TempDir()
	env := &testEnv{
		log:      csvfile.NewEntryLog(filepath.Join(dir, "practica.csv")),
		jsonPath: filepath.Join(dir, "challenges.json"),
	}

	if lister == nil {
		lister = tracker.NewService(
			jsonfile.NewChallengeStore(env.jsonPath),
			csvfile.NewChallengeStore(filepath.Join(dir, "challenges.csv")),
			zerolog.Nop(),
			tracker.Options{Now: func() time.Time { return fixedNow }},
		)
	}

	engine, err := NewEngine()
	require.NoError(t, err)

	cfg := Config{RateLimit: 1000, RequestTimeout: 5 * time.Second}
	h := NewHandler(env.log, lister, engine, "", func() time.Time { return fixedNow })
	env.handler = NewRouter(cfg, zerolog.Nop(), h)
	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return e.do(t, req)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req)
}

func flashFrom(t *testing.T, rec *httptest.ResponseRecorder) (*http.Cookie, *FlashMessage) {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name != flashCookie || c.MaxAge < 0 {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		return c, popFlash(httptest.NewRecorder(), req)
	}
	return nil, nil
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/healthz")

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "default-src 'self'", rec.Header().Get("Content-Security-Policy"))
}

func TestIndex_Empty(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No entries yet")
}

func TestIndex_NewestFirst(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, e := range []practice.Entry{
		{ID: "1", Date: "2026-05-01", Time: "08:00", Description: "oldest"},
		{ID: "2", Date: "2026-05-03", Time: "07:00", Description: "newest"},
		{ID: "3", Date: "2026-05-03", Time: "06:00", Description: "middle"},
	} {
		require.NoError(t, env.log.Append(e))
	}

	body := env.get(t, "/").Body.String()

	newest := strings.Index(body, "newest")
	middle := strings.Index(body, "middle")
	oldest := strings.Index(body, "oldest")
	require.True(t, newest >= 0 && middle >= 0 && oldest >= 0)
	assert.Less(t, newest, middle)
	assert.Less(t, middle, oldest)
}

func TestAdd_Form(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/add")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="description"`)
}

func TestAdd_Success(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.postForm(t, "/add", url.Values{
		"description": {"  scales  "},
		"tags":        {"piano"},
		"duration":    {"25"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie, flash := flashFrom(t, rec)
	require.NotNil(t, flash)
	assert.Equal(t, "Entry added", flash.Message)
	assert.Equal(t, "success", flash.Kind)

	entries, err := env.log.Read()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "scales", entries[0].Description)
	assert.Equal(t, "2026-05-04", entries[0].Date)
	assert.Equal(t, "18:45", entries[0].Time)
	assert.Equal(t, 25, entries[0].DurationMinutes)

	page := env.get(t, "/", cookie).Body.String()
	assert.Contains(t, page, "Entry added")
	assert.Contains(t, page, "scales")
}

func TestAdd_Invalid(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "missing description",
			form: url.Values{"description": {"   "}},
			want: "Description is required",
		},
		{
			name: "negative duration",
			form: url.Values{"description": {"x"}, "duration": {"-5"}},
			want: "Duration must be zero or more minutes",
		},
		{
			name: "non numeric duration",
			form: url.Values{"description": {"x"}, "duration": {"ten"}},
			want: "Duration must be a whole number",
		},
		{
			name: "bad date",
			form: url.Values{"description": {"x"}, "date": {"04/05/2026"}},
			want: "Date must be YYYY-MM-DD",
		},
		{
			name: "bad time",
			form: url.Values{"description": {"x"}, "time": {"7pm"}},
			want: "Time must be HH:MM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			rec := env.postForm(t, "/add", tt.form)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/add", rec.Header().Get("Location"))

			_, flash := flashFrom(t, rec)
			require.NotNil(t, flash)
			assert.Equal(t, tt.want, flash.Message)
			assert.Equal(t, "danger", flash.Kind)

			assert.False(t, env.log.Exists())
		})
	}
}

func TestChallenges_MissingDocumentIsEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/challenges")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No challenges found.")
}

func TestChallenges_Filter(t *testing.T) {
	env := newTestEnv(t, nil)

	done := challenge.New(challenge.NewDate(2026, 5, 2), "done one")
	done.Complete()
	require.NoError(t, jsonfile.Save(env.jsonPath, []*challenge.Challenge{
		challenge.New(challenge.NewDate(2026, 5, 3), "open one"),
		done,
	}))

	all := env.get(t, "/challenges").Body.String()
	assert.Contains(t, all, "total challenges: 2")
	assert.Less(t, strings.Index(all, "done one"), strings.Index(all, "open one"))

	pending := env.get(t, "/challenges?status=pending").Body.String()
	assert.Contains(t, pending, "open one")
	assert.NotContains(t, pending, "done one")
}

func TestChallenges_InvalidStatus(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/challenges?status=archived")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var pd ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pd))
	assert.Equal(t, http.StatusBadRequest, pd.Status)
	assert.Contains(t, pd.Detail, "must be one of pending, completed")
}

type failingLister struct{}

func (failingLister) List(ctx context.Context, status challenge.Status) ([]*challenge.Challenge, error) {
	return nil, errors.New("boom")
}

func TestChallenges_LoadFailure(t *testing.T) {
	env := newTestEnv(t, failingLister{})

	rec := env.get(t, "/challenges")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAPIChallenges(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, jsonfile.Save(env.jsonPath, []*challenge.Challenge{
		challenge.New(challenge.NewDate(2026, 5, 3), "api"),
	}))

	rec := env.get(t, "/api/challenges")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"date":"2026-05-03","description":"api","status":"pending"}]`, rec.Body.String())
}

func TestExport_NoData(t *testing.T) {
	for _, path := range []string{"/export/csv", "/export/xlsx"} {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t, nil)

			rec := env.get(t, path)

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
			_, flash := flashFrom(t, rec)
			require.NotNil(t, flash)
			assert.Equal(t, "No data to export", flash.Message)
		})
	}
}

func TestExportCSV(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.log.Append(practice.Entry{ID: "a", Date: "2026-05-01", Time: "08:00", Description: "x"}))

	rec := env.get(t, "/export/csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="practica.csv"`, rec.Header().Get("Content-Disposition"))

	want, err := os.ReadFile(env.log.Path())
	require.NoError(t, err)
	assert.Equal(t, string(want), rec.Body.String())
}

func TestExportXLSX(t *testing.T) {
	env := newTestEnv(t, nil)
	require.NoError(t, env.log.Append(practice.Entry{ID: "a", Date: "2026-05-01", Time: "08:00", Description: "x", DurationMinutes: 15}))

	rec := env.get(t, "/export/xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="practica.xlsx"`, rec.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Practica")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, practice.Columns(), rows[0])
	assert.Equal(t, "x", rows[1][3])
}

func TestStatic(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.get(t, "/static/style.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "body")
}
