package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*challenge.Challenge {
	done := challenge.New(challenge.NewDate(2026, time.January, 1), "ñandú <b> & \"friends\"")
	done.Complete()
	return []*challenge.Challenge{
		done,
		challenge.New(challenge.NewDate(2026, time.January, 2), "write tests"),
		challenge.New(challenge.NewDate(2025, time.December, 31), ""),
	}
}

func assertSameRecords(t *testing.T, want, got []*challenge.Challenge) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ToPersistable(), got[i].ToPersistable(), "record %d", i)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	records := sampleRecords()

	require.NoError(t, Save(path, records))

	loaded, err := Load(path)
	require.NoError(t, err)
	assertSameRecords(t, records, loaded)
}

func TestSave_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	require.NoError(t, Save(path, sampleRecords()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "date": "2026-01-01",
    "description": "ñandú <b> & \"friends\"",
    "status": "completed"
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyCollectionIsEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	require.NoError(t, Save(path, sampleRecords()))
	require.NoError(t, Save(path, sampleRecords()[1:2]))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "write tests", loaded[0].Description())
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, challenge.ErrNotFound)
	var nf *challenge.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, path, nf.Path)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name           string
		content        string
		wantValidation bool
	}{
		{name: "empty file", content: ""},
		{name: "truncated", content: `[{"date": "2026-01-02"`},
		{name: "object root", content: `{"date": "2026-01-02"}`},
		{name: "null root", content: `null`},
		{name: "non-object element", content: `["2026-01-02"]`},
		{name: "trailing data", content: `[] []`},
		{name: "invalid status", content: `[{"date": "2026-01-02", "status": "done"}]`, wantValidation: true},
		{name: "bad date", content: `[{"date": "2026-13-02"}]`, wantValidation: true},
		{name: "missing date", content: `[{"description": "x"}]`, wantValidation: true},
		{
			name:           "one bad element among good ones",
			content:        `[{"date": "2026-01-01"}, {"date": "nope"}, {"date": "2026-01-03"}]`,
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "challenges.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			loaded, err := Load(path)

			require.Error(t, err)
			assert.Nil(t, loaded)
			assert.ErrorIs(t, err, challenge.ErrParse)
			assert.Equal(t, tt.wantValidation, errors.Is(err, challenge.ErrValidation), err.Error())
		})
	}
}

func TestLoad_TolerantFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	content := `[
  {"date": " 2026-01-02 ", "description": "  padded  ", "status": " "},
  {"date": "2026-01-03", "status": "completed", "extra": 1}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, challenge.NewDate(2026, time.January, 2), loaded[0].Date())
	assert.Equal(t, "padded", loaded[0].Description())
	assert.Equal(t, challenge.StatusPending, loaded[0].Status())
	assert.Equal(t, challenge.StatusCompleted, loaded[1].Status())
	assert.Empty(t, loaded[1].Description())
}

func TestLoad_DuplicateDatesAreKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	content := `[{"date": "2026-01-02", "description": "a"}, {"date": "2026-01-02", "description": "b"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}

func TestChallengeStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "challenges.json")
	store := NewChallengeStore(path)
	assert.Equal(t, path, store.Path())

	require.NoError(t, store.Save(sampleRecords()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assertSameRecords(t, sampleRecords(), loaded)
}

func TestSaveLoad_Newlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	records := []*challenge.Challenge{
		challenge.New(challenge.NewDate(2026, time.January, 5), "line one\nline two"),
		challenge.New(challenge.NewDate(2026, time.January, 6), "line one\r\nline two"),
	}

	require.NoError(t, Save(path, records))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for _, ch := range loaded {
		assert.Equal(t, "line one\nline two", ch.Description())
	}
}

func TestLoad_NormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"date":"2026-01-02","description":"a\r\nb","status":"pending"}]`), 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a\nb", loaded[0].Description())
}

func TestSave_RejectsZeroDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.json")

	err := Save(path, []*challenge.Challenge{challenge.New(challenge.Date{}, "no date")})
	require.ErrorIs(t, err, challenge.ErrValidation)

	_, err = os.Stat(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
