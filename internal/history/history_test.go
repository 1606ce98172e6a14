// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/math-search/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{
		DBPath:     filepath.Join(t.TempDir(), "history.db"),
		MaxDisplay: 20,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(query string, ts time.Time) types.SearchRecord {
	return types.SearchRecord{
		Query:        query,
		Keywords:     []string{"calculus", "derivative"},
		Timestamp:    ts,
		ResultsCount: 5,
		TopResultURL: "https://arxiv.org/abs/2301.00001",
	}
}

func TestAddAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	id, err := store.Add(ctx, sampleRecord("calculus limits", ts))
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "calculus limits", got.Query)
	assert.Equal(t, []string{"calculus", "derivative"}, got.Keywords)
	assert.True(t, got.Timestamp.Equal(ts), "timestamp should survive to the nanosecond")
	assert.Equal(t, 5, got.ResultsCount)
	assert.Equal(t, "https://arxiv.org/abs/2301.00001", got.TopResultURL)
}

func TestAddValidates(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, types.SearchRecord{Keywords: []string{"calculus"}})
	assert.ErrorContains(t, err, "query is empty")

	_, err = store.Add(ctx, types.SearchRecord{Query: "calculus"})
	assert.ErrorContains(t, err, "no keywords")

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "invalid records must not be inserted")
}

func TestAddDefaultsTimestamp(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleRecord("algebra groups", time.Time{}))
	require.NoError(t, err)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Timestamp.IsZero())
	assert.WithinDuration(t, time.Now(), got.Timestamp, time.Minute)
}

func TestGetAbsent(t *testing.T) {
	store := testStore(t)

	got, err := store.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListNewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, q := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, sampleRecord(q, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	records, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "third", records[0].Query)
	assert.Equal(t, "second", records[1].Query)
	assert.Equal(t, "first", records[2].Query)
}

func TestListLimitOffset(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, q := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, sampleRecord(q, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "third", page[0].Query)

	rest, err := store.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "first", rest[0].Query)
}

func TestRecent(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, sampleRecord("fresh", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	_, err = store.Add(ctx, sampleRecord("stale", time.Now().AddDate(0, 0, -30)))
	require.NoError(t, err)

	records, err := store.Recent(ctx, 7, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].Query)
}

func TestSearchByQuery(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, q := range []string{"calculus limits", "algebra groups", "advanced calculus"} {
		_, err := store.Add(ctx, sampleRecord(q, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	matches, err := store.SearchByQuery(ctx, "calculus", 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "advanced calculus", matches[0].Query)
	assert.Equal(t, "calculus limits", matches[1].Query)

	none, err := store.SearchByQuery(ctx, "topology", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDelete(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, sampleRecord("calculus limits", time.Now()))
	require.NoError(t, err)

	removed, err := store.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed, "second delete should find nothing")

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDeleteOlderThan(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Add(ctx, sampleRecord("old", time.Now().AddDate(0, 0, -40)))
	require.NoError(t, err)
	_, err = store.Add(ctx, sampleRecord("new", time.Now()))
	require.NoError(t, err)

	n, err := store.DeleteOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	records, err := store.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].Query)
}

func TestDeleteOlderThanRejectsNonPositiveDays(t *testing.T) {
	store := testStore(t)

	_, err := store.DeleteOlderThan(context.Background(), 0)
	assert.ErrorContains(t, err, "must be positive")
}

func TestStatsEmpty(t *testing.T) {
	store := testStore(t)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, st.Total)
	assert.Equal(t, 0, st.RecentWeek)
	assert.Zero(t, st.AvgResults)
	assert.True(t, st.Earliest.IsZero())
	assert.True(t, st.Latest.IsZero())
}

func TestStats(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	old := sampleRecord("old", time.Now().AddDate(0, 0, -30))
	old.ResultsCount = 1
	_, err := store.Add(ctx, old)
	require.NoError(t, err)

	mid := sampleRecord("mid", time.Now().Add(-2*time.Hour))
	mid.ResultsCount = 1
	_, err = store.Add(ctx, mid)
	require.NoError(t, err)

	fresh := sampleRecord("fresh", time.Now().Add(-time.Hour))
	fresh.ResultsCount = 2
	_, err = store.Add(ctx, fresh)
	require.NoError(t, err)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.RecentWeek)
	assert.InDelta(t, 1.33, st.AvgResults, 1e-9, "mean of 1,1,2 rounded to two decimals")
	assert.True(t, st.Earliest.Before(st.Latest))
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), st.Earliest, time.Minute)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewStore(types.HistoryConfig{DBPath: dbPath})
	require.NoError(t, err)
	id, err := store.Add(ctx, sampleRecord("calculus limits", time.Now()))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(types.HistoryConfig{DBPath: dbPath})
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "calculus limits", got.Query)
}

func TestFormatRecords(t *testing.T) {
	records := []types.SearchRecord{
		{ID: 1, Query: "calculus limits", Keywords: []string{"calculus"}, Timestamp: time.Now(), ResultsCount: 5},
		{ID: 2, Query: "algebra groups", Keywords: []string{"algebra"}, Timestamp: time.Now(), ResultsCount: 3},
	}

	var buf bytes.Buffer
	FormatRecords(records, &buf)
	s := buf.String()

	assert.Contains(t, s, "calculus limits")
	assert.Contains(t, s, "algebra groups")
	assert.Contains(t, s, "2 records")
}

func TestFormatRecordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatRecords(nil, &buf)
	assert.Contains(t, buf.String(), "No history records")
}

func TestFormatStats(t *testing.T) {
	st := Stats{
		Total:      10,
		RecentWeek: 3,
		AvgResults: 4.5,
		Earliest:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Latest:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	FormatStats(st, &buf)
	s := buf.String()

	assert.Contains(t, s, "total searches:  10")
	assert.Contains(t, s, "last 7 days:     3")
	assert.Contains(t, s, "avg results:     4.50")
	assert.True(t, strings.Contains(s, "earliest record:"))
}
