package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/paperdesk/market"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name = 'fills'`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found = name == "fills"
	}
	assert.NoError(t, rows.Err())
	assert.True(t, found)
}

func TestSQLiteRecordAndGetFill(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	at := time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC)
	rec := Fill{
		ID:        "F1",
		Symbol:    "AAPL",
		Side:      market.Buy,
		Units:     100,
		Price:     187.25,
		Time:      at,
		CashAfter: 9981275,
	}
	require.NoError(t, j.RecordFill(rec))

	got, err := j.GetFill("F1")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, market.Buy, got.Side)
	assert.InDelta(t, 100, got.Units, 1e-12)
	assert.InDelta(t, 187.25, got.Price, 1e-12)
	assert.InDelta(t, 9981275, got.CashAfter, 1e-9)
	assert.True(t, got.Time.Equal(at))
}

func TestSQLiteGetFillNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	_, err := j.GetFill("nope")
	assert.Error(t, err)
}

func TestSQLiteListFills(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)

	base := time.Date(2026, 2, 3, 14, 0, 0, 0, time.UTC)
	fills := []Fill{
		{ID: "F1", Symbol: "AAPL", Side: market.Buy, Units: 100, Price: 10, Time: base, CashAfter: 999000},
		{ID: "F2", Symbol: "AMZN", Side: market.Buy, Units: 5, Price: 200, Time: base.Add(time.Minute), CashAfter: 998000},
		{ID: "F3", Symbol: "AAPL", Side: market.Sell, Units: 30, Price: 15, Time: base.Add(2 * time.Minute), CashAfter: 998450},
	}
	for _, rec := range fills {
		require.NoError(t, j.RecordFill(rec))
	}

	all, err := j.ListFills("", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "F1", all[0].ID)
	assert.Equal(t, "F3", all[2].ID)

	aapl, err := j.ListFills("AAPL", 0)
	require.NoError(t, err)
	require.Len(t, aapl, 2)
	assert.Equal(t, market.Sell, aapl[1].Side)

	limited, err := j.ListFills("", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	window, err := j.ListFillsBetween(base, base.Add(2*time.Minute))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, "F2", window[1].ID)
}
