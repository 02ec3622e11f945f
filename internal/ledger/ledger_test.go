package ledger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuation/internal/ledger"
	"valuation/internal/money"
	"valuation/internal/types"
)

func issue(id, fileNo string, at time.Time, layouts ...string) types.Issue {
	return types.Issue{
		ReportID:    id,
		FileNo:      fileNo,
		OwnerName:   "Hemanshu Haribhai Patel",
		ReportDate:  time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		MarketValue: money.Paise(595149940),
		Layouts:     layouts,
		Artifacts:   []string{"out/Valuation_Report.pdf"},
		GeneratedAt: at,
	}
}

func TestListMissingFile(t *testing.T) {
	l := ledger.New(filepath.Join(t.TempDir(), "issued.csv"))
	issues, err := l.ListIssued(context.Background())
	require.NoError(t, err)
	assert.Empty(t, issues)

	got, err := l.LookupIssued(context.Background(), "06GGB1025 10")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecordRoundTrip(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(filepath.Join(t.TempDir(), "out", "issued.csv"))
	at := time.Date(2025, time.October, 31, 11, 30, 0, 0, time.UTC)

	in := issue("a", "06GGB1025 10", at, "standard", "exact")
	in.OwnerName = `Patel, "Hemanshu"`
	require.NoError(t, l.Record(ctx, in))

	issues, err := l.ListIssued(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, in, issues[0])
}

func TestRecordReplacesSameFileAndLayouts(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(filepath.Join(t.TempDir(), "issued.csv"))
	t0 := time.Date(2025, time.October, 31, 10, 0, 0, 0, time.UTC)

	require.NoError(t, l.Record(ctx, issue("a", "06GGB1025 10", t0, "standard", "exact")))
	require.NoError(t, l.Record(ctx, issue("b", "06ggb1025  10", t0.Add(time.Hour), "exact", "standard")))
	require.NoError(t, l.Record(ctx, issue("c", "06GGB1025 10", t0.Add(2*time.Hour), "compact")))
	require.NoError(t, l.Record(ctx, issue("d", "07GGB0001 01", t0.Add(3*time.Hour), "compact")))

	issues, err := l.ListIssued(ctx)
	require.NoError(t, err)
	var ids []string
	for _, i := range issues {
		ids = append(ids, i.ReportID)
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids)

	latest, err := l.LookupIssued(ctx, " 06ggb1025 10")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "c", latest.ReportID)
}

func TestLookupPrefersLaterEntryOnEqualTime(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(filepath.Join(t.TempDir(), "issued.csv"))
	at := time.Date(2025, time.October, 31, 10, 0, 0, 0, time.UTC)

	require.NoError(t, l.Record(ctx, issue("first", "06GGB1025 10", at, "standard")))
	require.NoError(t, l.Record(ctx, issue("second", "06GGB1025 10", at, "exact")))

	issues, err := l.ListIssued(ctx)
	require.NoError(t, err)
	require.Len(t, issues, 2)

	latest, err := l.LookupIssued(ctx, "06GGB1025 10")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.ReportID)
}

func TestListRejectsCorruptLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "issued.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,06GGB1025 10,owner,31-10-2025,1.00,standard,,2025-10-31T00:00:00Z\n"), 0o644))

	_, err := ledger.New(path).ListIssued(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report date")
}

func TestListHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := ledger.New(filepath.Join(t.TempDir(), "issued.csv"))
	require.NoError(t, l.Record(ctx, issue("a", "X1", time.Now().UTC().Truncate(time.Second), "standard")))

	cancel()
	_, err := l.ListIssued(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
