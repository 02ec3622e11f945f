// Package ledger keeps the register of issued reports in a CSV file beside
// the generated documents.
package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"valuation/internal/money"
	"valuation/internal/types"
)

const dateLayout = "2006-01-02"

var columns = []string{
	"report_id", "file_no", "owner", "report_date", "market_value", "layouts", "artifacts", "generated_at",
}

// Ledger is a CSV register at Path. The file is created on first Record.
type Ledger struct {
	Path string
}

// New returns a ledger backed by path.
func New(path string) *Ledger { return &Ledger{Path: path} }

// ListIssued returns every entry in file order. A missing file is an empty
// register.
func (l *Ledger) ListIssued(ctx context.Context) ([]types.Issue, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing issued yet
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)

	var issues []types.Issue
	for line := 1; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read ledger %s: %w", l.Path, err)
		}
		if line == 1 && rec[0] == columns[0] {
			continue
		}
		issue, err := decode(rec)
		if err != nil {
			return nil, fmt.Errorf("ledger %s line %d: %w", l.Path, line, err)
		}
		issues = append(issues, issue)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	return issues, nil
}

// LookupIssued returns the latest entry for fileNo, or nil when there is none.
// Entries with equal GeneratedAt go to the one recorded last.
func (l *Ledger) LookupIssued(ctx context.Context, fileNo string) (*types.Issue, error) {
	issues, err := l.ListIssued(ctx)
	if err != nil {
		return nil, err
	}
	want := types.NormalizeFileNo(fileNo)
	var latest *types.Issue
	for i := range issues {
		if types.NormalizeFileNo(issues[i].FileNo) != want {
			continue
		}
		if latest == nil || !latest.GeneratedAt.After(issues[i].GeneratedAt) {
			latest = &issues[i]
		}
	}
	return latest, nil
}

// Record adds issue to the register. An earlier entry with the same file
// number and the same set of layouts is replaced.
func (l *Ledger) Record(ctx context.Context, issue types.Issue) error {
	existing, err := l.ListIssued(ctx)
	if err != nil {
		return err
	}

	key := dedupKey(issue)
	kept := existing[:0]
	for _, e := range existing {
		if dedupKey(e) != key {
			kept = append(kept, e)
		}
	}
	kept = append(kept, issue)

	if err := os.MkdirAll(filepath.Dir(l.Path), 0755); err != nil {
		return err
	}
	return l.write(kept)
}

// write replaces the file through a temporary sibling so a failed write
// leaves the old register intact.
func (l *Ledger) write(issues []types.Issue) error {
	tmp, err := os.CreateTemp(filepath.Dir(l.Path), ".issued-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return err
	}
	for _, issue := range issues {
		if err := w.Write(encode(issue)); err != nil {
			tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), l.Path)
}

func dedupKey(issue types.Issue) string {
	layouts := slices.Clone(issue.Layouts)
	slices.Sort(layouts)
	return types.NormalizeFileNo(issue.FileNo) + "|" + strings.Join(slices.Compact(layouts), ",")
}

func encode(issue types.Issue) []string {
	return []string{
		issue.ReportID,
		issue.FileNo,
		issue.OwnerName,
		issue.ReportDate.Format(dateLayout),
		issue.MarketValue.String(),
		strings.Join(issue.Layouts, ";"),
		strings.Join(issue.Artifacts, ";"),
		issue.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func decode(rec []string) (types.Issue, error) {
	reportDate, err := time.Parse(dateLayout, rec[3])
	if err != nil {
		return types.Issue{}, fmt.Errorf("report date: %w", err)
	}
	value, err := money.ParsePaise(rec[4])
	if err != nil {
		return types.Issue{}, fmt.Errorf("market value: %w", err)
	}
	generated, err := time.Parse(time.RFC3339, rec[7])
	if err != nil {
		return types.Issue{}, fmt.Errorf("generated at: %w", err)
	}
	return types.Issue{
		ReportID:    rec[0],
		FileNo:      rec[1],
		OwnerName:   rec[2],
		ReportDate:  reportDate,
		MarketValue: value,
		Layouts:     split(rec[5]),
		Artifacts:   split(rec[6]),
		GeneratedAt: generated,
	}, nil
}

func split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}
