package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"valuation/internal/layout"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VALUATION_OUT", "VALUATION_LAYOUTS", "VALUATION_FORMATS", "VALUATION_ARCHIVE",
		"VALUATION_LEDGER", "VALUATION_ZONING", "VALUATION_LOCATION_PAGE",
		"DB_HOST", "DB_PORT", "DB_SERVICE", "DB_USERNAME", "DB_PASSWORD", "DB_WALLET_LOCATION",
	} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, stdin *os.File, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a := &app{
		stdout:    &out,
		stdin:     stdin,
		newLogger: func(bool) (*zap.Logger, error) { return zap.NewNop(), nil },
	}
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateAndIssued(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, err := execute(t, os.Stdin, "generate", "--out", dir, "--layout", "compact", "--format", "docx,pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Valuation report generated")
	assert.Contains(t, out, "₹ 59,51,499.40")
	assert.Contains(t, out, "₹ 56,53,924.43")
	assert.Contains(t, out, "Valuation_Report_compact.docx (DOCX)")
	assert.Contains(t, out, "Valuation_Report_compact.pdf (PDF, ")
	assert.FileExists(t, filepath.Join(dir, "Valuation_Report_compact.docx"))
	assert.FileExists(t, filepath.Join(dir, "issued.csv"))

	t.Setenv("VALUATION_OUT", dir)
	out, err = execute(t, os.Stdin, "issued")
	require.NoError(t, err)
	assert.Contains(t, out, "06GGB1025 10  Hemanshu Haribhai Patel")
	assert.Contains(t, out, "compact")
	assert.Contains(t, out, "31-Oct-2025")

	out, err = execute(t, os.Stdin, "issued", "06ggb1025  10")
	require.NoError(t, err)
	assert.Contains(t, out, "₹ 59,51,499.40")

	_, err = execute(t, os.Stdin, "issued", "07XYZ0001 01")
	require.Error(t, err)
}

func TestRootRunsGenerate(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("VALUATION_OUT", dir)
	t.Setenv("VALUATION_ARCHIVE", "none")

	out, err := execute(t, os.Stdin)
	require.NoError(t, err)
	assert.Contains(t, out, "Valuation_Report.pdf")
	assert.FileExists(t, filepath.Join(dir, "Valuation_Report.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "issued.csv"))
}

func TestRootTakesGenerateFlags(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, err := execute(t, os.Stdin, "--layout", "exact", "--out", dir, "--archive", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Valuation_Report_exact.pdf")
	assert.FileExists(t, filepath.Join(dir, "Valuation_Report_exact.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "Valuation_Report.pdf"))
}

func TestGenerateCompactDefaultsToDocxAndPDF(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, err := execute(t, os.Stdin, "generate", "--out", dir, "--archive", "none", "--layout", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "Valuation_Report_compact.docx (DOCX)")
	assert.Contains(t, out, "Valuation_Report_compact.pdf (PDF, ")
	assert.FileExists(t, filepath.Join(dir, "Valuation_Report_compact.docx"))
	assert.FileExists(t, filepath.Join(dir, "Valuation_Report_compact.pdf"))

	only := t.TempDir()
	_, err = execute(t, os.Stdin, "generate", "--out", only, "--archive", "none", "--layout", "compact", "--format", "pdf")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(only, "Valuation_Report_compact.pdf"))
	assert.NoFileExists(t, filepath.Join(only, "Valuation_Report_compact.docx"))

	t.Setenv("VALUATION_FORMATS", "pdf")
	env := t.TempDir()
	_, err = execute(t, os.Stdin, "generate", "--out", env, "--archive", "none", "--layout", "all")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(env, "Valuation_Report_compact.docx"))
}

func TestGenerateLocationFlags(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	out, err := execute(t, os.Stdin, "generate", "--out", dir, "--archive", "none",
		"--layout", "exact", "--location-page", "--shapefile")
	require.NoError(t, err)
	assert.Contains(t, out, "22.270417, 73.194944")
	assert.Contains(t, out, "Not available")
	assert.FileExists(t, filepath.Join(dir, "Valuation_Location.shp"))
	assert.FileExists(t, filepath.Join(dir, "Valuation_Location.prj"))
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := execute(t, os.Stdin, "generate", "--out", dir, "--layout", "poster")
	require.ErrorIs(t, err, layout.ErrUnknownLayout)

	_, err = execute(t, os.Stdin, "generate", "--out", dir, "--archive", "s3")
	require.Error(t, err)

	_, err = execute(t, os.Stdin, "generate", "--out", dir, "--format", "odt")
	require.Error(t, err)

	_, err = execute(t, os.Stdin, "generate", "extra")
	require.Error(t, err)
}

func TestIssuedEmptyAndDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("VALUATION_OUT", t.TempDir())

	out, err := execute(t, os.Stdin, "issued")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports issued yet")

	_, err = execute(t, os.Stdin, "issued", "--archive", "none")
	require.Error(t, err)
}

func TestPickNeedsTerminal(t *testing.T) {
	clearEnv(t)
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	_, err = execute(t, f, "pick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPickItems(t *testing.T) {
	names, lines := pickItems()
	assert.Equal(t, []string{"standard", "compact", "exact", "all"}, names)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "compact "))
}

func TestSelectItem(t *testing.T) {
	_, lines := pickItems()
	cases := []struct {
		name string
		keys string
		want int
	}{
		{"enter", "\r", 0},
		{"ansi down", "\x1b[B\x1b[B\r", 2},
		{"ansi up clamps", "\x1b[A\x1b[B\x1b[A\x1b[A\n", 0},
		{"vi keys clamp", "jjjjjjk\r", 2},
		{"windows scan codes", "\xe0P\xe0P\xe0H\r", 1},
		{"unknown keys ignored", "x\x1bOB\r", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := selectItem(bufio.NewReader(strings.NewReader(c.keys)), &out, lines)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.Contains(t, out.String(), "> ")
		})
	}

	for _, keys := range []string{"\x1b", "q", "\x03", "jj"} {
		_, err := selectItem(bufio.NewReader(strings.NewReader(keys)), &bytes.Buffer{}, lines)
		require.ErrorIs(t, err, errPickCancelled, "keys %q", keys)
	}

	_, err := selectItem(bufio.NewReader(strings.NewReader("\r")), &bytes.Buffer{}, nil)
	require.Error(t, err)
}
