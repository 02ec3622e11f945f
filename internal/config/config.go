// Package config layers the tool's settings: built-in defaults, an optional
// YAML file, a .env file, then the process environment. Command-line flags
// are applied last by the caller.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"valuation/internal/database"
	"valuation/internal/layout"
)

// Archive back ends.
const (
	ArchiveLedger = "ledger"
	ArchiveDB     = "db"
	ArchiveNone   = "none"
)

// Output formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// Config is the resolved configuration. Formats left empty means each
// layout gets its LayoutFormats.
type Config struct {
	Out          string            `yaml:"out"`
	Layouts      []string          `yaml:"layouts"`
	Formats      []string          `yaml:"formats"`
	Archive      string            `yaml:"archive"`
	Ledger       string            `yaml:"ledger"`
	LocationPage bool              `yaml:"location_page"`
	Shapefile    bool              `yaml:"shapefile"`
	Zoning       []string          `yaml:"zoning"`
	DB           database.DBConfig `yaml:"db"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Out:     "out",
		Layouts: []string{string(layout.Standard)},
		Archive: ArchiveLedger,
	}
}

// Load resolves the configuration. path names a YAML file and may be empty;
// envFile is read when it exists.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := LoadEnvFile(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.DB = database.LoadDatabaseConfig(cfg.DB)
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("VALUATION_OUT"); v != "" {
		c.Out = v
	}
	if v := os.Getenv("VALUATION_LAYOUTS"); v != "" {
		c.Layouts = SplitList(v)
	}
	if v := os.Getenv("VALUATION_FORMATS"); v != "" {
		c.Formats = SplitList(v)
	}
	if v := os.Getenv("VALUATION_ARCHIVE"); v != "" {
		c.Archive = v
	}
	if v := os.Getenv("VALUATION_LEDGER"); v != "" {
		c.Ledger = v
	}
	if v := os.Getenv("VALUATION_ZONING"); v != "" {
		c.Zoning = SplitList(v)
	}
	if v := os.Getenv("VALUATION_LOCATION_PAGE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("VALUATION_LOCATION_PAGE: %w", err)
		}
		c.LocationPage = b
	}
	return nil
}

// LedgerPath is the CSV register, out/issued.csv unless set.
func (c Config) LedgerPath() string {
	if c.Ledger != "" {
		return c.Ledger
	}
	return filepath.Join(c.Out, "issued.csv")
}

// ResolveLayouts expands "all" and rejects unknown names. Duplicates are
// dropped, order is kept.
func (c Config) ResolveLayouts() ([]layout.Name, error) {
	var out []layout.Name
	seen := make(map[layout.Name]bool)
	add := func(n layout.Name) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, s := range c.Layouts {
		if strings.EqualFold(strings.TrimSpace(s), "all") {
			for _, n := range layout.Names() {
				add(n)
			}
			continue
		}
		n, err := layout.Parse(s)
		if err != nil {
			return nil, err
		}
		add(n)
	}
	if len(out) == 0 {
		return nil, errors.New("no layout selected")
	}
	return out, nil
}

// LayoutFormats are the formats written for n when none are configured:
// the compact layout goes out as DOCX then PDF, the others as PDF.
func LayoutFormats(n layout.Name) []string {
	if n == layout.Compact {
		return []string{FormatDOCX, FormatPDF}
	}
	return []string{FormatPDF}
}

// ResolveFormats returns the formats for layout n: the configured ones,
// lower-cased and de-duplicated, or LayoutFormats(n) when none are set.
func (c Config) ResolveFormats(n layout.Name) ([]string, error) {
	if len(c.Formats) == 0 {
		return LayoutFormats(n), nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, s := range c.Formats {
		f := strings.ToLower(strings.TrimSpace(s))
		if f != FormatPDF && f != FormatDOCX {
			return nil, fmt.Errorf("unknown format %q (want pdf or docx)", s)
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("no format selected")
	}
	return out, nil
}

// Validate checks the values that are not resolved lazily.
func (c Config) Validate() error {
	switch c.Archive {
	case ArchiveLedger, ArchiveDB, ArchiveNone:
	default:
		return fmt.Errorf("unknown archive %q (want ledger, db or none)", c.Archive)
	}
	if c.Out == "" {
		return errors.New("output directory is empty")
	}
	layouts, err := c.ResolveLayouts()
	if err != nil {
		return err
	}
	_, err = c.ResolveFormats(layouts[0])
	return err
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadEnvFile reads KEY=value lines into the environment. Variables already
// set are left alone.
func LoadEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		if idx := strings.Index(line, "="); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			value := strings.TrimSpace(line[idx+1:])

			if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' ||
				value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}

	return scanner.Err()
}
