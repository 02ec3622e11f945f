package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"valuation/internal/money"
	"valuation/internal/types"

	_ "github.com/sijms/go-ora/v2"
)

// dsn builds a properly encoded connection string for Oracle Autonomous Database
func dsn(username, password, host, port, service string, walletLocation string) string {
	if walletLocation != "" {
		// Use wallet-based mTLS connection
		return fmt.Sprintf(
			"oracle://%s:%s@%s:%s/%s?ssl=true&wallet_location=%s",
			url.PathEscape(username), url.PathEscape(password), host, port, service, url.PathEscape(walletLocation))
	}

	return (&url.URL{
		Scheme:   "oracle",
		User:     url.UserPassword(username, password),
		Host:     host + ":" + port,
		Path:     "/" + service,
		RawQuery: "ssl=true", // ADB requires TCPS on 1522
	}).String()
}

// DBConfig holds database connection configuration
type DBConfig struct {
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	Service        string `yaml:"service"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	WalletLocation string `yaml:"wallet_location"`
}

// Redacted returns the connection string with the password masked, for logs.
func (c DBConfig) Redacted() string {
	pw := ""
	if c.Password != "" {
		pw = "xxxxx"
	}
	return dsn(c.Username, pw, c.Host, c.Port, c.Service, c.WalletLocation)
}

// Database holds the connection to the issued-reports register.
type Database struct {
	db     *sql.DB
	config DBConfig
	logger *zap.Logger
}

// NewDatabase opens and pings the Oracle register.
func NewDatabase(ctx context.Context, config DBConfig, logger *zap.Logger) (*Database, error) {
	if config.Username == "" {
		return nil, errors.New("database: DB_USERNAME is not set")
	}
	connStr := dsn(config.Username, config.Password, config.Host, config.Port, config.Service, config.WalletLocation)

	logger.Debug("connecting to oracle", zap.String("dsn", config.Redacted()))

	db, err := sql.Open("oracle", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		db:     db,
		config: config,
		logger: logger,
	}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

const createTable = `
	CREATE TABLE VALUATION_REPORTS (
		Report_ID     VARCHAR2(36) PRIMARY KEY,
		File_No       VARCHAR2(64) NOT NULL,
		Owner_Name    VARCHAR2(200),
		Report_Date   DATE,
		Market_Value  NUMBER(18),
		Layouts       VARCHAR2(200),
		Artifacts     VARCHAR2(4000),
		Generated_At  TIMESTAMP
	)`

// EnsureSchema creates VALUATION_REPORTS when it does not exist yet.
func (d *Database) EnsureSchema(ctx context.Context) error {
	// ORA-00955: name is already used by an existing object
	block := `BEGIN EXECUTE IMMEDIATE '` + strings.TrimSpace(createTable) + `'; ` +
		`EXCEPTION WHEN OTHERS THEN IF SQLCODE != -955 THEN RAISE; END IF; END;`
	if _, err := d.db.ExecContext(ctx, block); err != nil {
		return fmt.Errorf("failed to create VALUATION_REPORTS: %w", err)
	}
	return nil
}

// Record inserts one issued report.
func (d *Database) Record(ctx context.Context, issue types.Issue) error {
	query := `
		INSERT INTO VALUATION_REPORTS
			(Report_ID, File_No, Owner_Name, Report_Date, Market_Value, Layouts, Artifacts, Generated_At)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8)
	`
	_, err := d.db.ExecContext(ctx, query,
		issue.ReportID, issue.FileNo, issue.OwnerName, issue.ReportDate, int64(issue.MarketValue),
		joinList(issue.Layouts), joinList(issue.Artifacts), issue.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record report %s: %w", issue.FileNo, err)
	}
	d.logger.Info("report recorded", zap.String("file_no", issue.FileNo), zap.String("report_id", issue.ReportID))
	return nil
}

const selectIssued = `
	SELECT
		Report_ID, File_No, Owner_Name, Report_Date, Market_Value, Layouts, Artifacts, Generated_At
	FROM VALUATION_REPORTS
`

// lookupIssued matches File_No the way types.NormalizeFileNo does: trimmed,
// whitespace runs collapsed to one space, upper-cased.
const lookupIssued = selectIssued + `
	WHERE UPPER(REGEXP_REPLACE(TRIM(File_No), '\s+', ' ')) = :1
	ORDER BY Generated_At DESC
	FETCH FIRST 1 ROWS ONLY
`

// LookupIssued returns the latest report issued under fileNo, or nil when
// none was.
func (d *Database) LookupIssued(ctx context.Context, fileNo string) (*types.Issue, error) {
	issue, err := scanIssue(d.db.QueryRowContext(ctx, lookupIssued, types.NormalizeFileNo(fileNo)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not issued
		}
		return nil, fmt.Errorf("failed to query report %s: %w", fileNo, err)
	}
	return issue, nil
}

// ListIssued returns every recorded report, newest first.
func (d *Database) ListIssued(ctx context.Context) ([]types.Issue, error) {
	rows, err := d.db.QueryContext(ctx, selectIssued+` ORDER BY Generated_At DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query issued reports: %w", err)
	}
	defer rows.Close()

	var issues []types.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		issues = append(issues, *issue)
	}
	return issues, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanIssue(s scanner) (*types.Issue, error) {
	var (
		issue             types.Issue
		owner             sql.NullString
		layouts, artifact sql.NullString
		value             sql.NullInt64
		reportDate, genAt sql.NullTime
	)
	err := s.Scan(&issue.ReportID, &issue.FileNo, &owner, &reportDate, &value, &layouts, &artifact, &genAt)
	if err != nil {
		return nil, err
	}
	issue.OwnerName = owner.String
	issue.ReportDate = reportDate.Time
	issue.MarketValue = money.Paise(value.Int64)
	issue.Layouts = splitList(layouts.String)
	issue.Artifacts = splitList(artifact.String)
	issue.GeneratedAt = genAt.Time
	return &issue, nil
}

func joinList(items []string) string { return strings.Join(items, ";") }

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

// LoadDatabaseConfig fills unset fields of base from the DB_* environment
// variables, falling back to a local XE instance.
func LoadDatabaseConfig(base DBConfig) DBConfig {
	return DBConfig{
		Host:           getEnvOrDefault("DB_HOST", base.Host, "localhost"),
		Port:           getEnvOrDefault("DB_PORT", base.Port, "1521"),
		Service:        getEnvOrDefault("DB_SERVICE", base.Service, "XE"),
		Username:       getEnvOrDefault("DB_USERNAME", base.Username, ""),
		Password:       getEnvOrDefault("DB_PASSWORD", base.Password, ""),
		WalletLocation: getEnvOrDefault("DB_WALLET_LOCATION", base.WalletLocation, ""),
	}
}

func getEnvOrDefault(key, configured, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if configured != "" {
		return configured
	}
	return defaultValue
}
