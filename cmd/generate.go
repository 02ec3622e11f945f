package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"valuation/internal/config"
	"valuation/internal/database"
	"valuation/internal/fixture"
	"valuation/internal/generate"
	"valuation/internal/layout"
	"valuation/internal/ledger"
	"valuation/internal/types"
)

type generateFlags struct {
	layouts      []string
	formats      []string
	out          string
	locationPage bool
	shapefile    bool
	zoning       []string
	archive      string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the report in the selected layouts and formats",
		Example: `  valuation generate
  valuation generate --layout all --format pdf --format docx
  valuation generate --layout exact --location-page --zoning data/vmc_zoning.shp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	f.bind(cmd)
	return cmd
}

// bind registers the generate flags on cmd. The root command carries them
// too, so a bare "valuation --layout exact" generates.
func (f *generateFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.layouts, "layout", "l", nil, "Layout: standard, compact, exact or all (repeatable)")
	cmd.Flags().StringSliceVarP(&f.formats, "format", "f", nil, "Output format: pdf or docx (repeatable; default pdf, docx and pdf for compact)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output directory")
	cmd.Flags().BoolVar(&f.locationPage, "location-page", false, "Append the location page")
	cmd.Flags().BoolVar(&f.shapefile, "shapefile", false, "Also write the subject location as a point shapefile")
	cmd.Flags().StringSliceVar(&f.zoning, "zoning", nil, "Zoning polygon shapefile for the location page (repeatable)")
	cmd.Flags().StringVar(&f.archive, "archive", "", "Register issues in: ledger, db or none")
}

// apply lays the flags the user actually set over cfg.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("layout") {
		cfg.Layouts = f.layouts
	}
	if changed("format") {
		cfg.Formats = f.formats
	}
	if changed("out") {
		cfg.Out = f.out
	}
	if changed("location-page") {
		cfg.LocationPage = f.locationPage
	}
	if changed("shapefile") {
		cfg.Shapefile = f.shapefile
	}
	if changed("zoning") {
		cfg.Zoning = f.zoning
	}
	if changed("archive") {
		cfg.Archive = f.archive
	}
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	cfg := a.cfg
	f.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	return a.generate(cmd.Context(), cfg)
}

func (a *app) generate(ctx context.Context, cfg config.Config) error {
	layouts, err := cfg.ResolveLayouts()
	if err != nil {
		return err
	}
	formats := make(map[layout.Name][]string, len(layouts))
	for _, n := range layouts {
		if formats[n], err = cfg.ResolveFormats(n); err != nil {
			return err
		}
	}

	reg, closeReg, err := openRegister(ctx, cfg, a.logger)
	if err != nil {
		return err
	}
	defer closeReg()

	var archive generate.Archive
	if reg != nil {
		archive = reg
	}
	res, err := generate.New(a.logger, archive).Run(ctx, fixture.Subject(), generate.Request{
		Out:           cfg.Out,
		Layouts:       layouts,
		LayoutFormats: formats,
		LocationPage:  cfg.LocationPage,
		Shapefile:     cfg.Shapefile,
		Zoning:        cfg.Zoning,
	})
	if err != nil {
		return err
	}

	printSummary(a.stdout, res, styled(a.stdout))
	return nil
}

// register is an archive that can also be read back.
type register interface {
	generate.Archive
	ListIssued(ctx context.Context) ([]types.Issue, error)
	LookupIssued(ctx context.Context, fileNo string) (*types.Issue, error)
}

// openRegister returns the configured register, or nil for "none". The
// returned func releases it.
func openRegister(ctx context.Context, cfg config.Config, logger *zap.Logger) (register, func(), error) {
	switch cfg.Archive {
	case config.ArchiveNone:
		return nil, func() {}, nil
	case config.ArchiveDB:
		db, err := database.NewDatabase(ctx, cfg.DB, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	case config.ArchiveLedger:
		logger.Debug("using ledger", zap.String("path", cfg.LedgerPath()))
		return ledger.New(cfg.LedgerPath()), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown archive %q", cfg.Archive)
}
