package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"valuation/internal/config"
	"valuation/internal/types"
)

func newIssuedCmd(a *app) *cobra.Command {
	var archive string
	cmd := &cobra.Command{
		Use:   "issued [FILE_NO]",
		Short: "List issued reports, or show the latest one for a file number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("archive") {
				cfg.Archive = archive
			}
			if cfg.Archive == config.ArchiveNone {
				return errors.New("no register configured (archive is none)")
			}

			ctx := cmd.Context()
			reg, closeReg, err := openRegister(ctx, cfg, a.logger)
			if err != nil {
				return err
			}
			defer closeReg()

			if len(args) == 1 {
				issue, err := reg.LookupIssued(ctx, args[0])
				if err != nil {
					return err
				}
				if issue == nil {
					return fmt.Errorf("no report issued under file no %q", args[0])
				}
				printIssued(a.stdout, []types.Issue{*issue}, styled(a.stdout))
				return nil
			}

			issues, err := reg.ListIssued(ctx)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(a.stdout, "No reports issued yet. Run 'valuation generate' first.")
				return nil
			}
			printIssued(a.stdout, issues, styled(a.stdout))
			return nil
		},
	}
	cmd.Flags().StringVar(&archive, "archive", "", "Register to read: ledger or db")
	return cmd
}
