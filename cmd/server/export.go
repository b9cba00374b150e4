package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/recommend/repositoryImp"
	"github.com/h809829-coder/agrosmart/pkg/report"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var (
		out   string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write recent recommendations to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			_, db, err := bootstrap(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer database.Close(db)

			recs, err := repositoryImp.New(db).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := file.Close(); err == nil {
					err = cerr
				}
			}()
			if err := report.WriteHistory(file, recs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(recs), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", report.HistoryFilename, "output file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "number of records (max 100)")
	return cmd
}
