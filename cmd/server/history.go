package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/recommend/repositoryImp"
)

func newHistoryCmd(f *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print recent recommendations, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer database.Close(db)

			recs, err := repositoryImp.New(db).ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recommendations yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tCROP\tLOCATION\tSOIL\tSEASON\tWATER\tBUDGET")
			for _, r := range recs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Timestamp.Local().Format(time.DateTime), r.RecommendedCrop,
					r.Location, r.SoilType, r.Season, r.WaterAvailability, r.Budget)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of records (max 100)")
	return cmd
}
