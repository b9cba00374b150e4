package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/h809829-coder/agrosmart/database"
	"github.com/h809829-coder/agrosmart/pkg/crop/repositoryImp"
)

func newSeedCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the crop catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := bootstrap(cmd.Context(), f)
			if err != nil {
				return err
			}
			defer database.Close(db)

			n, err := repositoryImp.New(db).SeedIfEmpty(cmd.Context())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already populated")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d crop profiles\n", n)
			return nil
		},
	}
}
