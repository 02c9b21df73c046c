package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/comment"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/issuetracker/internal/seeder"
)

var (
	flagSeedReset  bool
	flagSeedConfig string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample users, issues and comments",
	Long: `Load the sample data set. Without --reset the users are upserted and
issues are only added to an empty database, so the command can be repeated.
With --reset all comments, issues and users are deleted first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		cfg, err := seeder.LoadConfig(flagSeedConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("reset") {
			cfg.Reset = flagSeedReset
		}

		pool, logger, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		s := seeder.New(logger, postgres.NewTxManager(pool),
			user.New(pool), issue.New(pool), comment.New(pool), *cfg)

		res, err := s.Run(ctx)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			return printJSON(out, res)
		}
		if res.Skipped {
			fmt.Fprintf(out, "Users: %d (issues already present, use --reset to reload)\n", res.Users)
			return nil
		}
		fmt.Fprintf(out, "Seed completed\n   Users: %d\n   Issues: %d\n   Comments: %d\n",
			res.Users, res.Issues, res.Comments)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&flagSeedReset, "reset", false, "delete existing comments, issues and users first")
	seedCmd.Flags().StringVar(&flagSeedConfig, "config", "", "seeder YAML config (default: environment only)")
}
