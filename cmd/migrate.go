package cmd

import (
	"studycards.app/configs/configsdatabase"
	"studycards.app/configs/configslog"
	"studycards.app/database"
	"studycards.app/services"

	"github.com/spf13/cobra"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer configslog.SyncLogger()

		if err := configsdatabase.InitDB(cfg); err != nil {
			return err
		}
		defer configsdatabase.CloseDB()

		loc, err := cfg.App.Location()
		if err != nil {
			return err
		}
		return database.Initialize(configsdatabase.GetDB(), true, migrateSeed, services.NewClock(loc).Today())
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "insert the demo deck when the card table is empty")
}
