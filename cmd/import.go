package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"studycards.app/configs/configsdatabase"
	"studycards.app/configs/configslog"
	"studycards.app/database"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create cards from a text, markdown, PDF, CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer configslog.SyncLogger()

	if err := configsdatabase.InitDB(cfg); err != nil {
		return err
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()
	svc, err := buildServices(cfg, db)
	if err != nil {
		return err
	}
	if err := database.Initialize(db, true, false, svc.clock.Today()); err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	cards, err := svc.imp.ImportFile(cmd.Context(), filepath.Base(path), contentType, data)
	if err != nil {
		return err
	}

	for _, c := range cards {
		cmd.Printf("#%d  %s\n     %s\n", c.ID, c.Question, c.Answer)
	}
	cmd.Printf("%d cards imported from %s\n", len(cards), filepath.Base(path))
	return nil
}
