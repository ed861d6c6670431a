// Package cmd studycards komut satırı arayüzü.
package cmd

import (
	"context"
	"fmt"
	"os"

	"studycards.app/configs"
	"studycards.app/configs/configslog"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "studycards",
	Short:         "Flashcard study server with spaced-repetition review",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to an optional .env file")
	rootCmd.AddCommand(serveCmd, migrateCmd, importCmd)
}

// Execute kök komutu çalıştırır; hata durumunda süreç 1 ile çıkar.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig yapılandırmayı okur ve logger'ı kurar.
func loadConfig() (*configs.Config, error) {
	cfg, err := configs.Load(envFile)
	if err != nil {
		return nil, err
	}
	configslog.InitLogger(cfg.App.Env)
	return cfg, nil
}
