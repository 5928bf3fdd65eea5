package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"passforge/internal/app"
	"passforge/internal/domain"
)

var (
	file       string
	iterations int
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "passforge",
		Short: "Deterministic password hardening and recovery CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				file = filepath.Join(dir, ".passforge", "recovery.json")
			}
			if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
				return err
			}

			appCtx = app.New(app.Config{File: file, Iterations: iterations})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&file, "file", "", "recovery package path (default ~/.passforge/recovery.json)")
	root.PersistentFlags().IntVar(&iterations, "iterations", domain.DefaultIterations, "PBKDF2 iteration count")

	root.AddCommand(hardenCmd(), analyzeCmd(), verifyCmd(), recoverCmd(), hintsCmd())
	return root.Execute()
}
