package sync

import (
	"fmt"

	"github.com/spf13/cobra"

	syncUC "relnotes/internal/application/sync/usecases"
	"relnotes/internal/infrastructure/config"
	"relnotes/internal/infrastructure/database"
	"relnotes/internal/infrastructure/repository"
	syncClient "relnotes/internal/infrastructure/sync"
	"relnotes/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull releases and notes from the configured remote instance",
		Long: `Fetch releases and notes modified since the latest local record and
restore them with their remote identifiers and timestamps intact.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if cfg.Sync.BaseURL == "" {
		return fmt.Errorf("sync.base_url is not configured")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	releaseRepo := repository.NewReleaseRepository(database.Get(), log)
	noteRepo := repository.NewNoteRepository(database.Get(), log)
	remote := syncClient.NewClient(&cfg.Sync, log)

	uc := syncUC.NewRunSyncUseCase(remote, releaseRepo, noteRepo, log)
	result, err := uc.Execute(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("Sync complete: %d releases, %d notes, %d skipped\n",
		result.ReleasesSynced, result.NotesSynced, result.Skipped)
	return nil
}
