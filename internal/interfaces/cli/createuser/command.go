package createuser

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	userUC "relnotes/internal/application/user/usecases"
	"relnotes/internal/infrastructure/auth"
	"relnotes/internal/infrastructure/config"
	"relnotes/internal/infrastructure/database"
	"relnotes/internal/infrastructure/repository"
	"relnotes/internal/shared/logger"
)

var (
	env      string
	username string
	staff    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Create an account",
		Long:  `Create an account for the REST API. The password is read from the terminal.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the new account (required)")
	cmd.Flags().BoolVar(&staff, "staff", false, "Grant the staff role")
	cmd.MarkFlagRequired("username")

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

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	password, err := readPassword()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	userRepo := repository.NewUserRepository(database.Get(), log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	uc := userUC.NewCreateUserUseCase(userRepo, hasher, log)
	result, err := uc.Execute(cmd.Context(), userUC.CreateUserCommand{
		Username: username,
		Password: password,
		IsStaff:  staff,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Printf("Account '%s' created (id %d, staff: %t)\n", result.Username, result.ID, result.IsStaff)
	return nil
}

func readPassword() (string, error) {
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
