package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe3d-client/internal"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/config"
	"github.com/rocketscienceinc/tictactoe3d-client/internal/usecase"
)

const defaultConfigPath = "./config.yml"

var errNothingToResume = errors.New("no saved single player game to resume")

type rootOptions struct {
	configPath string
	envPath    string

	conf   *config.Config
	logger *slog.Logger
}

// NewRootCommand - the tictactoe3d command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tictactoe3d",
		Short:         "Play 3x3x3 tic-tac-toe against the robot or a friend",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the config file")
	cmd.PersistentFlags().StringVar(&opts.envPath, "env-file", ".env", "optional dotenv file loaded before the config")

	cmd.AddCommand(
		newSingleCommand(opts),
		newHostCommand(opts),
		newJoinCommand(opts),
		newResumeCommand(opts),
	)

	return cmd
}

func newSingleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "single",
		Short: "Play against the robot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, manager *usecase.GameManager) error {
				return manager.StartSinglePlayer(ctx)
			})
		},
	}
}

func newHostCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Create a game and share its join code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, manager *usecase.GameManager) error {
				return manager.CreateMultiplayer(ctx)
			})
		},
	}
}

func newJoinCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "join CODE",
		Short: "Join a friend's game by its code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, manager *usecase.GameManager) error {
				return manager.JoinMultiplayer(ctx, args[0])
			})
		},
	}
}

func newResumeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue the last single player game (needs redis enabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, manager *usecase.GameManager) error {
				resumed, err := manager.Resume(ctx)
				if err != nil {
					return err
				}

				if !resumed {
					return errNothingToResume
				}

				return nil
			})
		},
	}
}

func (that *rootOptions) init(cmd *cobra.Command) error {
	if err := godotenv.Load(that.envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	conf, err := config.Load(that.configPath)
	if err != nil {
		return err
	}

	that.conf = conf
	that.logger = initLogger(conf, cmd)

	return nil
}

// run - start attaches a session, then the console takes over.
func (that *rootOptions) run(cmd *cobra.Command, start application.PlayFunc) error {
	console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return application.RunApp(ctx, that.logger, that.conf, console, func(ctx context.Context, manager *usecase.GameManager) error {
		if err := start(ctx, manager); err != nil {
			return err
		}

		return console.Play(ctx, manager)
	})
}

// initialize logger. Stdout belongs to the board, so logs go to stderr.
func initLogger(conf *config.Config, cmd *cobra.Command) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
