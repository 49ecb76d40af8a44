// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/xmidt-org/cama/clock"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/secure"
	"go.uber.org/zap"
)

const applicationName = "camad"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           applicationName,
		Short:         "The CAMA backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("file", "f", "", "the configuration file to use.  Overrides --name.")
	root.PersistentFlags().StringP("name", "n", applicationName, "the configuration name to search for")

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newTokenCommand(),
	)

	return root
}

// setup loads the configuration and builds the application logger
func setup(cmd *cobra.Command) (Config, *zap.Logger, error) {
	c, err := loadConfig(cmd.Flags())
	if err != nil {
		return Config{}, nil, err
	}

	logger, err := logging.New(applicationName, c.Logging)
	return c, logger, err
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the API, metrics, and pprof servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			defer logger.Sync()
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, newApp(c, logger), logger)
		},
	}
}

type lifecycle interface {
	Start(context.Context) error
	Stop(context.Context) error
	StartTimeout() time.Duration
	StopTimeout() time.Duration
}

// serve starts app and blocks until ctx is canceled, then stops it
func serve(ctx context.Context, app lifecycle, logger *zap.Logger) error {
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "unable to start")
	}

	logger.Info("camad started")
	<-ctx.Done()
	logger.Info("camad stopping")

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return app.Stop(stopCtx)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies the study schema migrations to the configured postgres database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			defer logger.Sync()
			if c.Study.Driver != PostgresDriver {
				return errors.Errorf("migrations require the %s study driver", PostgresDriver)
			}

			c.Study.Migrate = true
			db, err := openStudyDB(cmd.Context(), c.Study, logger)
			if err != nil {
				return err
			}

			logger.Info("study migrations applied")
			return db.Close()
		},
	}
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issues an access and refresh token pair with the configured signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			var s secure.Subject
			s.UserID, _ = cmd.Flags().GetString("user")
			s.IsAdmin, _ = cmd.Flags().GetBool("admin")

			return issueToken(cmd, c.Token, s)
		},
	}

	cmd.Flags().String("user", "", "the user id placed in the tokens")
	cmd.Flags().Bool("admin", false, "whether the tokens grant admin access")
	cmd.MarkFlagRequired("user")
	return cmd
}

func issueToken(cmd *cobra.Command, o secure.Options, s secure.Subject) error {
	issuer, err := secure.NewIssuer(o, clock.System(), secure.NopMeasures())
	if err != nil {
		return err
	}

	pair, err := issuer.IssuePair(s)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(pair)
}

func camad(arguments []string) int {
	root := newRootCommand()
	root.SetArgs(arguments)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "%s: %s\n", applicationName, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(camad(os.Args[1:]))
}
