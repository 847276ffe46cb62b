// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/minond/acm/configuration"
	"github.com/minond/acm/internal/config"
	"github.com/minond/acm/internal/logger"
)

// app carries state shared by the subcommands once the root command has
// loaded the settings.
type app struct {
	flags    *config.Settings
	environ  map[string]string
	settings *config.Settings
	log      *logger.Logger
}

func newRootCommand(environ map[string]string) *cobra.Command {
	a := &app{environ: environ}

	root := &cobra.Command{
		Use:   "confget",
		Short: "Resolve layered configuration values",
		Long: `confget resolves configuration keys the way an application using acm
would: values given after "--" win over environment variables, which win
over configuration files found on the search path.

Examples:
  confget get database.host
  confget -p ./config -p /etc/app get server.port -- --server.port 8080
  confget --link secrets=/run/secrets.json get secrets.token
  confget formats`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newGetCommand(a),
		newFormatsCommand(a),
		newPathsCommand(a),
		newVersionCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(a.flags, a.environ)
	if err != nil {
		return err
	}

	a.settings = settings
	a.log = logger.NewLogger(cmd.ErrOrStderr(), "confget", settings.LogLevel)
	a.log.Debug().Any("settings", settings).Msg("received settings")

	return nil
}

// configuration builds a resolver reading args as its argv source and the
// environment the command was started with.
func (a *app) configuration(args map[string]any) *configuration.Configuration {
	return configuration.New(a.settings.Options(args, a.environ, &a.log.Logger))
}
