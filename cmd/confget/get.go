// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/minond/acm/internal/argv"
)

func newGetCommand(a *app) *cobra.Command {
	var asJSON, strict bool

	cmd := &cobra.Command{
		Use:   "get KEY... [-- ARGS]",
		Short: "Print resolved configuration values",
		Long: `Prints the value of each KEY on its own line. Strings are printed as is,
every other value as JSON. A key no source defines prints an empty line.

Arguments after "--" are parsed as the application's own command line and
take precedence over the environment and files.

Examples:
  confget get config.port
  confget get --json secrets
  confget get --strict server.port -- --server.port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, rest := splitAtDash(cmd, args)
			if len(keys) == 0 {
				return ErrEmptyKey
			}

			log := a.log.WithComponent("get")
			conf := a.configuration(argv.Parse(rest))
			out := cmd.OutOrStdout()

			for _, key := range keys {
				if key == "" {
					return ErrEmptyKey
				}

				value, found, err := conf.Lookup(key)
				if err != nil {
					log.Error().Err(err).Str("key", key).Msg("error resolving key")
					return err
				}

				if !found {
					if strict {
						return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
					}
					log.Debug().Str("key", key).Msg("key not defined")
				}

				if err := printValue(out, value, found, asJSON); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print every value as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a key is not defined")

	return cmd
}

// splitAtDash separates the keys from the arguments given after "--".
func splitAtDash(cmd *cobra.Command, args []string) (keys, rest []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}

	return args[:dash], args[dash:]
}

func printValue(w io.Writer, value any, found, asJSON bool) error {
	if !found {
		_, err := fmt.Fprintln(w)
		return err
	}

	if s, ok := value.(string); ok && !asJSON {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding value: %w", err)
	}

	_, err = fmt.Fprintln(w, string(raw))
	return err
}
