package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/prefs"
)

// prefsCommand creates the preference management command.
func (c *CLI) prefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage stored preferences",
	}

	cmd.AddCommand(c.prefsThemeCommand())
	cmd.AddCommand(c.prefsPathCommand())

	return cmd
}

// prefsThemeCommand creates "prefs theme" with get, set and toggle.
func (c *CLI) prefsThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the stored colour theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			theme, err := prefs.LoadTheme(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Store a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.Dark), string(prefs.Light)},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := prefs.ParseTheme(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := c.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := prefs.SaveTheme(ctx, store, theme); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Theme set to %s", StyleHighlight.Render(string(theme)))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := c.openStore(ctx, false)
			if err != nil {
				return err
			}
			defer store.Close()

			theme, err := prefs.ToggleTheme(ctx, store)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Theme set to %s", StyleHighlight.Render(string(theme)))
			return nil
		},
	})

	return cmd
}

// prefsPathCommand prints where preferences live.
func (c *CLI) prefsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preferences location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if c.cfg.RedisURL != "" {
				printKeyValue(out, "backend", prefs.BackendRedis)
				printKeyValue(out, "prefix", prefs.DefaultRedisPrefix)
				return nil
			}
			dir, err := prefs.DefaultDir()
			if err != nil {
				return ferrors.Wrap(ferrors.ErrCodeInternal, err, "resolve config dir")
			}
			fmt.Fprintln(out, filepath.Join(dir, prefs.FileName))
			return nil
		},
	}
}
