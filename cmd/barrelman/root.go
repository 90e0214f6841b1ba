package main

import (
	"io"

	"barrelman/internal/config"
	"barrelman/internal/logger"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// cli carries state shared by the subcommands.
type cli struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "barrelman",
		Short: "Barrelman change-tracked entity store",
		Long: `Barrelman keeps a catalog of typed entities with per-row versions.

Configuration comes from defaults, an optional TOML file (--config) and
BARRELMAN_* environment variables, e.g. BARRELMAN_STORAGE_DRIVER=postgres.

Examples:
  barrelman kinds --root AisMessage
  barrelman changes --since 120 --limit 10
  barrelman replicate --once`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			c.cfg = cfg
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file")

	root.AddCommand(
		c.kindsCmd(),
		c.getCmd(),
		c.changesCmd(),
		c.exportCmd(),
		c.replicateCmd(),
		c.purgeCmd(),
	)
	return root
}

// withApp opens the configured store for the duration of fn.
func (c *cli) withApp(cmd *cobra.Command, fn func(*app) error) (err error) {
	a, err := openApp(cmd.Context(), c.cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, a.Close())
	}()
	return fn(a)
}
