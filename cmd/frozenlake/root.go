package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd returns the frozenlake command with its solve and learn
// subcommands attached. Results are written to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FROZENLAKE")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "frozenlake",
		Short: "Plan and learn on a frozen lake",
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().String("config", "", "Lake file (YAML or JSON); "+
		"defaults to the 8x8 lake")
	cmd.PersistentFlags().Int("trials", 500, "Rollouts used to evaluate "+
		"the policy")
	cmd.PersistentFlags().Int("rollout-steps", 1000, "Count evaluation "+
		"rollouts as failures after this many steps, 0 for no limit")
	cmd.PersistentFlags().Uint64("seed", 1, "Seed for all random sources")
	_ = v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("trials", cmd.PersistentFlags().Lookup("trials"))
	_ = v.BindPFlag("rollout-steps",
		cmd.PersistentFlags().Lookup("rollout-steps"))
	_ = v.BindPFlag("seed", cmd.PersistentFlags().Lookup("seed"))

	NewSolveCmd(cmd, v)
	NewLearnCmd(cmd, v)
	return cmd
}

// newLogger returns a logger writing to w, at debug level if requested
func newLogger(v *viper.Viper, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if v.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
