package main

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent/tabular/dp"
	"github.com/samuelfneumann/frozenlake/environment/simulator"
	"github.com/samuelfneumann/frozenlake/experiment"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSolveCmd returns the solve command, which plans with value
// iteration and evaluates the greedy policy
func NewSolveCmd(root *cobra.Command, v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve the lake with value iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(v, cmd.ErrOrStderr())
			out := cmd.OutOrStdout()

			lake, err := loadLake(v)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			cfg := dp.DefaultConfig()
			cfg.Threshold = v.GetFloat64("threshold")
			cfg.Workers = v.GetInt("workers")
			cfg.Logger = log

			values, err := dp.Solve(lake, cfg)
			if err != nil {
				return err
			}
			p, err := dp.ExtractPolicy(lake, values)
			if err != nil {
				return err
			}

			sim := simulator.New(lake, v.GetUint64("seed")).
				WithStepLimit(v.GetInt("rollout-steps"))
			result, err := experiment.Evaluate(sim, p, v.GetInt("trials"))
			if err != nil {
				return err
			}

			fmt.Fprintln(out, lake)
			printValues(out, "Optimal values", lake, values)
			printPolicy(out, lake, p)
			fmt.Fprintln(out, result)
			return nil
		},
	}
	c.Flags().Float64("threshold", dp.DefaultThreshold, "Convergence "+
		"threshold on the largest value change in a sweep")
	c.Flags().Int("workers", 1, "Goroutines sharing each sweep")
	_ = v.BindPFlag("threshold", c.Flags().Lookup("threshold"))
	_ = v.BindPFlag("workers", c.Flags().Lookup("workers"))

	root.AddCommand(c)
	return c
}
