package main

import (
	"fmt"

	"github.com/samuelfneumann/frozenlake/agent/tabular/dp"
	"github.com/samuelfneumann/frozenlake/agent/tabular/qlearning"
	"github.com/samuelfneumann/frozenlake/environment/simulator"
	"github.com/samuelfneumann/frozenlake/experiment"
	"github.com/samuelfneumann/frozenlake/utils/progressbar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLearnCmd returns the learn command, which runs Q-learning, turns
// the learned action values into state values and evaluates the policy
// greedy with respect to them
func NewLearnCmd(root *cobra.Command, v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "learn",
		Short: "Learn the lake with Q-learning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(v, cmd.ErrOrStderr())
			out := cmd.OutOrStdout()

			lake, err := loadLake(v)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			cfg := qlearning.DefaultConfig()
			cfg.LearningRate = v.GetFloat64("alpha")
			cfg.Epsilon = v.GetFloat64("epsilon")
			cfg.Episodes = v.GetInt("episodes")
			cfg.MaxEpisodeSteps = v.GetInt("max-steps")
			cfg.Logger = log
			if !v.GetBool("debug") {
				cfg.Progress = progressbar.NewManualProgressBar(
					cmd.ErrOrStderr(), 40, cfg.Episodes)
			}

			simSeed, agentSeed, evalSeed := learnSeeds(v.GetUint64("seed"))
			table, err := qlearning.Learn(simulator.New(lake, simSeed), cfg,
				agentSeed)
			if cfg.Progress != nil {
				cfg.Progress.Close()
			}
			if err != nil {
				return err
			}

			values := table.Values()
			p, err := dp.ExtractPolicy(lake, values)
			if err != nil {
				return err
			}

			sim := simulator.New(lake, evalSeed).
				WithStepLimit(v.GetInt("rollout-steps"))
			result, err := experiment.Evaluate(sim, p, v.GetInt("trials"))
			if err != nil {
				return err
			}

			fmt.Fprintln(out, lake)
			printValues(out, "Learned values", lake, values)
			printPolicy(out, lake, p)
			fmt.Fprintln(out, result)
			return nil
		},
	}
	c.Flags().Float64("alpha", qlearning.DefaultLearningRate, "Learning rate")
	c.Flags().Float64("epsilon", qlearning.DefaultEpsilon, "Exploration "+
		"probability of the behaviour policy")
	c.Flags().Int("episodes", 50, "Learning episodes")
	c.Flags().Int("max-steps", 0, "Cut learning episodes off after this "+
		"many steps, 0 for no limit")
	_ = v.BindPFlag("alpha", c.Flags().Lookup("alpha"))
	_ = v.BindPFlag("epsilon", c.Flags().Lookup("epsilon"))
	_ = v.BindPFlag("episodes", c.Flags().Lookup("episodes"))
	_ = v.BindPFlag("max-steps", c.Flags().Lookup("max-steps"))

	root.AddCommand(c)
	return c
}

// learnSeeds derives distinct seeds for the learning simulator, the
// behaviour policy and the evaluation simulator. Sources seeded alike
// produce the same stream, which would tie every slip to the action
// drawn on the same step.
func learnSeeds(seed uint64) (sim, agent, eval uint64) {
	return seed, seed + 1, seed + 2
}
