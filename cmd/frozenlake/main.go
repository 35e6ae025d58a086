// Command frozenlake solves a frozen lake with value iteration or
// Q-learning and reports how well the resulting policy reaches a goal.
package main

import "os"

func main() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
