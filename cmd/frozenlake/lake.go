package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/frozenlake/agent/tabular"
	"github.com/samuelfneumann/frozenlake/agent/tabular/policy"
	"github.com/samuelfneumann/frozenlake/environment"
	"github.com/samuelfneumann/frozenlake/environment/frozenlake"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"
)

// readLake reads a lake Config from the file at path. Parameters
// missing from the file keep their defaults. An empty path gives the
// 8x8 lake.
func readLake(path string) (frozenlake.Config, error) {
	if path == "" {
		return frozenlake.Eight(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return frozenlake.Config{}, fmt.Errorf("readLake: %w", err)
	}

	c := frozenlake.Config{Params: frozenlake.DefaultParams()}
	if err := v.Unmarshal(&c); err != nil {
		return frozenlake.Config{}, fmt.Errorf("readLake: %w", err)
	}
	return c, nil
}

// loadLake reads and constructs the lake named by the config flag
func loadLake(v *viper.Viper) (*frozenlake.FrozenLake, error) {
	c, err := readLake(v.GetString("config"))
	if err != nil {
		return nil, err
	}
	return frozenlake.New(c)
}

// printValues writes the value grid of values, with terminal cells
// holding their rewards
func printValues(w io.Writer, title string, lake *frozenlake.FrozenLake,
	values *tabular.Values) {
	grid := values.Grid(lake)
	fmt.Fprintf(w, "%s\n%.3f\n\n", title, mat.Formatted(grid, mat.Squeeze()))
}

// printPolicy writes the lake map with the first letter of the action
// taken in every free cell
func printPolicy(w io.Writer, lake *frozenlake.FrozenLake, p policy.Table) {
	width, height := lake.Dims()

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := environment.Coordinate{X: x, Y: y}
			cell, _ := lake.Cell(c)

			symbol := "."
			switch cell {
			case environment.Goal:
				symbol = "G"
			case environment.Hazard:
				symbol = "H"
			case environment.Blocked:
				symbol = "#"
			default:
				if a, ok := p[c]; ok {
					symbol = strings.ToUpper(a.String()[:1])
				}
			}
			if c == lake.Start() {
				symbol = strings.ToLower(symbol)
			}
			b.WriteString(symbol)
		}
		b.WriteString("\n")
	}
	fmt.Fprintln(w, b.String())
}
