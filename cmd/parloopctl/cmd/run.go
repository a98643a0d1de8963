package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/antineutrino2/jtk/pkg/parallel"
	"github.com/antineutrino2/jtk/pkg/utils"
)

var scenario string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one or all of the engine's demonstration scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := map[string]func(context.Context) error{
			"squares": runSquares,
			"sum":     runSumReduction,
			"concat":  runNonCommutativeConcat,
			"strided": runStrided,
			"nested":  runNested,
		}

		names := []string{"squares", "sum", "concat", "strided", "nested"}
		if scenario != "all" {
			if _, ok := all[scenario]; !ok {
				return fmt.Errorf("unknown scenario %q", scenario)
			}
			names = []string{scenario}
		}

		clock := utils.NewRealClock()
		for _, name := range names {
			ctx, span := otel.Tracer("parloopctl").Start(context.Background(), "parloopctl.run."+name)
			start := clock.Now()
			err := all[name](ctx)
			span.SetAttributes(attribute.String("scenario", name))
			span.End()
			if err != nil {
				return fmt.Errorf("scenario %s: %w", name, err)
			}
			GetLogger().Info("scenario %s completed in %s", name, clock.Since(start))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&scenario, "scenario", "all", "scenario to run: all, squares, sum, concat, strided, nested")
	rootCmd.AddCommand(runCmd)
}

// runSquares mirrors the spec's squares scenario: b[i] = a[i]*a[i].
func runSquares(ctx context.Context) error {
	a := make([]int, 10)
	for i := range a {
		a[i] = i
	}
	b := make([]int, 10)

	if err := parallel.Loop(10, parallel.LoopFunc(func(i int) {
		b[i] = a[i] * a[i]
	})); err != nil {
		return err
	}
	GetLogger().Debug("squares: %v", b)
	return nil
}

// runSumReduction mirrors the spec's sum-reduction scenario.
func runSumReduction(ctx context.Context) error {
	a := make([]float64, 100)
	for i := range a {
		a[i] = float64(i + 1)
	}

	body := parallel.NewReduceBody(
		func(i int) float64 { return a[i] },
		func(x, y float64) float64 { return x + y },
	)
	sum, err := parallel.Reduce(100, body)
	if err != nil {
		return err
	}
	GetLogger().Debug("sum: %.1f", sum)
	return nil
}

// runNonCommutativeConcat mirrors the spec's non-commutative-combine scenario.
func runNonCommutativeConcat(ctx context.Context) error {
	body := parallel.NewReduceBody(
		func(i int) []int { return []int{i} },
		func(x, y []int) []int {
			out := make([]int, 0, len(x)+len(y))
			out = append(out, x...)
			out = append(out, y...)
			return out
		},
	)
	list, err := parallel.ReduceChunk(0, 10, 1, 3, body)
	if err != nil {
		return err
	}
	GetLogger().Debug("concat: %v", list)
	return nil
}

// runStrided mirrors the spec's strided-loop scenario.
func runStrided(ctx context.Context) error {
	var visited []int
	if err := parallel.LoopStep(2, 11, 3, parallel.LoopFunc(func(i int) {
		visited = append(visited, i)
	})); err != nil {
		return err
	}
	sort.Ints(visited)
	GetLogger().Debug("strided: %v", visited)
	return nil
}

// runNested mirrors the spec's nested-loop scenario: the outer body calls
// the engine again, demonstrating the Nested Execution Guard.
func runNested(ctx context.Context) error {
	const n, m = 8, 16
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, m)
	}

	err := parallel.Loop(n, parallel.LoopFunc(func(i int) {
		row := out[i]
		if innerErr := parallel.Loop(m, parallel.LoopFunc(func(j int) {
			row[j] = i*m + j
		})); innerErr != nil {
			GetLogger().Error("nested scenario row %d failed: %v", i, innerErr)
		}
	}))
	if err != nil {
		return err
	}
	GetLogger().Debug("nested: %dx%d grid populated", n, m)
	return nil
}
