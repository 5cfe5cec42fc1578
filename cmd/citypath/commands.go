package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citypath/benchmark"
	"github.com/katalvlaran/citypath/dot"
	"github.com/katalvlaran/citypath/search"
)

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List locations with their index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, id := range a.graph.Locations() {
				if _, err := fmt.Fprintf(out, "%3d  %s\n", i, id); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var from, to, algo string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path between two locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			algs, err := parseAlgorithms(algo)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, alg := range algs {
				res, err := a.engine.Search(alg, from, to)
				if err != nil {
					return err
				}
				a.logger.Debug("search finished", "algorithm", alg.String(), "expanded", res.Expanded, "elapsed", res.Elapsed)
				if !res.Reachable() {
					fmt.Fprintf(out, "%-19s no path from %s to %s\n", alg, from, to)
					continue
				}
				fmt.Fprintf(out, "%-19s %s (%d%s, %d expanded)\n",
					alg, strings.Join(res.Path, " -> "), res.Distance, a.unit(), res.Expanded)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start location")
	cmd.Flags().StringVar(&to, "to", "", "goal location")
	cmd.Flags().StringVar(&algo, "algo", "all", "any-path, exhaustive-shortest, dijkstra-optimal or all")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newBenchCmd(a *app) *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run every algorithm on the dataset pairs and print the comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pairs, err := a.data.Pairs()
			if err != nil {
				return err
			}
			r, err := benchmark.NewRunner(a.engine,
				benchmark.WithRepetitions(repeat),
				benchmark.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			rep, err := r.Run(pairs)
			if err != nil {
				return err
			}
			if err = rep.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if v := rep.Check(); len(v) > 0 {
				return fmt.Errorf("bench: %d expectation(s) violated", len(v))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 1, "runs per search; times are averaged")

	return cmd
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the direct-distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := a.graph.DistanceMatrix()
			labels := m.Labels()
			t := benchmark.Table{Header: append([]string{""}, labels...)}
			for i, label := range labels {
				row := make([]string, 0, len(labels)+1)
				row = append(row, label)
				for j := range labels {
					w, ok := m.At(i, j)
					if !ok {
						row = append(row, benchmark.Unreachable)
						continue
					}
					row = append(row, strconv.FormatInt(w, 10))
				}
				t.Rows = append(t.Rows, row)
			}

			return t.Render(cmd.OutOrStdout())
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	var from, to, algo string
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the network as Graphviz DOT, optionally highlighting a path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []dot.Option{dot.WithName(a.data.Name)}
			if from != "" || to != "" {
				alg, err := search.ParseAlgorithm(algo)
				if err != nil {
					return fmt.Errorf("--algo: %w", err)
				}
				res, err := a.engine.Search(alg, from, to)
				if err != nil {
					return err
				}
				if !res.Reachable() {
					a.logger.Warn("no path to highlight", "from", from, "to", to)
				}
				opts = append(opts, dot.WithPath(res.Path))
			}

			out, err := dot.Render(a.graph, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start of the highlighted path")
	cmd.Flags().StringVar(&to, "to", "", "goal of the highlighted path")
	cmd.Flags().StringVar(&algo, "algo", search.DijkstraOptimal.String(), "algorithm for the highlighted path")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}
