package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/dataset"
	"github.com/katalvlaran/citypath/search"
)

// app is the state shared by all subcommands, filled in before each run.
type app struct {
	datasetPath string
	verbose     bool

	logger *slog.Logger
	data   *dataset.Dataset
	graph  *core.Graph
	engine *search.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "citypath",
		Short:        "Compare any-path, exhaustive and Dijkstra searches on a road network",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.datasetPath, "dataset", "", "YAML or JSON dataset file (default: bundled Turkish network)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every search at debug level")

	root.AddCommand(
		newLocationsCmd(a),
		newSearchCmd(a),
		newBenchCmd(a),
		newMatrixCmd(a),
		newDotCmd(a),
	)

	return root
}

// load configures logging and builds the graph and engine from the dataset.
func (a *app) load(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	var err error
	if a.datasetPath == "" {
		a.data, err = dataset.Default()
	} else {
		a.data, err = dataset.LoadFile(a.datasetPath)
	}
	if err != nil {
		return err
	}

	if a.graph, err = a.data.Graph(); err != nil {
		return err
	}
	if a.engine, err = search.New(a.graph); err != nil {
		return err
	}
	a.logger.Debug("dataset loaded",
		"name", a.data.Name,
		"locations", a.graph.LocationCount(),
		"edges", a.graph.EdgeCount(),
	)

	return nil
}

// unit returns the dataset's distance unit with a leading space, or "".
func (a *app) unit() string {
	if a.data.Unit == "" {
		return ""
	}

	return " " + a.data.Unit
}

// parseAlgorithms accepts a single algorithm name or "all".
func parseAlgorithms(name string) ([]search.Algorithm, error) {
	if name == "all" {
		return search.Algorithms(), nil
	}
	alg, err := search.ParseAlgorithm(name)
	if err != nil {
		return nil, fmt.Errorf("--algo: %w", err)
	}

	return []search.Algorithm{alg}, nil
}
