// Package dataset loads location catalogues, road lists and benchmark pairs
// from YAML or JSON documents and turns them into a *core.Graph.
//
// Document shape:
//
//	name: turkey
//	unit: km
//	locations: [Istanbul, Ankara, ...]
//	edges:
//	  - {from: Istanbul, to: Ankara, distance: 449}
//	pairs:
//	  - {start: Istanbul, goal: Diyarbakir}
//
// Locations are registered in listed order, so their dense indices follow the
// document. Every edge endpoint must be declared under locations.
//
// Default returns the bundled Turkish road network: 17 cities, 88 roads and
// eight benchmark pairs.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/citypath/benchmark"
	"github.com/katalvlaran/citypath/core"
)

var (
	// ErrEmptyDataset is returned when a document declares no locations.
	ErrEmptyDataset = errors.New("dataset: no locations declared")

	// ErrMalformed wraps YAML/JSON decoding failures.
	ErrMalformed = errors.New("dataset: malformed document")

	// ErrUndeclaredLocation indicates an edge endpoint missing from locations.
	ErrUndeclaredLocation = errors.New("dataset: edge uses undeclared location")

	// ErrUnknownPairLocation indicates a pair endpoint missing from locations.
	ErrUnknownPairLocation = errors.New("dataset: pair uses unknown location")
)

//go:embed turkey.yaml
var turkeyYAML []byte

// Road is one undirected, weighted connection.
type Road struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int64  `json:"distance"`
}

// Dataset is a decoded document.
type Dataset struct {
	Name      string           `json:"name"`
	Unit      string           `json:"unit,omitempty"`
	Locations []string         `json:"locations"`
	Roads     []Road           `json:"edges"`
	Queries   []benchmark.Pair `json:"pairs,omitempty"`
}

// Default returns the bundled Turkish road network.
func Default() (*Dataset, error) {
	d, err := Parse(turkeyYAML)
	if err != nil {
		return nil, fmt.Errorf("dataset: bundled turkey.yaml: %w", err)
	}

	return d, nil
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes a YAML or JSON document and validates its structure.
// Unknown keys are rejected, so a misspelt section such as "edge:" fails
// instead of silently yielding an empty road list. Edge weights are validated
// later by Graph.
func Parse(data []byte) (*Dataset, error) {
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var d Dataset
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(d.Locations) == 0 {
		return nil, ErrEmptyDataset
	}

	declared := d.declared()
	for i, r := range d.Roads {
		if !declared[r.From] {
			return nil, fmt.Errorf("%w: edge %d from %q", ErrUndeclaredLocation, i+1, r.From)
		}
		if !declared[r.To] {
			return nil, fmt.Errorf("%w: edge %d to %q", ErrUndeclaredLocation, i+1, r.To)
		}
	}

	return &d, nil
}

// Graph builds a fresh graph: locations first, in listed order, then roads.
func (d *Dataset) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range d.Locations {
		if err := g.AddLocation(id); err != nil {
			return nil, fmt.Errorf("dataset %s: %w", d.Name, err)
		}
	}
	for i, r := range d.Roads {
		if err := g.AddEdge(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("dataset %s: edge %d: %w", d.Name, i+1, err)
		}
	}

	return g, nil
}

// Pairs returns a copy of the benchmark pairs after checking that every
// endpoint is a declared location.
func (d *Dataset) Pairs() ([]benchmark.Pair, error) {
	declared := d.declared()
	for i, p := range d.Queries {
		for _, id := range [2]string{p.Start, p.Goal} {
			if !declared[id] {
				return nil, fmt.Errorf("%w: pair %d %q", ErrUnknownPairLocation, i+1, id)
			}
		}
	}

	return append([]benchmark.Pair(nil), d.Queries...), nil
}

func (d *Dataset) declared() map[string]bool {
	m := make(map[string]bool, len(d.Locations))
	for _, id := range d.Locations {
		m[id] = true
	}

	return m
}
