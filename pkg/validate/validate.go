// Package validate checks routed-net output artifacts against the
// routing description they were produced from. It re-derives every
// chain by following links from the input drivers and enforces the
// structural contract: paired drivers, no reuse, no cycles, and every
// free pin routed exactly once.
//
// Unlike the routers, which trust their preconditions, this package is
// deliberately strict: every violation is diagnosed and mapped to one
// of the sentinel errors below.
package validate

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceRoute/pkg/chip"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/def"
	"github.com/OpenTraceLab/OpenTraceRoute/pkg/geom"
)

// Validation error taxonomy. Format errors mean the artifact could not
// be understood at all; the others are structural violations of the
// chain contract.
var (
	ErrFormat      = errors.New("validate: malformed output artifact")
	ErrDriverCount = errors.New("validate: invalid driver pin usage")
	ErrDriverReuse = errors.New("validate: driver pin used more than once")
	ErrCycle       = errors.New("validate: pin routed more than once")
	ErrBrokenChain = errors.New("validate: chain does not reach an output driver")
	ErrCoverage    = errors.New("validate: free pins not routed exactly once")
)

const (
	driverPrefix = "DRIVERPIN_"

	// Driver naming convention: indices 0..15 are input drivers,
	// higher indices are output drivers.
	maxInputIndex = 15

	minChains = 2
	maxChains = 16
)

// DriverIndex extracts the index from a driver pin name. The second
// return is false for non-driver names.
func DriverIndex(name string) (int, bool) {
	s, ok := strings.CutPrefix(name, driverPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

// IsInputDriver reports whether the name encodes an input driver.
func IsInputDriver(name string) bool {
	i, ok := DriverIndex(name)
	return ok && i <= maxInputIndex
}

// IsOutputDriver reports whether the name encodes an output driver.
func IsOutputDriver(name string) bool {
	i, ok := DriverIndex(name)
	return ok && i > maxInputIndex
}

// Chain is one re-derived path from an input driver to an output
// driver, with its Manhattan length.
type Chain struct {
	Pins   []*chip.Pin
	Length int
}

// Report summarizes a successful validation.
type Report struct {
	Chains []Chain
	Stats  chip.Statistics
	Spread int // longest chain minus shortest chain
}

// ChainLengths returns the per-chain lengths in report order.
func (r *Report) ChainLengths() []int {
	out := make([]int, len(r.Chains))
	for i, c := range r.Chains {
		out[i] = c.Length
	}
	return out
}

// CheckFiles validates the output artifact at outputPath against the
// routing description at inputPath.
func CheckFiles(inputPath, outputPath string) (*Report, error) {
	parser, err := def.NewParser()
	if err != nil {
		return nil, err
	}
	file, err := parser.ParseFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", inputPath, err)
	}

	lp, err := def.NewLinksParser()
	if err != nil {
		return nil, err
	}
	linksFile, err := lp.ParseFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	links, err := linksFile.Links()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return Check(file, links)
}

// Check validates parsed links against a parsed routing description.
func Check(file *def.File, links def.Links) (*Report, error) {
	inputs, outputs, free, err := file.Build()
	if err != nil {
		return nil, fmt.Errorf("input description: %w", err)
	}

	index := make(map[string]*chip.Pin, len(inputs)+len(outputs)+len(free))
	for _, pins := range [][]*chip.Pin{inputs, outputs, free} {
		for _, p := range pins {
			index[p.Name] = p
		}
	}

	if err := checkDriverUsage(links); err != nil {
		return nil, err
	}

	chains, err := extractChains(links, index)
	if err != nil {
		return nil, err
	}

	if err := checkCoverage(chains, free); err != nil {
		return nil, err
	}

	report := &Report{Chains: chains}
	lengths := report.ChainLengths()
	report.Stats = chip.Summarize(lengths)
	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths[1:] {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	report.Spread = maxLen - minLen
	return report, nil
}

// checkDriverUsage enforces the driver-side contract: matching counts
// of input and output drivers, a chain count within bounds, and no
// driver used twice.
func checkDriverUsage(links def.Links) error {
	inputsUsed := 0
	outputSeen := make(map[string]bool)
	for from, to := range links {
		if IsInputDriver(from) {
			inputsUsed++
		}
		if IsOutputDriver(to) {
			if outputSeen[to] {
				return fmt.Errorf("%w: output driver %s terminates two chains", ErrDriverReuse, to)
			}
			outputSeen[to] = true
		}
	}

	if inputsUsed != len(outputSeen) {
		return fmt.Errorf("%w: %d input drivers vs %d output drivers",
			ErrDriverCount, inputsUsed, len(outputSeen))
	}
	if inputsUsed < minChains || inputsUsed > maxChains {
		return fmt.Errorf("%w: %d chains, want between %d and %d",
			ErrDriverCount, inputsUsed, minChains, maxChains)
	}
	return nil
}

// extractChains walks the links from every input driver until an
// output driver is reached. Chains come back ordered by input driver
// index so reports are deterministic.
func extractChains(links def.Links, index map[string]*chip.Pin) ([]Chain, error) {
	var starts []string
	for from := range links {
		if IsInputDriver(from) {
			starts = append(starts, from)
		}
	}
	sort.Slice(starts, func(a, b int) bool {
		ia, _ := DriverIndex(starts[a])
		ib, _ := DriverIndex(starts[b])
		return ia < ib
	})

	visited := make(map[string]bool)
	chains := make([]Chain, 0, len(starts))
	for _, start := range starts {
		pin, ok := index[start]
		if !ok {
			return nil, fmt.Errorf("%w: unknown pin %q", ErrFormat, start)
		}
		if visited[start] {
			return nil, fmt.Errorf("%w: %s (used as chain start twice)", ErrCycle, start)
		}
		visited[start] = true
		chain := Chain{Pins: []*chip.Pin{pin}}

		cur := pin
		for !IsOutputDriver(cur.Name) {
			nextName, ok := links[cur.Name]
			if !ok {
				return nil, fmt.Errorf("%w: dead end at %s (chain from %s)",
					ErrBrokenChain, cur.Name, start)
			}
			next, ok := index[nextName]
			if !ok {
				return nil, fmt.Errorf("%w: unknown pin %q", ErrFormat, nextName)
			}
			if visited[nextName] {
				return nil, fmt.Errorf("%w: %s (chain from %s)", ErrCycle, nextName, start)
			}
			visited[nextName] = true
			chain.Length += geom.Manhattan(cur.At, next.At)
			chain.Pins = append(chain.Pins, next)
			cur = next
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// checkCoverage verifies that the chains contain every free pin from
// the input description and nothing routes a pin twice (the walk
// already rejects revisits, so presence is the remaining condition).
func checkCoverage(chains []Chain, free []*chip.Pin) error {
	routed := make(map[string]bool)
	for _, c := range chains {
		for _, p := range c.Pins {
			if _, isDriver := DriverIndex(p.Name); !isDriver {
				routed[p.Name] = true
			}
		}
	}

	for _, p := range free {
		if !routed[p.Name] {
			return fmt.Errorf("%w: pin %s is not part of any chain", ErrCoverage, p.Name)
		}
	}
	return nil
}
