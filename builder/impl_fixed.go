// SPDX-License-Identifier: MIT
// Package: pipeplan/builder
//
// impl_fixed.go — deterministic topologies: Path(n), Cycle(n), Complete(n).
//
// Contract:
//   • Path n ≥ 2, Cycle n ≥ 3, Complete n ≥ 1 (else ErrTooFewVertices).
//   • Vertices are added via cfg.idFn in ascending index order.
//   • Edges are emitted in ascending (i, j) order.
//   • Weights come from cfg.weightFn(cfg.rng); with no rng the default
//     UniformWeightFn yields its minimum, so fixtures work unseeded.
//
// Complexity:
//   • Path/Cycle: O(n). Complete: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pipeplan/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path returns a Constructor that builds the path P_n: 0—1—…—(n-1).
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(b, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addWeighted(b, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(b, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addWeighted(b, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n (every pair connected once).
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(b, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addWeighted(b, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
func addVertices(b *core.Builder, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		if err := b.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

func addWeighted(b *core.Builder, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
