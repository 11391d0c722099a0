// SPDX-License-Identifier: MIT

package band

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rholaw/rho"
)

// Scale lists the inclusive upper bounds of Green, Yellow, Orange and Red.
type Scale [Count - 1]float64

// GraphScale returns the default scale for graph rho. Red ends at
// rho.CriticalRho.
func GraphScale() Scale {
	return Scale{0.10, 0.30, 0.50, rho.CriticalRho}
}

// Validate checks that every bound is finite, non-negative and strictly
// greater than the previous one.
func (s Scale) Validate() error {
	prev := math.Inf(-1)
	for k, cut := range s {
		if math.IsNaN(cut) || math.IsInf(cut, 0) || cut < 0 {
			return fmt.Errorf("cut[%d]=%g: %w", k, cut, ErrBadScale)
		}
		if cut <= prev {
			return fmt.Errorf("cut[%d]=%g <= cut[%d]=%g: %w", k, cut, k-1, prev, ErrBadScale)
		}
		prev = cut
	}

	return nil
}

// Bander classifies values against a validated Scale.
type Bander struct {
	scale Scale
}

// NewBander validates scale and binds it.
func NewBander(scale Scale) (*Bander, error) {
	if err := scale.Validate(); err != nil {
		return nil, fmt.Errorf("NewBander: %w", err)
	}

	return &Bander{scale: scale}, nil
}

// Default returns a Bander over GraphScale.
func Default() *Bander {
	return &Bander{scale: GraphScale()}
}

// Scale returns the bound scale.
func (b *Bander) Scale() Scale { return b.scale }

// Classify returns the first band whose upper bound is >= v, or Black.
// Negative values and NaN classify as Green.
// Complexity: O(Count).
func (b *Bander) Classify(v float64) Band {
	if math.IsNaN(v) || v < 0 {
		return Green
	}
	for k, cut := range b.scale {
		if v <= cut {
			return Band(k)
		}
	}

	return Black
}

// Range returns the half-open interval (lo, hi] covered by band x. Green
// starts at 0 (inclusive) and Black's upper end is +Inf.
func (b *Bander) Range(x Band) (lo, hi float64) {
	switch {
	case x <= Green:
		return 0, b.scale[0]
	case x >= Black:
		return b.scale[len(b.scale)-1], math.Inf(1)
	default:
		return b.scale[x-1], b.scale[x]
	}
}
