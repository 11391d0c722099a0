// SPDX-License-Identifier: MIT

package trustsim

import (
	"fmt"

	"github.com/katalvlaran/rholaw/band"
)

// Snapshot is the macro state after a step (Step 0 is the initial state).
type Snapshot struct {
	Step int       `json:"step"`
	A    float64   `json:"authority"`
	D    float64   `json:"diversity"`
	Rho  float64   `json:"rho"`
	Band band.Band `json:"band"`
}

// Result is the record of one run. A finished run has
// len(Snapshots) == Config.Steps+1.
type Result struct {
	Config Config `json:"config"`
	// Seed is the seed the stream was built from; it equals *Config.Seed
	// when one was given, and the time-derived seed otherwise.
	Seed int64 `json:"seed"`
	// ExternalRand is true when the stream was injected with WithRand and
	// Seed therefore carries no information.
	ExternalRand bool       `json:"external_rand,omitempty"`
	Snapshots    []Snapshot `json:"snapshots"`
}

// RhoSeries returns rho per snapshot.
func (r *Result) RhoSeries() []float64 {
	out := make([]float64, len(r.Snapshots))
	for k, s := range r.Snapshots {
		out[k] = s.Rho
	}

	return out
}

// AuthoritySeries returns A per snapshot.
func (r *Result) AuthoritySeries() []float64 {
	out := make([]float64, len(r.Snapshots))
	for k, s := range r.Snapshots {
		out[k] = s.A
	}

	return out
}

// DiversitySeries returns D per snapshot.
func (r *Result) DiversitySeries() []float64 {
	out := make([]float64, len(r.Snapshots))
	for k, s := range r.Snapshots {
		out[k] = s.D
	}

	return out
}

// BandSeries returns the band per snapshot.
func (r *Result) BandSeries() []band.Band {
	out := make([]band.Band, len(r.Snapshots))
	for k, s := range r.Snapshots {
		out[k] = s.Band
	}

	return out
}

// Summary condenses a run to its endpoints and rho range.
type Summary struct {
	N           int       `json:"n"`
	Steps       int       `json:"steps"`
	PlunderProb float64   `json:"plunder_prob"`
	Seed        int64     `json:"seed"`
	Initial     Snapshot  `json:"initial"`
	Final       Snapshot  `json:"final"`
	MinRho      float64   `json:"min_rho"`
	MaxRho      float64   `json:"max_rho"`
	WorstBand   band.Band `json:"worst_band"`
}

// Summary returns the run summary. An empty result yields the zero Summary
// apart from the configuration fields.
func (r *Result) Summary() Summary {
	s := Summary{
		N:           r.Config.N,
		Steps:       r.Config.Steps,
		PlunderProb: r.Config.PlunderProb,
		Seed:        r.Seed,
	}
	if len(r.Snapshots) == 0 {
		return s
	}

	s.Initial = r.Snapshots[0]
	s.Final = r.Snapshots[len(r.Snapshots)-1]
	s.MinRho, s.MaxRho = s.Initial.Rho, s.Initial.Rho
	s.WorstBand = s.Initial.Band
	for _, snap := range r.Snapshots[1:] {
		if snap.Rho < s.MinRho {
			s.MinRho = snap.Rho
		}
		if snap.Rho > s.MaxRho {
			s.MaxRho = snap.Rho
		}
		if snap.Band > s.WorstBand {
			s.WorstBand = snap.Band
		}
	}

	return s
}

// String renders the summary as a short multi-line block.
func (s Summary) String() string {
	return fmt.Sprintf("N=%d, steps=%d, p_base=%.3f, seed=%d\n"+
		"  rho(0)     = %.6f  band=%s\n"+
		"  rho(final) = %.6f  band=%s\n"+
		"  rho(min)   = %.6f\n"+
		"  rho(max)   = %.6f  worst=%s\n",
		s.N, s.Steps, s.PlunderProb, s.Seed,
		s.Initial.Rho, s.Initial.Band,
		s.Final.Rho, s.Final.Band,
		s.MinRho,
		s.MaxRho, s.WorstBand)
}
