// Package builder defines shared constants used by the matrix constructors,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodStarPlunder is the canonical name for the StarPlunder constructor.
	MethodStarPlunder = "StarPlunder"
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
)

//-----------------------------------------------------------------------------
// Topology Defaults
//-----------------------------------------------------------------------------

// HubIndex is the node index of the star–plunder hub.
const HubIndex = 0

// MinNodes is the minimum node count for every constructor.
const MinNodes = 2

// MinProbability and MaxProbability bound the plunder parameter.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// DemoPlunderGrid is the canonical sweep of plunder values used by the
// star–plunder demo.
var DemoPlunderGrid = []float64{0.0, 0.2, 0.5, 0.8, 0.9, 1.0}
