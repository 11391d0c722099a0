// Package trustsim runs the multiscale trust-formation simulation and
// scores every step with rho.
//
// Micro layer: an N×N trust matrix T with T[i][j] in [0,1] (how much i
// trusts j). It starts at 0.5 everywhere off the diagonal and 0 on it.
// Each step draws InteractionsPerStep ordered pairs (i, j), i != j, and
// applies them in draw order: with probability PlunderProb the pair is a
// plunder event and T[i][j] erodes by DecayRate, otherwise it is voluntary
// exchange and T[i][j] grows toward 1 by GrowthRate.
//
// Macro layer: T is clipped at 0 and normalized column-wise (divisor
// colsum + 1e-6) into an influence matrix W, which is scored with a
// rho.Evaluator and classified with a band.Bander. Snapshot 0 describes the
// initial state, so a finished run carries Steps+1 snapshots.
//
// Randomness is owned by the Engine: one *rand.Rand per run, seeded from
// Config.Seed (or injected with WithRand). The same Config and seed always
// reproduce the same series bit for bit. Independent runs can be executed
// in parallel with RunAll; a single Engine is not safe for concurrent use.
package trustsim
