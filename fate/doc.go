// Package fate turns a user identifier and ambient entropy into launch
// parameters for a moon-block toss.
//
// The computation is identifier-seeded but never fully reproducible: a
// chaotic logistic map is fed by the identity hash, a geo or temporal flux
// term and the wall clock, and the final parameters also mix in an
// independent uniform draw. All acquisition of time and randomness goes
// through the Clock and Spirit seams so the math can be tested with fixed
// inputs.
package fate
