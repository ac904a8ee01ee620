// Package dataset reshapes labeled sample data before it reaches a model.
//
// Data travels in two forms: a Dataset maps each label to its samples, and
// Arrays holds parallel sample and label slices. Every function returns new
// containers and never mutates its inputs. Shuffling functions take their
// generator from options (WithRand, WithSeed); without one they build a
// fresh generator seeded with DefaultSeed, so a call is reproducible on its
// own and safe to run concurrently with other calls.
package dataset
