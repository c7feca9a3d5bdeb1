// Package dds builds dynamic decoupling sequences: time-ordered schedules of
// idealized rotation pulses applied to a quantum system to suppress
// decoherence.
//
// A [Sequence] holds a duration, an ordered list of time offsets and three
// parallel rotation streams (Rabi rotation, azimuthal angle, detuning
// rotation). It is validated and boundary-normalized once by [New] and is
// read-only afterwards, so it can be shared between goroutines freely.
//
// # Predefined schemes
//
// The package ships generators for the common decoupling families:
//
//   - Ramsey and Spin echo
//   - Carr-Purcell (CP) and Carr-Purcell-Meiboom-Gill (CPMG)
//   - Uhrig and periodic single-axis sequences
//   - Walsh single-axis sequences selected by Paley order
//   - Quadratic (nested Uhrig) sequences
//   - X- and XY-concatenated sequences
//
// Each generator has its own constructor, e.g. [NewCarrPurcellMeiboomGill],
// and all of them are reachable by name through [Generate]:
//
//	params := dds.DefaultParams()
//	params.NumberOfOffsets = 4
//	seq, err := dds.Generate(dds.SchemeCarrPurcellMeiboomGill, params)
//
// # Boundary normalization
//
// Every sequence starts at offset 0 and ends at its duration. Missing
// boundary offsets are inserted with zero rotations, or with a quarter-turn
// Rabi rotation when [WithPrePostRotation] is set. With pre/post rotation
// enabled, existing boundary Rabi rotations are overwritten with π/2.
//
// # Errors
//
// All validation failures are reported as [*ArgumentError], which wraps
// [ErrInvalidArgument].
package dds
