package dds

// Shared bounds for sequences and for the controls derived from them.
const (
	// UpperBoundRabiRate is the maximum Rabi rate magnitude a converted
	// control may use.
	UpperBoundRabiRate = 1e10

	// UpperBoundDetuningRate is the maximum detuning rate magnitude.
	UpperBoundDetuningRate = UpperBoundRabiRate

	// UpperBoundDuration is the maximum duration of a control.
	UpperBoundDuration = 1e6

	// LowerBoundDuration is the minimum duration of a control.
	LowerBoundDuration = 1e-12

	// UpperBoundOffsets is the maximum number of offsets a caller may
	// supply to [New].
	UpperBoundOffsets = 10000

	// UpperBoundPaleyOrder is the largest supported Walsh Paley order.
	UpperBoundPaleyOrder = 2000
)
