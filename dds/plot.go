package dds

// PlotData holds flattened arrays for drawing a sequence as a train of
// ticks. All four slices have length 3 * NumberOfOffsets.
type PlotData struct {
	Times             []float64
	RabiRotations     []float64
	AzimuthalAngles   []float64
	DetuningRotations []float64
}

// PlotArrays returns the sequence as ticks: each offset is repeated three
// times and each rotation becomes the triplet (0, value, 0).
func (s *Sequence) PlotArrays() PlotData {
	n := len(s.offsets)
	out := PlotData{
		Times:             make([]float64, 3*n),
		RabiRotations:     make([]float64, 3*n),
		AzimuthalAngles:   make([]float64, 3*n),
		DetuningRotations: make([]float64, 3*n),
	}

	for i, t := range s.offsets {
		j := 3 * i
		out.Times[j], out.Times[j+1], out.Times[j+2] = t, t, t
		out.RabiRotations[j+1] = s.rabiRotations[i]
		out.AzimuthalAngles[j+1] = s.azimuthalAngles[i]
		out.DetuningRotations[j+1] = s.detuningRotations[i]
	}

	return out
}
