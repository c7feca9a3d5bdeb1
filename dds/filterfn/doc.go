// Package filterfn computes the noise filter function of a dynamic
// decoupling sequence.
//
// The filter function F(ω) = |∫ y(t) e^{iωt} dt|² measures how strongly a
// sequence passes dephasing noise at angular frequency ω. The switching
// function y(t) starts at +1 and changes sign at every pulse whose Rabi
// rotation is an odd multiple of π; detuning pulses and quarter-turn
// boundary rotations leave it unchanged.
//
// # Usage
//
//	seq, _ := dds.NewCarrPurcellMeiboomGill(1e-3, 8)
//	resp, err := filterfn.Compute(seq, filterfn.WithSamples(4096))
//	for k, w := range resp.AngularFrequencies {
//	    fmt.Println(w, resp.Values[k])
//	}
//
// The integral is evaluated by zero-padded FFT of the sampled switching
// function, so the frequency grid spacing is 2π / (padding · duration).
package filterfn
