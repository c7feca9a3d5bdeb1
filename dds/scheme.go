package dds

import (
	"sort"
	"strings"
)

// Scheme names a predefined sequence family.
type Scheme string

const (
	SchemeRamsey                 Scheme = "Ramsey"
	SchemeSpinEcho               Scheme = "Spin echo"
	SchemeCarrPurcell            Scheme = "Carr-Purcell"
	SchemeCarrPurcellMeiboomGill Scheme = "Carr-Purcell-Meiboom-Gill"
	SchemeUhrigSingleAxis        Scheme = "Uhrig single-axis"
	SchemePeriodicSingleAxis     Scheme = "Periodic single-axis"
	SchemeWalshSingleAxis        Scheme = "Walsh single-axis"
	SchemeQuadratic              Scheme = "Quadratic"
	SchemeXConcatenated          Scheme = "X concatenated"
	SchemeXYConcatenated         Scheme = "XY concatenated"
)

var schemes = []Scheme{
	SchemeRamsey,
	SchemeSpinEcho,
	SchemeCarrPurcell,
	SchemeCarrPurcellMeiboomGill,
	SchemeUhrigSingleAxis,
	SchemePeriodicSingleAxis,
	SchemeWalshSingleAxis,
	SchemeQuadratic,
	SchemeXConcatenated,
	SchemeXYConcatenated,
}

var schemeAliases = map[string]Scheme{
	"ramsey":                    SchemeRamsey,
	"spin-echo":                 SchemeSpinEcho,
	"cp":                        SchemeCarrPurcell,
	"carr-purcell":              SchemeCarrPurcell,
	"cpmg":                      SchemeCarrPurcellMeiboomGill,
	"carr-purcell-meiboom-gill": SchemeCarrPurcellMeiboomGill,
	"uhrig":                     SchemeUhrigSingleAxis,
	"uhrig-single-axis":         SchemeUhrigSingleAxis,
	"periodic":                  SchemePeriodicSingleAxis,
	"periodic-single-axis":      SchemePeriodicSingleAxis,
	"walsh":                     SchemeWalshSingleAxis,
	"walsh-single-axis":         SchemeWalshSingleAxis,
	"quadratic":                 SchemeQuadratic,
	"x-concatenated":            SchemeXConcatenated,
	"xy-concatenated":           SchemeXYConcatenated,
}

// Schemes returns every predefined scheme in catalog order.
func Schemes() []Scheme {
	return append([]Scheme(nil), schemes...)
}

// SchemeNames returns the canonical scheme names joined by ", ".
func SchemeNames() string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ParseScheme resolves a canonical scheme name (case-insensitive) or one of
// its short aliases such as "cpmg" or "xy-concatenated".
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range schemes {
		if strings.ToLower(string(s)) == key {
			return s, nil
		}
	}
	if s, ok := schemeAliases[key]; ok {
		return s, nil
	}
	return "", unknownScheme(name)
}

// Aliases returns the short names ParseScheme accepts for s, sorted.
func (s Scheme) Aliases() []string {
	var out []string
	for alias, target := range schemeAliases {
		if target == s {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func unknownScheme(name string) error {
	return argumentError("unknown predefined sequence scheme; allowed schemes are: "+SchemeNames(),
		map[string]any{"sequence_name": name})
}

// Params holds every parameter a predefined scheme may use. Each scheme
// reads only the fields it recognizes; see [Generate].
type Params struct {
	Duration           float64
	NumberOfOffsets    int
	NumberInnerOffsets int
	NumberOuterOffsets int
	PaleyOrder         int
	ConcatenationOrder int
	PrePostRotation    bool
	Name               string
}

// DefaultParams returns a duration of 1 and every count and order set to 1.
func DefaultParams() Params {
	return Params{
		Duration:           1,
		NumberOfOffsets:    1,
		NumberInnerOffsets: 1,
		NumberOuterOffsets: 1,
		PaleyOrder:         1,
		ConcatenationOrder: 1,
	}
}

// Parameter names as reported in errors.
const (
	paramNumberOfOffsets    = "number_of_offsets"
	paramNumberInnerOffsets = "number_inner_offsets"
	paramNumberOuterOffsets = "number_outer_offsets"
	paramPaleyOrder         = "paley_order"
	paramConcatenationOrder = "concatenation_order"
)

// schemeParams lists the scheme-specific parameters each scheme accepts.
// Duration, pre/post rotation and name are accepted by all schemes.
var schemeParams = map[Scheme][]string{
	SchemeRamsey:                 nil,
	SchemeSpinEcho:               nil,
	SchemeCarrPurcell:            {paramNumberOfOffsets},
	SchemeCarrPurcellMeiboomGill: {paramNumberOfOffsets},
	SchemeUhrigSingleAxis:        {paramNumberOfOffsets},
	SchemePeriodicSingleAxis:     {paramNumberOfOffsets},
	SchemeWalshSingleAxis:        {paramPaleyOrder},
	SchemeQuadratic:              {paramNumberInnerOffsets, paramNumberOuterOffsets},
	SchemeXConcatenated:          {paramConcatenationOrder},
	SchemeXYConcatenated:         {paramConcatenationOrder},
}

// Parameters returns the scheme-specific parameter names accepted by s.
func (s Scheme) Parameters() []string {
	return append([]string(nil), schemeParams[s]...)
}

type paramValue struct {
	name  string
	value int
}

// changed returns the scheme-specific parameters of p that differ from
// DefaultParams, in declaration order.
func (p Params) changed() []paramValue {
	d := DefaultParams()
	all := []struct {
		name      string
		got, want int
	}{
		{paramNumberOfOffsets, p.NumberOfOffsets, d.NumberOfOffsets},
		{paramNumberInnerOffsets, p.NumberInnerOffsets, d.NumberInnerOffsets},
		{paramNumberOuterOffsets, p.NumberOuterOffsets, d.NumberOuterOffsets},
		{paramPaleyOrder, p.PaleyOrder, d.PaleyOrder},
		{paramConcatenationOrder, p.ConcatenationOrder, d.ConcatenationOrder},
	}

	var out []paramValue
	for _, f := range all {
		if f.got != f.want {
			out = append(out, paramValue{f.name, f.got})
		}
	}
	return out
}

// Generate builds the predefined sequence named by scheme.
//
// Parameters that differ from [DefaultParams] but are not used by the
// scheme are rejected rather than ignored.
func Generate(scheme Scheme, p Params) (*Sequence, error) {
	accepted, ok := schemeParams[scheme]
	if !ok {
		return nil, unknownScheme(string(scheme))
	}

	for _, pv := range p.changed() {
		if !contains(accepted, pv.name) {
			return nil, &ArgumentError{
				Message: "unrecognized parameter for scheme " + string(scheme),
				Fields:  map[string]any{pv.name: pv.value},
				Extras:  map[string]any{"accepted_parameters": accepted},
			}
		}
	}

	opts := []Option{WithPrePostRotation(p.PrePostRotation), WithName(p.Name)}

	switch scheme {
	case SchemeRamsey:
		return NewRamsey(p.Duration, opts...)
	case SchemeSpinEcho:
		return NewSpinEcho(p.Duration, opts...)
	case SchemeCarrPurcell:
		return NewCarrPurcell(p.Duration, p.NumberOfOffsets, opts...)
	case SchemeCarrPurcellMeiboomGill:
		return NewCarrPurcellMeiboomGill(p.Duration, p.NumberOfOffsets, opts...)
	case SchemeUhrigSingleAxis:
		return NewUhrigSingleAxis(p.Duration, p.NumberOfOffsets, opts...)
	case SchemePeriodicSingleAxis:
		return NewPeriodicSingleAxis(p.Duration, p.NumberOfOffsets, opts...)
	case SchemeWalshSingleAxis:
		return NewWalshSingleAxis(p.Duration, p.PaleyOrder, opts...)
	case SchemeQuadratic:
		return NewQuadratic(p.Duration, p.NumberInnerOffsets, p.NumberOuterOffsets, opts...)
	case SchemeXConcatenated:
		return NewXConcatenated(p.Duration, p.ConcatenationOrder, opts...)
	default:
		return NewXYConcatenated(p.Duration, p.ConcatenationOrder, opts...)
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
