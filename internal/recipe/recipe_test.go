package recipe

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-dd/dds"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParse(t *testing.T) {
	r, err := Parse([]byte(`
name: cpmg-8
scheme: cpmg
duration: 2.0e-3
number_of_offsets: 8
pre_post_rotation: true
maximum_rabi_rate: 6.283
`))
	require.NoError(t, err)

	assert.Equal(t, "cpmg-8", r.Name)
	assert.Equal(t, "cpmg", r.Scheme)
	require.NotNil(t, r.Duration)
	assert.InDelta(t, 2e-3, *r.Duration, 1e-15)
	require.NotNil(t, r.NumberOfOffsets)
	assert.Equal(t, 8, *r.NumberOfOffsets)
	assert.True(t, r.PrePostRotation)
	assert.Nil(t, r.PaleyOrder)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"missing name", "scheme: ramsey\n"},
		{"missing scheme", "name: r\n"},
		{"unknown field", "name: r\nscheme: ramsey\nnumber_of_pulses: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			require.Error(t, err)
		})
	}
}

func TestBuild(t *testing.T) {
	r, err := Parse([]byte("name: cp\nscheme: Carr-Purcell\nnumber_of_offsets: 2\n"))
	require.NoError(t, err)

	seq, err := r.Build(4)
	require.NoError(t, err)

	assert.Equal(t, "cp", seq.Name())
	assert.Equal(t, 4.0, seq.Duration())
	assert.InDeltaSlice(t, []float64{0, 1, 3, 4}, seq.Offsets(), 1e-12)
}

func TestBuildRecipeDurationOverridesDefault(t *testing.T) {
	r, err := Parse([]byte("name: se\nscheme: spin-echo\nduration: 2\n"))
	require.NoError(t, err)

	seq, err := r.Build(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, seq.Offsets(), 1e-12)
}

func TestBuildRejectsUnusedParameter(t *testing.T) {
	// Even a value equal to the default is rejected when the scheme does
	// not take the parameter.
	r, err := Parse([]byte("name: r\nscheme: ramsey\nnumber_of_offsets: 1\n"))
	require.NoError(t, err)

	_, err = r.Build(1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not accept number_of_offsets")
}

func TestBuildRejectsOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duration too long", "name: r\nscheme: ramsey\nduration: 1.0e+7\n"},
		{"duration too short", "name: r\nscheme: ramsey\nduration: 1.0e-15\n"},
		{"rabi rate", "name: r\nscheme: ramsey\nmaximum_rabi_rate: 0\n"},
		{"detuning rate", "name: r\nscheme: ramsey\nmaximum_detuning_rate: 1.0e+11\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte(tt.body))
			require.NoError(t, err)

			_, err = r.Build(1)
			require.Error(t, err)
		})
	}
}

func TestBuildPropagatesGeneratorErrors(t *testing.T) {
	r, err := Parse([]byte("name: w\nscheme: walsh\npaley_order: 0\n"))
	require.NoError(t, err)

	_, err = r.Build(1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dds.ErrInvalidArgument))

	var argErr *dds.ArgumentError
	require.True(t, errors.As(err, &argErr))
	v, ok := argErr.Field("paley_order")
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestBuildUnknownScheme(t *testing.T) {
	r, err := Parse([]byte("name: x\nscheme: hahn\n"))
	require.NoError(t, err)

	_, err = r.Build(1)
	require.ErrorIs(t, err, dds.ErrInvalidArgument)
}

func TestLoadDirSortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", "name: zeta\nscheme: ramsey\n")
	writeFile(t, dir, "a.yml", "name: alpha\nscheme: quadratic\nnumber_inner_offsets: 2\n")
	writeFile(t, dir, "notes.txt", "not a recipe")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o700))

	recipes, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "alpha", recipes[0].Name)
	assert.Equal(t, "zeta", recipes[1].Name)
	assert.Equal(t, filepath.Join(dir, "a.yml"), recipes[0].Source)
}

func TestLoadDirMissing(t *testing.T) {
	recipes, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestLoadPathsRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", "name: same\nscheme: ramsey\n")
	b := writeFile(t, dir, "b.yaml", "name: same\nscheme: spin-echo\n")

	_, err := LoadPaths([]string{a, b})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate recipe name")
}

func TestLoadPathsMixed(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "set")
	require.NoError(t, os.Mkdir(sub, 0o700))
	writeFile(t, sub, "x.yaml", "name: x\nscheme: x-concatenated\nconcatenation_order: 2\n")
	single := writeFile(t, dir, "single.yaml", "name: single\nscheme: periodic\nnumber_of_offsets: 3\n")

	recipes, err := LoadPaths([]string{single, sub})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "single", recipes[0].Name)
	assert.Equal(t, "x", recipes[1].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load("  ")
	require.Error(t, err)
}

func TestBuildAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "name: a\nscheme: uhrig\nnumber_of_offsets: 4\n")
	writeFile(t, dir, "b.yaml", "name: b\nscheme: xy-concatenated\nconcatenation_order: 1\n")

	recipes, err := LoadDir(dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	built, err := BuildAll(recipes, 1, log)
	require.NoError(t, err)
	require.Len(t, built, 2)
	assert.Equal(t, 6, built[0].Sequence.NumberOfOffsets())
	assert.Equal(t, "b", built[1].Recipe.Name)
	assert.Contains(t, buf.String(), `"recipe":"a"`)
	assert.Contains(t, buf.String(), "built recipe")
}

func TestBuildAllStopsAtFirstFailure(t *testing.T) {
	good, err := Parse([]byte("name: good\nscheme: ramsey\n"))
	require.NoError(t, err)
	bad, err := Parse([]byte("name: bad\nscheme: cp\nnumber_of_offsets: -1\n"))
	require.NoError(t, err)

	built, err := BuildAll([]*Recipe{good, bad}, 1, zerolog.Nop())
	require.Error(t, err)
	assert.Nil(t, built)
}
