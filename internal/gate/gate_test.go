package gate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/rawgen/internal/spec"
)

func parse(t *testing.T, text string) *spec.Record {
	t.Helper()
	rec, err := spec.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return rec
}

func TestResolveNone(t *testing.T) {
	rec := parse(t, "__le32 a;\n__le16 b;\n")
	out, err := Resolve("R", rec, Policy{Strategy: None})
	require.NoError(t, err)

	for _, f := range out.Fields {
		assert.False(t, f.Conditional, f.Name)
	}
	assert.Equal(t, 6, out.MinSize)
	assert.Nil(t, out.Determinant)
}

func TestResolveByLength(t *testing.T) {
	// The worked example: a at [0,4), b at [4,6), c at [6,8), core 4.
	rec := parse(t, "__le32 a;\n__le16 b;\n__le16 c;\n")
	out, err := Resolve("R", rec, Policy{Strategy: ByLength, CoreSize: 4})
	require.NoError(t, err)

	a, b, c := out.Fields[0], out.Fields[1], out.Fields[2]
	assert.False(t, a.Conditional)
	assert.True(t, b.Conditional)
	assert.Equal(t, 6, b.Threshold)
	assert.True(t, c.Conditional)
	assert.Equal(t, 8, c.Threshold)
	assert.Equal(t, 4, out.MinSize)
	assert.Nil(t, out.Determinant)
}

func TestResolveByLengthStraddlingCore(t *testing.T) {
	// A field that starts inside the core but ends past it stays
	// unconditional, so the precondition has to cover its end.
	rec := parse(t, "__le16 a;\n__le32 b;\n__le16 c;\n")
	out, err := Resolve("R", rec, Policy{Strategy: ByLength, CoreSize: 4})
	require.NoError(t, err)

	assert.False(t, out.Fields[1].Conditional)
	assert.True(t, out.Fields[2].Conditional)
	assert.Equal(t, 6, out.MinSize)
}

func TestResolveByDeterminantInternal(t *testing.T) {
	rec := parse(t, "__le32 a;\n__le16 isize;\n__le16 x;\n__le32 y;\n")
	out, err := Resolve("R", rec, Policy{
		Strategy:    ByDeterminant,
		CoreSize:    4,
		Determinant: "isize",
	})
	require.NoError(t, err)

	// The determinant field is excluded from conditional treatment even
	// though it sits past the core.
	require.NotNil(t, out.Determinant)
	assert.Equal(t, "isize", out.Determinant.Name)
	assert.False(t, out.Determinant.Conditional)
	assert.Equal(t, 6, out.MinSize)

	x, y := out.Fields[2], out.Fields[3]
	assert.True(t, x.Conditional)
	assert.Equal(t, 4, x.Threshold) // end 8 minus core 4
	assert.True(t, y.Conditional)
	assert.Equal(t, 8, y.Threshold)
}

func TestResolveByDeterminantExternal(t *testing.T) {
	rec := parse(t, "__le32 a;\n__le16 x;\n")
	out, err := Resolve("R", rec, Policy{
		Strategy:    ByDeterminant,
		CoreSize:    4,
		Determinant: "descSize",
		External:    true,
	})
	require.NoError(t, err)

	// External determinant is a decode-function parameter, not a field.
	assert.Nil(t, out.Determinant)
	assert.True(t, out.Fields[1].Conditional)
	assert.Equal(t, 2, out.Fields[1].Threshold)
}

func TestResolveByMarker(t *testing.T) {
	// Marker example: sz at [0,2), x present iff sz >= 2, y iff sz >= 4.
	rec := parse(t, "extra_size sz;\n__le16 x;\n__le16 y;\n")
	out, err := Resolve("R", rec, Policy{Strategy: ByMarker})
	require.NoError(t, err)

	require.NotNil(t, out.Determinant)
	assert.Equal(t, "sz", out.Determinant.Name)
	assert.False(t, out.Determinant.Conditional)
	assert.Equal(t, 2, out.MinSize)

	x, y := out.Fields[1], out.Fields[2]
	assert.True(t, x.Conditional)
	assert.Equal(t, 2, x.Threshold)
	assert.True(t, y.Conditional)
	assert.Equal(t, 4, y.Threshold)
}

func TestThresholdsMonotonic(t *testing.T) {
	// Increasing the determinant can only flip fields absent to present:
	// thresholds strictly increase in declaration order past the gate.
	rec := parse(t, "extra_size sz;\n__le16 a;\n__le32 b;\n__u8 c[10];\n__le64 d;\n")
	out, err := Resolve("R", rec, Policy{Strategy: ByMarker})
	require.NoError(t, err)

	prev := 0
	for _, f := range out.Fields[1:] {
		assert.Greater(t, f.Threshold, prev, f.Name)
		prev = f.Threshold
	}
}

func TestResolveErrors(t *testing.T) {
	plain := "__le32 a;\n__le16 b;\n"
	marked := "extra_size sz;\n__le16 x;\n"

	tests := []struct {
		name string
		text string
		pol  Policy
		want string
	}{
		{"marker without policy", marked, Policy{Strategy: ByLength, CoreSize: 4},
			"marker"},
		{"marker policy without marker", plain, Policy{Strategy: ByMarker},
			"no extra_size"},
		{"length without core", plain, Policy{Strategy: ByLength},
			"positive core size"},
		{"determinant without name", plain, Policy{Strategy: ByDeterminant, CoreSize: 4},
			"determinant name"},
		{"determinant not a field", plain,
			Policy{Strategy: ByDeterminant, CoreSize: 4, Determinant: "nope"},
			`"nope" not in record`},
		{"unknown peek field", plain,
			Policy{Strategy: ByLength, CoreSize: 4, Peek: []string{"zz"}},
			`peek field "zz"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve("R", parse(t, tt.text), tt.pol)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestResolveNamesRecordInErrors(t *testing.T) {
	_, err := Resolve("RawInode", parse(t, "__le32 a;\n"), Policy{Strategy: ByLength})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RawInode")
}
