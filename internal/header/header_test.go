package header

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-npy/internal/dtype"
)

func TestParseNumpyHeader(t *testing.T) {
	text := "{'descr': '<f8', 'fortran_order': False, 'shape': (2, 3), }" +
		strings.Repeat(" ", 57) + "\n"

	h, err := Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, h.Shape)
	assert.Equal(t, dtype.Float64, h.Kind)
	assert.Equal(t, dtype.OrderLittle, h.Order)
	assert.False(t, h.FortranOrder)
	assert.Equal(t, "<f8", h.Descr)
	assert.Equal(t, 6, h.Count())
}

func TestParseKeyOrderAndQuotes(t *testing.T) {
	h, err := Parse([]byte(`{"shape": (4,), "fortran_order": True, "descr": ">i2"}`))
	require.NoError(t, err)
	assert.Equal(t, []int{4}, h.Shape)
	assert.Equal(t, dtype.Int16, h.Kind)
	assert.Equal(t, dtype.OrderBig, h.Order)
	assert.True(t, h.FortranOrder)
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		shape    string
		expected []int
		count    int
	}{
		{"()", []int{}, 1},
		{"(5,)", []int{5}, 5},
		{"(0,)", []int{0}, 0},
		{"(2, 2)", []int{2, 2}, 4},
		{"(1,2,3)", []int{1, 2, 3}, 6},
		{"( 7 , 8 , )", []int{7, 8}, 56},
	}
	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			h, err := Parse([]byte("{ 'descr': '|u1', 'fortran_order': False, 'shape': " + tt.shape + ", }"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, h.Shape)
			assert.Equal(t, tt.count, h.Count())
		})
	}
}

func TestParseOneByteOrderNormalized(t *testing.T) {
	h, err := Parse([]byte("{ 'descr': '<u1', 'fortran_order': False, 'shape': (3,), }"))
	require.NoError(t, err)
	assert.Equal(t, dtype.Uint8, h.Kind)
	assert.Equal(t, dtype.OrderNone, h.Order)
	assert.Equal(t, "<u1", h.Descr)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target error
	}{
		{"missing descr", "{ 'fortran_order': False, 'shape': (3,), }", ErrMalformed},
		{"missing fortran_order", "{ 'descr': '<f8', 'shape': (3,), }", ErrMalformed},
		{"missing shape", "{ 'descr': '<f8', 'fortran_order': False, }", ErrMalformed},
		{"unterminated shape", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (3, }", ErrMalformed},
		{"bad shape integer", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (3, x), }", ErrMalformed},
		{"negative shape", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (-3,), }", ErrMalformed},
		{"signed shape", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (+3,), }", ErrMalformed},
		{"negative zero shape", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (-0,), }", ErrMalformed},
		{"dimension exceeds int", "{ 'descr': '|u1', 'fortran_order': False, 'shape': (9223372036854775808,), }", ErrMalformed},
		{"byte length overflows", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (2305843009213693952,), }", ErrMalformed},
		{"element count overflows", "{ 'descr': '|u1', 'fortran_order': False, 'shape': (4294967296, 4294967296), }", ErrMalformed},
		{"unknown byte order", "{ 'descr': '!f8', 'fortran_order': False, 'shape': (3,), }", ErrMalformed},
		{"multi-byte without order", "{ 'descr': '|f8', 'fortran_order': False, 'shape': (3,), }", ErrMalformed},
		{"lowercase fortran flag", "{ 'descr': '<f8', 'fortran_order': false, 'shape': (3,), }", ErrMalformed},
		{"non-ascii", "{ 'descr': '<f8', 'fortran_order': False, 'shape': (3,), }\xff", ErrMalformed},
		{"complex", "{ 'descr': '<c16', 'fortran_order': False, 'shape': (3,), }", dtype.ErrUnsupported},
		{"unicode string", "{ 'descr': '<U10', 'fortran_order': False, 'shape': (3,), }", dtype.ErrUnsupported},
		{"float16", "{ 'descr': '<f2', 'fortran_order': False, 'shape': (3,), }", dtype.ErrUnsupported},
		{"structured", "{ 'descr': [('x', '<i4')], 'fortran_order': False, 'shape': (3,), }", dtype.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.text))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestFormatShape(t *testing.T) {
	assert.Equal(t, "()", FormatShape(nil))
	assert.Equal(t, "(3,)", FormatShape([]int{3}))
	assert.Equal(t, "(2, 3)", FormatShape([]int{2, 3}))
	assert.Equal(t, "(1, 0, 4)", FormatShape([]int{1, 0, 4}))
}

func TestFormat(t *testing.T) {
	h, err := New([]int{2, 2}, dtype.Uint8, dtype.OrderNative, false)
	require.NoError(t, err)
	assert.Equal(t, "{ 'descr': '|u1', 'fortran_order': False, 'shape': (2, 2), }", h.Format())

	h, err = New([]int{3}, dtype.Float32, dtype.OrderBig, true)
	require.NoError(t, err)
	assert.Equal(t, "{ 'descr': '>f4', 'fortran_order': True, 'shape': (3,), }", h.Format())
}

func TestNewRejects(t *testing.T) {
	_, err := New([]int{3}, dtype.Int32, dtype.OrderNone, false)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = New([]int{-1}, dtype.Int32, dtype.OrderLittle, false)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = New([]int{1}, dtype.Kind(42), dtype.OrderLittle, false)
	assert.ErrorIs(t, err, dtype.ErrUnsupported)

	_, err = New([]int{math.MaxInt/2 + 1, 4}, dtype.Float64, dtype.OrderLittle, false)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNewZeroDimensionWithLargeShape(t *testing.T) {
	h, err := New([]int{math.MaxInt, 0}, dtype.Float64, dtype.OrderLittle, false)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Count())
}

func TestFormatParseRoundTrip(t *testing.T) {
	for k := dtype.Bool; k.Valid(); k++ {
		for _, o := range []dtype.Order{dtype.OrderNative, dtype.OrderBig, dtype.OrderLittle} {
			for _, shape := range [][]int{{}, {1}, {4, 5}, {2, 0, 3}} {
				h, err := New(shape, k, o, len(shape)%2 == 0)
				require.NoError(t, err)

				got, err := Parse([]byte(h.Format()))
				require.NoError(t, err)
				assert.Equal(t, h, got)
				assert.Equal(t, h.Format(), got.Format())
			}
		}
	}
}

func TestDescrPreserved(t *testing.T) {
	text := "{ 'descr': '=u2', 'fortran_order': False, 'shape': (1,), }"
	h, err := Parse([]byte(text))
	require.NoError(t, err)
	assert.Equal(t, dtype.OrderNative, h.Order)
	assert.Equal(t, text, h.Format())
}
