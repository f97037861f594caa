package defaults

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"1.0f", 1.0},
		{"0.60f", 0.60},
		{"true", true},
		{"false", false},
		{"NULL", nil},
		{"FLT_MAX", float64(math.MaxFloat32)},
		{"ImVec2(8.0f, 8.0f)", Vec2{8, 8}},
		{"ImVec2(0, 0)", Vec2{0, 0}},
		{"ImVec4(1.0f, 1.0f, 1.0f, 1.0f)", Vec4{1, 1, 1, 1}},
		{"(ImWchar)-1", 65535},
		{"(int)4", 4},
		{"ImGuiDir_Left", 0},
		{"ImGuiDir_None", -1},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Eval(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("Garbage", func(t *testing.T) {
		_, err := Eval("ImVector<int>()")
		assert.Error(t, err)
	})
}

// A stand-in for a mirror record filled by native construction.
type fontish struct {
	Oversample int32
	MaxAdvance float32
	Ranges     *uint16
	Owned      bool
	Spacing    struct{ X, Y float32 }
	Ellipsis   uint16
}

const fontishManifest = `{
	"structs": [
		{
			"name": "Fontish",
			"fields": [
				{"name": "Oversample", "offset": 0, "size": 4, "default": "1"},
				{"name": "MaxAdvance", "offset": 4, "size": 4, "default": "FLT_MAX"},
				{"name": "Ranges", "offset": 8, "size": 8, "default": "NULL"},
				{"name": "Owned", "offset": 16, "size": 1, "default": "true"},
				{"name": "Spacing", "offset": 20, "size": 8, "default": "ImVec2(0.0f, 0.0f)"},
				{"name": "Ellipsis", "offset": 28, "size": 2, "default": "(ImWchar)-1"}
			]
		}
	]
}`

func goodFontish() fontish {
	return fontish{
		Oversample: 1,
		MaxAdvance: math.MaxFloat32,
		Ranges:     nil,
		Owned:      true,
		Ellipsis:   0xFFFF,
	}
}

func TestCheck(t *testing.T) {
	t.Run("Clean", func(t *testing.T) {
		v := goodFontish()
		mismatches, err := Check([]byte(fontishManifest), "Fontish", v)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})

	t.Run("Pointer to record", func(t *testing.T) {
		v := goodFontish()
		mismatches, err := Check([]byte(fontishManifest), "Fontish", &v)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})

	t.Run("Drifted value", func(t *testing.T) {
		v := goodFontish()
		v.Oversample = 3
		v.Owned = false
		mismatches, err := Check([]byte(fontishManifest), "Fontish", v)
		require.NoError(t, err)
		require.Len(t, mismatches, 2)
		assert.Equal(t, "Oversample", mismatches[0].Field)
		assert.Equal(t, "Owned", mismatches[1].Field)
	})

	t.Run("Dangling pointer default", func(t *testing.T) {
		v := goodFontish()
		ranges := uint16(0x20)
		v.Ranges = &ranges
		mismatches, err := Check([]byte(fontishManifest), "Fontish", v)
		require.NoError(t, err)
		require.Len(t, mismatches, 1)
		assert.Equal(t, "Ranges", mismatches[0].Field)
	})

	t.Run("Unknown struct", func(t *testing.T) {
		_, err := Check([]byte(fontishManifest), "Stylish", goodFontish())
		assert.Error(t, err)
	})

	t.Run("Not a struct", func(t *testing.T) {
		_, err := Check([]byte(fontishManifest), "Fontish", 42)
		assert.Error(t, err)
	})
}

func TestMismatchString(t *testing.T) {
	m := Mismatch{Struct: "ImFontConfig", Field: "OversampleV", Want: 1, Got: int32(3)}
	assert.Equal(t, "ImFontConfig.OversampleV: manifest default is 1, native construction produced 3", m.String())
}
