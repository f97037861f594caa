// Package defaults cross-checks the default values the layout manifest
// records against the values native default construction actually
// produced. The Go side never keeps its own table of defaults; it only
// evaluates the C expressions the manifest generator copied out of the
// native headers and compares them with what the shim wrote.
package defaults

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/tidwall/gjson"
)

// Vec2 mirrors the ImVec2 constructor calls that appear in default
// expressions, e.g. "ImVec2(8.0f, 8.0f)".
type Vec2 struct {
	X, Y float64
}

// Vec4 mirrors ImVec4 constructor calls.
type Vec4 struct {
	X, Y, Z, W float64
}

var cEnv = map[string]any{
	"FLT_MAX": float64(math.MaxFloat32),
	"NULL":    nil,

	"ImVec2": func(x, y any) Vec2 {
		return Vec2{toFloat(x), toFloat(y)}
	},
	"ImVec4": func(x, y, z, w any) Vec4 {
		return Vec4{toFloat(x), toFloat(y), toFloat(z), toFloat(w)}
	},
	// C converts out-of-range values modulo 2^16; "(ImWchar)-1" is the
	// native library's way of spelling 0xFFFF.
	"ImWchar": func(v any) int {
		return int(toFloat(v)) & 0xFFFF
	},
	"int": func(v any) int {
		return int(toFloat(v))
	},
	"float": func(v any) float64 {
		return toFloat(v)
	},

	"ImGuiDir_None":  -1,
	"ImGuiDir_Left":  0,
	"ImGuiDir_Right": 1,
	"ImGuiDir_Up":    2,
	"ImGuiDir_Down":  3,
}

var (
	// "1.0f" -> "1.0"
	floatSuffix = regexp.MustCompile(`(\d)f\b`)
	// "(ImWchar)-1" -> "ImWchar(-1)"
	cCast = regexp.MustCompile(`\((ImWchar|int|float)\)\s*(-?\w+(?:\.\w+)?)`)
)

// Eval evaluates a C default-value expression as the manifest
// generator records it, e.g. "1.0f", "FLT_MAX", "ImVec2(8.0f, 8.0f)",
// "(ImWchar)-1", "NULL", "true".
func Eval(src string) (any, error) {
	normalized := strings.TrimSpace(src)
	normalized = cCast.ReplaceAllString(normalized, "$1($2)")
	normalized = floatSuffix.ReplaceAllString(normalized, "$1")

	out, err := expr.Eval(normalized, cEnv)
	if err != nil {
		return nil, fmt.Errorf("defaults: evaluating %q: %w", src, err)
	}
	return out, nil
}

// Mismatch is one field whose constructed value disagrees with the
// manifest's default expression.
type Mismatch struct {
	Struct string
	Field  string
	Want   any
	Got    any
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s.%s: manifest default is %v, native construction produced %v", m.Struct, m.Field, m.Want, m.Got)
}

// Check evaluates every "default" expression the manifest records for
// structName and compares it against the corresponding field of v,
// which should hold the output of the shim's native construction.
// Fields without a recorded default are skipped.
func Check(manifest []byte, structName string, v any) ([]Mismatch, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("defaults: %s: expected a struct, got %v", structName, reflect.TypeOf(v))
	}

	entry := gjson.GetBytes(manifest, fmt.Sprintf(`structs.#(name=="%s")`, structName))
	if !entry.Exists() {
		return nil, fmt.Errorf("defaults: %s not present in manifest", structName)
	}

	var out []Mismatch
	var evalErr error
	entry.Get("fields").ForEach(func(_, mf gjson.Result) bool {
		src := mf.Get("default")
		if !src.Exists() {
			return true
		}
		name := mf.Get("name").String()

		want, err := Eval(src.String())
		if err != nil {
			evalErr = fmt.Errorf("defaults: %s.%s: %w", structName, name, err)
			return false
		}

		fv := rv.FieldByName(name)
		if !fv.IsValid() {
			out = append(out, Mismatch{Struct: structName, Field: name, Want: want, Got: "<no such field>"})
			return true
		}
		if !equal(want, fv) {
			out = append(out, Mismatch{Struct: structName, Field: name, Want: want, Got: fv.Interface()})
		}
		return true
	})
	return out, evalErr
}

func equal(want any, fv reflect.Value) bool {
	if want == nil {
		switch fv.Kind() {
		case reflect.Pointer, reflect.UnsafePointer:
			return fv.Pointer() == 0
		}
		return false
	}

	switch w := want.(type) {
	case bool:
		return fv.Kind() == reflect.Bool && fv.Bool() == w
	case Vec2:
		return fv.Kind() == reflect.Struct && fv.NumField() == 2 &&
			floatEq(fv.Field(0).Float(), w.X) && floatEq(fv.Field(1).Float(), w.Y)
	case Vec4:
		return fv.Kind() == reflect.Struct && fv.NumField() == 4 &&
			floatEq(fv.Field(0).Float(), w.X) && floatEq(fv.Field(1).Float(), w.Y) &&
			floatEq(fv.Field(2).Float(), w.Z) && floatEq(fv.Field(3).Float(), w.W)
	}

	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return floatEq(float64(fv.Int()), toFloat(want))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return floatEq(float64(fv.Uint()), toFloat(want))
	case reflect.Float32, reflect.Float64:
		return floatEq(fv.Float(), toFloat(want))
	}
	return false
}

// floatEq compares with a small relative tolerance: manifest defaults
// go through float64 evaluation while the constructed fields are
// float32.
func floatEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6*math.Max(1, math.Abs(b))
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return math.NaN()
}
