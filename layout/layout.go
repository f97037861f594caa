// Package layout describes the in-memory shape of the Go mirror
// records and verifies them against the layout manifest generated
// alongside the native build. The compile-time assertions in the imgui
// package pin total size and alignment; the manifest check is what
// catches an upstream field reorder or resize that happens to leave
// the totals intact.
package layout

import (
	"fmt"
	"reflect"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tidwall/gjson"

	"github.com/deechtejoao/imbind/util"
)

// Field is one field of a record as the Go compiler laid it out.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

// Struct is the laid-out shape of one record.
type Struct struct {
	Name   string
	Size   uintptr
	Align  uintptr
	Fields []Field
}

// Describe reports the layout of v under the record's native name.
// v must be a struct value or a pointer to one.
func Describe(name string, v any) (Struct, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return Struct{}, fmt.Errorf("layout: %s: expected a struct, got %v", name, reflect.TypeOf(v))
	}

	s := Struct{
		Name:  name,
		Size:  t.Size(),
		Align: uintptr(t.Align()),
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		s.Fields = append(s.Fields, Field{
			Name:   f.Name,
			Offset: f.Offset,
			Size:   f.Type.Size(),
		})
	}
	return s, nil
}

// Field returns the named field's layout.
func (s Struct) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Mismatch is a single disagreement between a described record and the
// manifest.
type Mismatch struct {
	Struct string
	Field  string // empty for whole-record mismatches
	Detail string
	// Nearest mirror field name, filled in when the field itself was
	// not found.
	Suggestion string
}

func (m Mismatch) String() string {
	where := m.Struct
	if m.Field != "" {
		where += "." + m.Field
	}
	out := fmt.Sprintf("%s: %s", where, m.Detail)
	if m.Suggestion != "" {
		out += fmt.Sprintf(" (did you mean %s?)", m.Suggestion)
	}
	return out
}

// Verify checks each described record against the manifest entry of
// the same name and returns every disagreement found. An empty result
// means the Go mirrors are valid storage for the native records.
func Verify(manifest []byte, structs ...Struct) []Mismatch {
	var out []Mismatch
	doc := gjson.ParseBytes(manifest)

	for _, s := range structs {
		entry := doc.Get(fmt.Sprintf(`structs.#(name=="%s")`, s.Name))
		if !entry.Exists() {
			out = append(out, Mismatch{Struct: s.Name, Detail: "not present in manifest"})
			continue
		}

		if want := uintptr(entry.Get("size").Uint()); want != s.Size {
			out = append(out, Mismatch{
				Struct: s.Name,
				Detail: fmt.Sprintf("size is %d bytes, manifest wants %d", s.Size, want),
			})
		}
		if want := uintptr(entry.Get("align").Uint()); want != s.Align {
			out = append(out, Mismatch{
				Struct: s.Name,
				Detail: fmt.Sprintf("alignment is %d, manifest wants %d", s.Align, want),
			})
		}

		names := util.Map(s.Fields, func(f Field) string { return f.Name })
		seen := make(map[string]bool)
		entry.Get("fields").ForEach(func(_, mf gjson.Result) bool {
			name := mf.Get("name").String()
			seen[name] = true

			f, ok := s.Field(name)
			if !ok {
				out = append(out, Mismatch{
					Struct:     s.Name,
					Field:      name,
					Detail:     "missing from the Go mirror",
					Suggestion: nearest(name, names),
				})
				return true
			}
			if want := uintptr(mf.Get("offset").Uint()); want != f.Offset {
				out = append(out, Mismatch{
					Struct: s.Name,
					Field:  name,
					Detail: fmt.Sprintf("offset is %d, manifest wants %d", f.Offset, want),
				})
			}
			if want := uintptr(mf.Get("size").Uint()); want != f.Size {
				out = append(out, Mismatch{
					Struct: s.Name,
					Field:  name,
					Detail: fmt.Sprintf("size is %d bytes, manifest wants %d", f.Size, want),
				})
			}
			return true
		})

		for _, f := range s.Fields {
			if !seen[f.Name] {
				out = append(out, Mismatch{
					Struct: s.Name,
					Field:  f.Name,
					Detail: "not present in manifest",
				})
			}
		}
	}
	return out
}

// nearest picks the candidate with the smallest edit distance to name,
// or "" when nothing is close enough to be a plausible rename.
func nearest(name string, candidates []string) string {
	best := ""
	bestDist := len(name)/2 + 1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
