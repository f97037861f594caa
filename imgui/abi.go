package imgui

/*
#include "dcimgui.h"
#include "cimgui_ext.h"
*/
import "C"

import "unsafe"

// The Go declarations in this package are used directly as storage for
// the native records: InitFontConfig and InitStyle write native bytes
// straight through the pointer they are given. That is only sound
// while both representations agree in size and alignment, so any
// disagreement, in either direction, must refuse to compile - the same
// contract the static_asserts in cimgui_ext.cpp enforce between the
// generated C declarations and the C++ originals.
//
// A negative array length is a compile error, so each pair of
// declarations below pins one equality.

var (
	_ [unsafe.Sizeof(FontConfig{}) - C.sizeof_ImFontConfig]byte
	_ [C.sizeof_ImFontConfig - unsafe.Sizeof(FontConfig{})]byte
	_ [unsafe.Alignof(FontConfig{}) - unsafe.Alignof(C.ImFontConfig{})]byte
	_ [unsafe.Alignof(C.ImFontConfig{}) - unsafe.Alignof(FontConfig{})]byte

	_ [unsafe.Sizeof(Style{}) - C.sizeof_ImGuiStyle]byte
	_ [C.sizeof_ImGuiStyle - unsafe.Sizeof(Style{})]byte
	_ [unsafe.Alignof(Style{}) - unsafe.Alignof(C.ImGuiStyle{})]byte
	_ [unsafe.Alignof(C.ImGuiStyle{}) - unsafe.Alignof(Style{})]byte

	_ [unsafe.Sizeof(Vec2{}) - C.sizeof_ImVec2]byte
	_ [C.sizeof_ImVec2 - unsafe.Sizeof(Vec2{})]byte
	_ [unsafe.Sizeof(Vec4{}) - C.sizeof_ImVec4]byte
	_ [C.sizeof_ImVec4 - unsafe.Sizeof(Vec4{})]byte
	_ [unsafe.Sizeof(Wchar(0)) - C.sizeof_ImWchar]byte
	_ [C.sizeof_ImWchar - unsafe.Sizeof(Wchar(0))]byte
)
