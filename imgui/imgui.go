package imgui

/*
#include <stdlib.h>
#include <string.h>
#include "dcimgui.h"
#include "cimgui_ext.h"
*/
import "C"

import (
	"unsafe"

	"github.com/deechtejoao/imbind/util"
)

// ----------------------
// Data types

// A single glyph index / keyboard character. dcimgui is built with
// 16-bit ImWchar; code points above 0xFFFF are not representable.
type Wchar uint16

// A 2D vector, used for positions, sizes and alignment factors.
type Vec2 struct {
	X, Y float32
}

func (r Vec2) C() C.ImVec2 {
	return C.ImVec2{
		x: C.float(r.X),
		y: C.float(r.Y),
	}
}

func Vec22Go(r C.ImVec2) Vec2 {
	return Vec2{
		X: float32(r.x),
		Y: float32(r.y),
	}
}

// A 4D vector, used mostly for colors as 0.0-1.0 RGBA.
type Vec4 struct {
	X, Y, Z, W float32
}

func (r Vec4) C() C.ImVec4 {
	return C.ImVec4{
		x: C.float(r.X),
		y: C.float(r.Y),
		z: C.float(r.Z),
		w: C.float(r.W),
	}
}

func Vec42Go(r C.ImVec4) Vec4 {
	return Vec4{
		X: float32(r.x),
		Y: float32(r.y),
		Z: float32(r.z),
		W: float32(r.w),
	}
}

// A cardinal direction.
type Dir int32

const (
	DirNone  Dir = -1
	DirLeft  Dir = 0
	DirRight Dir = 1
	DirUp    Dir = 2
	DirDown  Dir = 3
)

// Col is an index into Style.Colors.
type Col int32

const (
	ColText Col = iota
	ColTextDisabled
	ColWindowBg // Background of normal windows
	ColChildBg  // Background of child windows
	ColPopupBg  // Background of popups, menus, tooltips windows
	ColBorder
	ColBorderShadow
	ColFrameBg // Background of checkbox, radio button, plot, slider, text input
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg          // Title bar
	ColTitleBgActive    // Title bar when focused
	ColTitleBgCollapsed // Title bar when collapsed
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark // Checkbox tick and RadioButton circle
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader // Header colors are used for CollapsingHeader, TreeNode, Selectable, MenuItem
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip // Resize grip in lower-right and lower-left corners of windows
	ColResizeGripHovered
	ColResizeGripActive
	ColTabHovered          // Tab background, when hovered
	ColTab                 // Tab background, when tab-bar is focused & tab is unselected
	ColTabSelected         // Tab background, when tab-bar is focused & tab is selected
	ColTabSelectedOverline // Tab horizontal overline, when tab-bar is focused & tab is selected
	ColTabDimmed           // Tab background, when tab-bar is unfocused & tab is unselected
	ColTabDimmedSelected   // Tab background, when tab-bar is unfocused & tab is selected
	ColTabDimmedSelectedOverline
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTableHeaderBg     // Table header background
	ColTableBorderStrong // Table outer and header borders (prefer using Alpha=1.0 here)
	ColTableBorderLight  // Table inner borders (prefer using Alpha=1.0 here)
	ColTableRowBg        // Table row background (even rows)
	ColTableRowBgAlt     // Table row background (odd rows)
	ColTextLink          // Hyperlink color
	ColTextSelectedBg
	ColDragDropTarget        // Rectangle highlighting a drop target
	ColNavHighlight          // Gamepad/keyboard: current highlighted item
	ColNavWindowingHighlight // Highlight window when using CTRL+TAB
	ColNavWindowingDimBg     // Darken/colorize entire screen behind the CTRL+TAB window list
	ColModalWindowDimBg      // Darken/colorize entire screen behind a modal window
	ColCOUNT
)

// Flags for hover-delay behavior, transparently passed through to the
// native tooltip logic.
type HoveredFlags int32

// FontConfig is the flat-call-compatible declaration of ImFontConfig:
// everything controlling how a single font source is loaded and
// rasterized into the atlas. Field order, sizes and padding must match
// the native declaration exactly; see abi.go. Use NewFontConfig or
// InitFontConfig rather than a zero value, since several defaults are
// non-trivial.
type FontConfig struct {
	// TTF/OTF data. Not copied by the atlas unless
	// FontDataOwnedByAtlas is false.
	FontData     unsafe.Pointer
	FontDataSize int32
	// True means the atlas owns FontData and frees it itself.
	FontDataOwnedByAtlas bool
	// Index of the font to load when the file contains several.
	FontNo int32
	// Glyph height in pixels for the rasterizer.
	SizePixels float32
	// Horizontal rasterizer oversampling.
	OversampleH int32
	// Vertical rasterizer oversampling.
	OversampleV int32
	// Align every glyph to pixel boundary on the X axis.
	PixelSnapH bool
	// Extra spacing in pixels between glyphs.
	GlyphExtraSpacing Vec2
	// Offset applied to every glyph of this font.
	GlyphOffset Vec2
	// Zero-terminated list of inclusive [lo, hi] code point pairs.
	// The memory must outlive the font; see CacheGlyphRanges.
	GlyphRanges *Wchar
	// Minimum advance of any glyph; can be used to build monospaced fonts.
	GlyphMinAdvanceX float32
	// Maximum advance of any glyph.
	GlyphMaxAdvanceX float32
	// Merge the glyphs into the previously added font instead of
	// starting a new one.
	MergeMode bool
	// Settings passed through to the font builder backend.
	FontBuilderFlags uint32
	// Brighten (>1.0) or darken (<1.0) rasterized coverage.
	RasterizerMultiply float32
	// DPI scale applied at rasterization time.
	RasterizerDensity float32
	// Character used for "..." when text is clipped.
	EllipsisChar Wchar
	// Debug name, truncated by the native library. Shows up in the
	// style editor's font selector.
	Name [40]byte
	// Target font when merging; set by the atlas.
	DstFont unsafe.Pointer
}

// Style is the flat-call-compatible declaration of ImGuiStyle: the
// full set of visual styling parameters (spacing, rounding, colors)
// for the native library's rendering. Field order, sizes and padding
// must match the native declaration exactly; see abi.go. Use NewStyle
// or InitStyle rather than a zero value.
type Style struct {
	// Global alpha applied to everything.
	Alpha float32
	// Additional alpha multiplier applied to disabled items.
	DisabledAlpha float32
	// Padding within a window.
	WindowPadding Vec2
	// Radius of window corner rounding.
	WindowRounding float32
	// Thickness of the border around windows.
	WindowBorderSize float32
	// Minimum window size.
	WindowMinSize Vec2
	// Alignment for the title bar text.
	WindowTitleAlign Vec2
	// Side of the title bar holding the collapse/menu button.
	WindowMenuButtonPosition Dir
	ChildRounding            float32
	ChildBorderSize          float32
	PopupRounding            float32
	PopupBorderSize          float32
	// Padding within a framed rectangle (used by most widgets).
	FramePadding    Vec2
	FrameRounding   float32
	FrameBorderSize float32
	// Spacing between widgets/lines.
	ItemSpacing Vec2
	// Spacing within a composed widget (e.g. a slider and its label).
	ItemInnerSpacing Vec2
	// Padding within a table cell.
	CellPadding Vec2
	// Expands the hit box of touch-based interactions. Unfortunately
	// affects the layout, so keep it small.
	TouchExtraPadding Vec2
	// Horizontal indentation when entering a tree node.
	IndentSpacing float32
	// Minimum horizontal spacing between two columns.
	ColumnsMinSpacing float32
	ScrollbarSize     float32
	ScrollbarRounding float32
	GrabMinSize       float32
	GrabRounding      float32
	LogSliderDeadzone float32
	TabRounding       float32
	TabBorderSize     float32
	// Width below which the close button on an unselected tab is hidden.
	TabMinWidthForCloseButton float32
	TabBarBorderSize          float32
	TabBarOverlineSize        float32
	// Angle of angled table headers, in radians.
	TableAngledHeadersAngle     float32
	TableAngledHeadersTextAlign Vec2
	// Side of color-edit widgets holding the color button.
	ColorButtonPosition     Dir
	ButtonTextAlign         Vec2
	SelectableTextAlign     Vec2
	SeparatorTextBorderSize float32
	SeparatorTextAlign      Vec2
	SeparatorTextPadding    Vec2
	// Window position safety padding when repositioning clamps windows
	// onto the display.
	DisplayWindowPadding   Vec2
	DisplaySafeAreaPadding Vec2
	MouseCursorScale       float32
	AntiAliasedLines       bool
	// Prefer texture-based anti-aliased lines when the atlas allows it.
	AntiAliasedLinesUseTex bool
	AntiAliasedFill        bool
	// Tessellation tolerance for curves without an explicit segment count.
	CurveTessellationTol float32
	// Maximum error for circle tessellation without an explicit
	// segment count.
	CircleTessellationMaxError float32
	Colors                     [ColCOUNT]Vec4
	// Delay on hover before IsItemHovered(Stationary) reports true.
	HoverStationaryDelay float32
	// Delay on hover before IsItemHovered(DelayShort) reports true.
	HoverDelayShort float32
	// Delay on hover before IsItemHovered(DelayNormal) reports true.
	HoverDelayNormal          float32
	HoverFlagsForTooltipMouse HoveredFlags
	HoverFlagsForTooltipNav   HoveredFlags
}

// ----------------------
// Default-initializer shim

// InitFontConfig fills target with the defaults the native
// ImFontConfig constructor produces, constructing in place. target
// must point at FontConfig-sized, FontConfig-aligned memory; the write
// covers exactly that extent and nothing else. The layout identity
// that makes the pointer reinterpretation sound is enforced at build
// time in abi.go and in cimgui_ext.cpp.
func InitFontConfig(target *FontConfig) {
	C.ImFontConfig_ImFontConfig((*C.ImFontConfig)(unsafe.Pointer(target)))
}

// NewFontConfig returns a FontConfig holding the native defaults.
func NewFontConfig() FontConfig {
	var cfg FontConfig
	InitFontConfig(&cfg)
	return cfg
}

// InitStyle fills target with the defaults the native ImGuiStyle
// constructor produces, constructing in place. Same contract as
// InitFontConfig. The native constructor ends with the dark color
// fill, so Colors comes back populated too.
func InitStyle(target *Style) {
	C.ImGuiStyle_ImGuiStyle((*C.ImGuiStyle)(unsafe.Pointer(target)))
}

// NewStyle returns a Style holding the native defaults.
func NewStyle() Style {
	var style Style
	InitStyle(&style)
	return style
}

// StyleColorsDark fills style.Colors with the default dark theme.
// A freshly initialized Style already has this fill.
func StyleColorsDark(style *Style) {
	C.ImGui_StyleColorsDark((*C.ImGuiStyle)(unsafe.Pointer(style)))
}

// StyleColorsLight fills style.Colors with the light theme.
func StyleColorsLight(style *Style) {
	C.ImGui_StyleColorsLight((*C.ImGuiStyle)(unsafe.Pointer(style)))
}

// StyleColorsClassic fills style.Colors with the classic theme.
func StyleColorsClassic(style *Style) {
	C.ImGui_StyleColorsClassic((*C.ImGuiStyle)(unsafe.Pointer(style)))
}

// Version returns the version string of the native library this
// binding was built against, e.g. "1.91.4".
func Version() string {
	return C.GoString(C.ImGui_GetVersion())
}

// ----------------------
// C-side memory

var allocatedRanges []unsafe.Pointer

// CacheGlyphRanges copies ranges into C memory and returns a pointer
// suitable for FontConfig.GlyphRanges. ranges must be a
// zero-terminated list of inclusive [lo, hi] pairs, e.g. from the
// glyphranges package. The memory is held until ReleaseMemory is
// called, so the native font builder never sees Go-managed memory.
func CacheGlyphRanges(ranges []uint16) *Wchar {
	util.Assert(len(ranges) > 0 && ranges[len(ranges)-1] == 0, "glyph ranges must be zero-terminated")

	n := C.size_t(len(ranges)) * C.sizeof_ImWchar
	ptr := C.malloc(n)
	C.memcpy(ptr, unsafe.Pointer(&ranges[0]), n)
	allocatedRanges = append(allocatedRanges, ptr)
	return (*Wchar)(ptr)
}

// ReleaseMemory frees all C-side memory handed out by
// CacheGlyphRanges. Pointers previously returned become invalid, as
// does any FontConfig still referring to them.
func ReleaseMemory() {
	for _, ptr := range allocatedRanges {
		C.free(ptr)
	}
	allocatedRanges = allocatedRanges[:0]
}
