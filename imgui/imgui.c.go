package imgui

/*
#cgo CPPFLAGS: -I${SRCDIR}
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lstdc++

#include "dcimgui.h"
#include "cimgui_ext.h"
*/
import "C"
