package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-stack/stack"

	"github.com/deechtejoao/imbind/defaults"
	"github.com/deechtejoao/imbind/imgui"
	"github.com/deechtejoao/imbind/layout"
	"github.com/deechtejoao/imbind/util"
)

func usage() {
	fmt.Println("Usage: imbind check [-v] [-layout-only] <manifest.json>")
	fmt.Println("       imbind version")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%v\n", r, stack.Trace().TrimRuntime())
			os.Exit(2)
		}
	}()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Println(imgui.Version())
			return
		case "check":
			os.Exit(check(os.Args[2:]))
		}
	}
	usage()
	os.Exit(2)
}

// check verifies the Go mirror records of this build against a layout
// manifest, then compares the manifest's recorded defaults against
// what native construction actually produces.
func check(args []string) int {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "report every record checked, not just mismatches")
	layoutOnly := fs.Bool("layout-only", false, "skip the default-value comparison")
	fs.Parse(args)
	if fs.NArg() < 1 {
		usage()
		return 2
	}
	manifest := util.Must1(os.ReadFile(fs.Arg(0)))

	records := []struct {
		name  string
		value any
	}{
		{"ImFontConfig", imgui.NewFontConfig()},
		{"ImGuiStyle", imgui.NewStyle()},
	}

	failed := false
	for _, rec := range records {
		desc := util.Must1(layout.Describe(rec.name, rec.value))

		mismatchCount := 0
		for _, m := range layout.Verify(manifest, desc) {
			fmt.Println(m)
			mismatchCount++
		}

		if !*layoutOnly {
			defMismatches, err := defaults.Check(manifest, rec.name, rec.value)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 2
			}
			for _, m := range defMismatches {
				fmt.Println(m)
				mismatchCount++
			}
		}

		bad := mismatchCount > 0
		failed = failed || bad
		if *verbose || bad {
			fmt.Printf("%s: %s (%d bytes, %d fields)\n",
				rec.name, util.Tern(bad, "MISMATCH", "ok"), desc.Size, len(desc.Fields))
		}
	}

	if failed {
		return 1
	}
	if *verbose {
		fmt.Printf("layouts match native %s\n", imgui.Version())
	}
	return 0
}
