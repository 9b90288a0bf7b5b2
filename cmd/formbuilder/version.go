package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeVersion(cmd.OutOrStdout())
			return nil
		},
	}
}

// writeVersion prints the linker-stamped values, falling back to the module
// and VCS data the Go toolchain embeds when the binary was not stamped.
func writeVersion(w io.Writer) {
	ver, rev, built := version, commit, date
	module, goVersion := "", ""

	if info, ok := readBuildInfo(); ok && info != nil {
		module = info.Main.Path
		goVersion = info.GoVersion
		if ver == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			ver = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if rev == "none" {
					rev = s.Value
				}
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			}
		}
	}

	fmt.Fprintf(w, "FormBuilder %s\ncommit: %s\nbuilt: %s\n", ver, rev, built)
	if module != "" {
		fmt.Fprintf(w, "module: %s\n", module)
	}
	if goVersion != "" {
		fmt.Fprintf(w, "go: %s\n", goVersion)
	}
}
