package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/trace"
	"github.com/andrz-wasm/gcbuilder/utils"
)

func main() {
	var rootCmd *cobra.Command
	rootCmd = &cobra.Command{
		Use:  "wasmgcbuild <scenario>",
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) < 1 {
				rootCmd.Usage()
				os.Exit(1)
			}
			name := args[0]
			s, ok := findScenario(name)
			if !ok {
				exitWithError("unknown scenario %q; run \"wasmgcbuild list\" to list scenarios", name)
			}

			trace.Enabled = utils.Must1(rootCmd.PersistentFlags().GetBool("trace"))

			var out io.Writer
			outname := utils.Must1(rootCmd.PersistentFlags().GetString("out"))
			if outname == "-" {
				out = os.Stdout
			} else {
				f, err := os.Create(outname)
				if err != nil {
					err := err.(*os.PathError)
					exitWithError("could not open output file %s: %v", err.Path, err.Err)
				}
				out = f
			}

			b := s.build()

			emit := utils.Must1(rootCmd.PersistentFlags().GetString("emit"))
			switch emit {
			case "text":
				fmt.Fprintln(out, b.Text().String())
			case "binary":
				w := bytestream.New()
				b.Binary(w)
				if _, err := out.Write(w.Bytes()); err != nil {
					exitWithError("could not write output: %v", err)
				}
			default:
				exitWithError("unknown --emit value %q (want \"text\" or \"binary\")", emit)
			}
		},
	}
	rootCmd.PersistentFlags().StringP("emit", "e", "text", "Output format: text or binary.")
	rootCmd.PersistentFlags().StringP("out", "o", "-", "The file to write output to. Defaults to stdout.")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable diagnostic tracing to stderr.")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the available scenarios.",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range scenarios {
				fmt.Printf("%-20s %s\n", s.name, s.desc)
			}
		},
	})

	utils.Must(rootCmd.Execute())
}

func exitWithError(msg string, args ...any) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
	os.Exit(1)
}
