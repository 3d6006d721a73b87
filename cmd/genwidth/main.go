// Command genwidth emits concrete fixed-array U[B]/Bits[B] types for a
// menu of bit widths, writing Go source that delegates every method to
// bigword.Uint/bigword.Bits (see ../../gen_widths.go for the checked-in
// output of the default menu). This is the "code-generator covering a
// menu of common widths" half of the const-generics workaround spec.md §9
// sanctions; bigword.Uint itself is the dynamic-width escape hatch.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	var widths []string
	var outPath string

	rootCmd := &cobra.Command{
		Use:   "genwidth",
		Short: "Generate concrete fixed-width U[B] types for bigword",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate gen_widths.go for the requested widths",
		RunE: func(cmd *cobra.Command, args []string) error {
			menu := widthMenu
			if len(widths) > 0 {
				menu = nil
				for _, w := range widths {
					n, err := strconv.Atoi(strings.TrimSpace(w))
					if err != nil {
						return fmt.Errorf("invalid width %q: %w", w, err)
					}
					menu = append(menu, n)
				}
			}

			var buf bytes.Buffer
			buf.WriteString("// Code generated by cmd/genwidth; DO NOT EDIT.\n\npackage bigword\n")
			for _, w := range menu {
				limbs := (w + 63) / 64
				if limbs == 0 {
					limbs = 1
				}
				log.Printf("generating U%d (%d limbs)", w, limbs)
				if err := widthTemplate.Execute(&buf, widthData{Width: w, Limbs: limbs}); err != nil {
					return err
				}
			}

			if outPath == "" {
				fmt.Print(buf.String())
				return nil
			}
			return os.WriteFile(outPath, buf.Bytes(), 0o644)
		},
	}
	generateCmd.Flags().StringSliceVar(&widths, "widths", nil, "Comma-separated bit widths (default: built-in menu)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "Output file path (default: stdout)")

	rootCmd.AddCommand(generateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
