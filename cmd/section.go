package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gobeam-dev/gobeam/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	secFlags   sectionFlags
	secTorsion bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Resolve cross-section properties",
	Long: `Resolve a cross-section description into its derived properties:
area, second moment of area and section modulus for bending, or torsion
constant and extreme fiber radius with --torsion.

Examples:
  gobeam section --section tube --diameter 60 --thickness 5
  gobeam section --section rect --width 30 --height 60 --torsion
  gobeam section --section profile --profile IPE120`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	secFlags.register(sectionCmd)
	sectionCmd.Flags().BoolVar(&secTorsion, "torsion", false, "resolve torsion properties instead of bending")
}

func runSection(cmd *cobra.Command, args []string) error {
	repo, err := catalog.NewStore()
	if err != nil {
		return err
	}
	sec, err := secFlags.build(repo)
	if err != nil {
		return err
	}

	printBanner("SECTION PROPERTIES")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if secTorsion {
		props, err := sec.Torsion()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Section type:\t%s\n", sec.Kind)
		fmt.Fprintf(w, "  Section:\t%s\n", props.Desc)
		fmt.Fprintf(w, "  Area A:\t%s\n", fmtValue(props.Area, "mm^2"))
		fmt.Fprintf(w, "  Torsion constant Jt:\t%s\n", fmtValue(props.Constant, "mm^4"))
		fmt.Fprintf(w, "  Extreme radius r:\t%s\n", fmtValue(props.ExtremeRadius, "mm"))
	} else {
		props, err := sec.Bending()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Section type:\t%s\n", sec.Kind)
		fmt.Fprintf(w, "  Section:\t%s\n", props.Desc)
		fmt.Fprintf(w, "  Area A:\t%s\n", fmtValue(props.Area, "mm^2"))
		fmt.Fprintf(w, "  Second moment I:\t%s\n", fmtValue(props.Inertia, "mm^4"))
		fmt.Fprintf(w, "  Section modulus W:\t%s\n", fmtValue(props.Modulus, "mm^3"))
	}
	w.Flush()
	fmt.Println()

	return nil
}
