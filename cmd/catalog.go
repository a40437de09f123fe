package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gobeam-dev/gobeam/internal/catalog"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	Long: `List the built-in material catalog with elastic constants and
admissible working stresses. The material code is what the --material
flag of the bending and torsion commands expects.`,
	RunE: runMaterials,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the standard profile catalog",
	Long: `List the built-in standard profile catalog with strong-axis section
properties. The profile code is what --profile expects for
--section profile.`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runMaterials(cmd *cobra.Command, args []string) error {
	repo, err := catalog.NewStore()
	if err != nil {
		return err
	}

	printBanner("MATERIAL CATALOG")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CODE\tNAME\tE (MPa)\tG (MPa)\tsigma adm (MPa)\ttau adm (MPa)")
	fmt.Fprintln(w, "  ────\t────\t───────\t───────\t───────────────\t─────────────")
	for _, m := range repo.Materials() {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
			m.Code, m.Name, m.ElasticModulus, m.ShearModulus, m.AdmissibleBending, m.AdmissibleShear)
	}
	w.Flush()
	fmt.Println()

	return nil
}

func runProfiles(cmd *cobra.Command, args []string) error {
	repo, err := catalog.NewStore()
	if err != nil {
		return err
	}

	printBanner("STANDARD PROFILE CATALOG")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  CODE\tTYPE\th (mm)\tb (mm)\ttw (mm)\ttf (mm)\tA (mm^2)\tIx (mm^4)\tWx (mm^3)")
	fmt.Fprintln(w, "  ────\t────\t──────\t──────\t───────\t───────\t────────\t─────────\t─────────")
	for _, p := range repo.Profiles() {
		fmt.Fprintf(w, "  %s\t%s\t%.0f\t%.0f\t%.1f\t%.1f\t%.0f\t%.4g\t%.4g\n",
			p.Code, p.Type, p.Height, p.Width, p.WebThickness, p.FlangeThickness, p.Area, p.Inertia, p.Modulus)
	}
	w.Flush()
	fmt.Println()

	return nil
}
