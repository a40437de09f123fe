package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/gobeam-dev/gobeam/internal/beam"
	"github.com/gobeam-dev/gobeam/internal/catalog"
	"github.com/gobeam-dev/gobeam/internal/diagram"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	bendLength   float64
	bendMaterial string
	bendE        float64
	bendSigmaAdm float64
	bendUDL      float64
	bendPoints   []string
	bendZones    []string
	bendSupports string
	bendSection  sectionFlags

	bendPNG     string
	bendXLSX    string
	bendPDF     string
	bendNoChart bool
)

var bendingCmd = &cobra.Command{
	Use:   "bending",
	Short: "Solve a beam bending problem and plot V, M and y diagrams",
	Long: `Solve shear, moment and deflection diagrams of a uniform beam under
point loads, zonal distributed loads and a whole-span uniform load.

Supported support pairs:
  pinned-pinned   simply supported beam
  fixed-free      cantilever clamped at the left end
  free-fixed      cantilever clamped at the right end

Positions are measured from the left end in mm; forces in N. A zonal
load is given as its total over the zone.

Examples:
  # Simply supported beam, 2 kN at midspan, round 40 mm bar
  gobeam bending --length 1000 --section round --diameter 40 \
      --point 2000@500 --supports pinned-pinned

  # Cantilever with a zonal load and a PNG of the diagrams
  gobeam bending --length 800 --section rect --width 30 --height 60 \
      --zone 1500@200:600 --supports fixed-free --png out/beam`,
	RunE: runBending,
}

func init() {
	rootCmd.AddCommand(bendingCmd)

	bendingCmd.Flags().Float64VarP(&bendLength, "length", "l", 0, "span length L (mm) [required]")
	bendingCmd.Flags().StringVarP(&bendMaterial, "material", "m", "", "catalog material code (default from config)")
	bendingCmd.Flags().Float64Var(&bendE, "elastic-modulus", 0, "override elastic modulus E (MPa)")
	bendingCmd.Flags().Float64Var(&bendSigmaAdm, "sigma-adm", 0, "override admissible bending stress (MPa)")

	bendingCmd.Flags().Float64VarP(&bendUDL, "udl", "q", 0, "uniform load given as a total over the whole span (N)")
	bendingCmd.Flags().StringArrayVarP(&bendPoints, "point", "P", nil, "point load magnitude@position, e.g. 2000@500 (repeatable)")
	bendingCmd.Flags().StringArrayVarP(&bendZones, "zone", "Z", nil, "zonal load total@start:end, e.g. 1500@200:600 (repeatable)")
	bendingCmd.Flags().StringVarP(&bendSupports, "supports", "s", "pinned-pinned", "support pair left-right")

	bendSection.register(bendingCmd)

	bendingCmd.Flags().StringVar(&bendPNG, "png", "", "export diagram PNGs with this base path")
	bendingCmd.Flags().StringVar(&bendXLSX, "xlsx", "", "export the diagram table to this .xlsx file")
	bendingCmd.Flags().StringVar(&bendPDF, "pdf", "", "export the calculation report to this .pdf file")
	bendingCmd.Flags().BoolVar(&bendNoChart, "no-chart", false, "skip the terminal diagram charts")

	bendingCmd.MarkFlagRequired("length")
}

func runBending(cmd *cobra.Command, args []string) error {
	repo, err := catalog.NewStore()
	if err != nil {
		return err
	}

	matCode := bendMaterial
	if matCode == "" {
		matCode = viper.GetString("material")
	}
	mat, err := repo.Material(matCode)
	if err != nil {
		return err
	}
	elastic := mat.ElasticModulus
	if bendE > 0 {
		elastic = bendE
	}
	sigmaAdm := mat.AdmissibleBending
	if bendSigmaAdm > 0 {
		sigmaAdm = bendSigmaAdm
	}

	sec, err := bendSection.build(repo)
	if err != nil {
		return err
	}
	props, err := sec.Bending()
	if err != nil {
		return err
	}

	points, err := parsePointLoads(bendPoints)
	if err != nil {
		return err
	}
	zones, err := parseZonalLoads(bendZones)
	if err != nil {
		return err
	}
	supports, err := parseSupportPair(bendSupports)
	if err != nil {
		return err
	}

	res, err := beam.SolveBending(beam.BendingInput{
		Length:         bendLength,
		ElasticModulus: elastic,
		Inertia:        props.Inertia,
		BaseTotal:      bendUDL,
		Points:         points,
		Zones:          zones,
		Supports:       supports,
	})
	if err != nil {
		return err
	}

	mMax := res.MaxMoment()
	vMax := res.MaxShear()
	yMax := res.MaxDeflection()
	sigma := beam.BendingStress(mMax, props.Modulus)

	var zonalTotal float64
	for _, z := range zones {
		zonalTotal += z.Total
	}
	kEq := beam.EquivalentStiffness(points, bendUDL+zonalTotal, yMax)

	check, err := beam.CheckStress(sigma, sigmaAdm)
	if err != nil {
		return err
	}

	sections := []diagram.ReportSection{
		{
			Title: "GEOMETRY",
			Rows: []diagram.ReportRow{
				{Label: "Material", Value: mat.Name},
				{Label: "Supports", Value: supports.String()},
				{Label: "Section type", Value: sec.Kind.String()},
				{Label: "Section", Value: props.Desc},
				{Label: "Area A", Value: fmtValue(props.Area, "mm^2")},
				{Label: "Second moment I", Value: fmtValue(props.Inertia, "mm^4")},
				{Label: "Section modulus W", Value: fmtValue(props.Modulus, "mm^3")},
				{Label: "Span length L", Value: fmtValue(bendLength, "mm")},
				{Label: "Elastic modulus E", Value: fmtValue(elastic, "MPa")},
			},
		},
		{
			Title: "LOADS",
			Rows: []diagram.ReportRow{
				{Label: "Whole-span uniform total", Value: fmtValue(bendUDL, "N")},
				{Label: "Zonal distributed total", Value: fmtValue(zonalTotal, "N")},
				{Label: "Equivalent distributed rate", Value: fmtValue((bendUDL+zonalTotal)/bendLength, "N/mm")},
				{Label: "Point loads", Value: strconv.Itoa(len(points))},
				{Label: "Zonal loads", Value: strconv.Itoa(len(zones))},
			},
		},
		{
			Title: "RESULTS",
			Rows: []diagram.ReportRow{
				{Label: "Max shear |V|max", Value: fmtValue(vMax, "N")},
				{Label: "Max moment |M|max", Value: fmtValue(mMax, "N.mm")},
				{Label: "Max deflection |y|max", Value: fmtValue(yMax, "mm")},
				{Label: "Bending stress sigma", Value: fmtValue(sigma, "MPa")},
				{Label: "Equivalent stiffness", Value: fmtValue(kEq, "N/mm")},
			},
		},
		{
			Title: "REACTIONS",
			Rows:  bendingReactionRows(res),
		},
		{
			Title: "VERIFICATION",
			Rows:  stressRows("sigma", check),
		},
	}

	printBanner("BEAM BENDING ANALYSIS")
	if bendUDL == 0 && len(points) == 0 && len(zones) == 0 {
		fmt.Println("  Note: no load applied; all diagrams are zero.")
		fmt.Println()
	}
	printSections(sections)

	if !bendNoChart {
		height := viper.GetInt("chart-height")
		fmt.Println(diagram.PlotSeries("Shear V (N)", res.Shear, height))
		fmt.Println()
		fmt.Println(diagram.PlotSeries("Moment M (N.mm)", res.Moment, height))
		fmt.Println()
		fmt.Println(diagram.PlotSeries("Deflection y (mm)", res.Deflection, height))
		fmt.Println()
	}

	if bendPNG != "" {
		exports := []struct {
			suffix, title, label string
			y                    []float64
		}{
			{"-shear.png", "Shear diagram", "V (N)", res.Shear},
			{"-moment.png", "Moment diagram", "M (N.mm)", res.Moment},
			{"-deflection.png", "Deflection diagram", "y (mm)", res.Deflection},
		}
		for _, e := range exports {
			name := bendPNG + e.suffix
			if err := diagram.ExportCurvePNG(e.title, e.label, res.X, e.y, name); err != nil {
				return fmt.Errorf("exporting %s: %w", name, err)
			}
			fmt.Printf("  PNG written to %s\n", name)
		}
	}

	if bendXLSX != "" {
		headers := []string{"x (mm)", "V (N)", "M (N.mm)", "y (mm)"}
		columns := [][]float64{res.X, res.Shear, res.Moment, res.Deflection}
		if err := diagram.ExportXLSX("Bending", headers, columns, bendXLSX); err != nil {
			return fmt.Errorf("exporting %s: %w", bendXLSX, err)
		}
		fmt.Printf("  XLSX written to %s\n", bendXLSX)
	}

	if bendPDF != "" {
		if err := diagram.ExportPDF("Beam Bending Analysis", sections, bendPDF); err != nil {
			return fmt.Errorf("exporting %s: %w", bendPDF, err)
		}
		fmt.Printf("  PDF written to %s\n", bendPDF)
	}

	return nil
}

func bendingReactionRows(res *beam.BendingResult) []diagram.ReportRow {
	r := res.Reactions
	switch {
	case res.Supports.Left == beam.Fixed:
		return []diagram.ReportRow{
			{Label: "Fixed-end force (left)", Value: fmtValue(r.ForceLeft, "N")},
			{Label: "Fixed-end moment (left)", Value: fmtValue(r.MomentLeft, "N.mm")},
		}
	case res.Supports.Right == beam.Fixed:
		return []diagram.ReportRow{
			{Label: "Fixed-end force (right)", Value: fmtValue(r.ForceRight, "N")},
			{Label: "Fixed-end moment (right)", Value: fmtValue(r.MomentRight, "N.mm")},
		}
	}
	return []diagram.ReportRow{
		{Label: "Reaction left Ra", Value: fmtValue(r.ForceLeft, "N")},
		{Label: "Reaction right Rb", Value: fmtValue(r.ForceRight, "N")},
	}
}

// stressRows builds the verification rows shared by bending and torsion.
func stressRows(label string, check beam.StressCheck) []diagram.ReportRow {
	if check.Stress <= 0 {
		return []diagram.ReportRow{
			{Label: "Stress verification", Value: "no significant load"},
			{Label: "Admissible " + label, Value: fmtValue(check.Admissible, "MPa")},
		}
	}
	verdict := "OK"
	if !check.OK {
		verdict = "NOT OK"
	}
	return []diagram.ReportRow{
		{Label: "Admissible " + label, Value: fmtValue(check.Admissible, "MPa")},
		{Label: "Material utilization", Value: fmtValue(check.Utilization, "%")},
		{Label: "Safety factor", Value: fmtValue(check.SafetyFactor, "")},
		{Label: "Verdict", Value: verdict},
	}
}

// fmtValue renders a quantity with its unit, handling the infinite
// equivalent-stiffness case.
func fmtValue(v float64, unit string) string {
	if math.IsInf(v, 0) {
		return "infinite"
	}
	s := strconv.FormatFloat(v, 'g', 6, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

func printBanner(title string) {
	fmt.Println()
	fmt.Print(diagram.SummaryBox(title, nil))
	fmt.Println()
}

func printSections(sections []diagram.ReportSection) {
	for _, sec := range sections {
		fmt.Printf("%s:\n", sec.Title)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, row := range sec.Rows {
			fmt.Fprintf(w, "  %s:\t%s\n", row.Label, row.Value)
		}
		w.Flush()
		fmt.Println()
	}
}
