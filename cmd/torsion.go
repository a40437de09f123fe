package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gobeam-dev/gobeam/internal/beam"
	"github.com/gobeam-dev/gobeam/internal/catalog"
	"github.com/gobeam-dev/gobeam/internal/diagram"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	torsLength   float64
	torsMaterial string
	torsG        float64
	torsTauAdm   float64
	torsUDL      float64
	torsPoints   []string
	torsZones    []string
	torsSupports string
	torsSection  sectionFlags

	torsPNG     string
	torsXLSX    string
	torsPDF     string
	torsNoChart bool
)

var torsionCmd = &cobra.Command{
	Use:   "torsion",
	Short: "Solve a shaft torsion problem and plot T and twist diagrams",
	Long: `Solve the internal torque and twist-angle diagrams of a uniform shaft
under point torques, zonal distributed torques and a whole-span uniform
torque.

Supported support pairs:
  fixed-free    clamped at the left end
  free-fixed    clamped at the right end
  fixed-fixed   clamped at both ends (statically indeterminate)

Positions are in mm; torques are entered in N·m and converted internally.
Torsion accepts round, tube, rect and rect-tube sections.

Examples:
  # Fixed-free shaft with a 60 N·m torque at 400 mm
  gobeam torsion --length 800 --section round --diameter 30 \
      --torque 60@400 --supports fixed-free

  # Fixed-fixed shaft with a zonal torque
  gobeam torsion --length 1200 --section tube --diameter 60 --thickness 5 \
      --zone 90@300:900 --supports fixed-fixed`,
	RunE: runTorsion,
}

func init() {
	rootCmd.AddCommand(torsionCmd)

	torsionCmd.Flags().Float64VarP(&torsLength, "length", "l", 0, "span length L (mm) [required]")
	torsionCmd.Flags().StringVarP(&torsMaterial, "material", "m", "", "catalog material code (default from config)")
	torsionCmd.Flags().Float64Var(&torsG, "shear-modulus", 0, "override shear modulus G (MPa)")
	torsionCmd.Flags().Float64Var(&torsTauAdm, "tau-adm", 0, "override admissible shear stress (MPa)")

	torsionCmd.Flags().Float64VarP(&torsUDL, "udl", "q", 0, "distributed torque given as a total over the whole span (N·m)")
	torsionCmd.Flags().StringArrayVarP(&torsPoints, "torque", "T", nil, "point torque magnitude@position in N·m, e.g. 60@400 (repeatable)")
	torsionCmd.Flags().StringArrayVarP(&torsZones, "zone", "Z", nil, "zonal torque total@start:end in N·m, e.g. 90@300:900 (repeatable)")
	torsionCmd.Flags().StringVarP(&torsSupports, "supports", "s", "fixed-free", "support pair left-right")

	torsSection.register(torsionCmd)

	torsionCmd.Flags().StringVar(&torsPNG, "png", "", "export diagram PNGs with this base path")
	torsionCmd.Flags().StringVar(&torsXLSX, "xlsx", "", "export the diagram table to this .xlsx file")
	torsionCmd.Flags().StringVar(&torsPDF, "pdf", "", "export the calculation report to this .pdf file")
	torsionCmd.Flags().BoolVar(&torsNoChart, "no-chart", false, "skip the terminal diagram charts")

	torsionCmd.MarkFlagRequired("length")
}

func runTorsion(cmd *cobra.Command, args []string) error {
	repo, err := catalog.NewStore()
	if err != nil {
		return err
	}

	matCode := torsMaterial
	if matCode == "" {
		matCode = viper.GetString("material")
	}
	mat, err := repo.Material(matCode)
	if err != nil {
		return err
	}
	shear := mat.ShearModulus
	if torsG > 0 {
		shear = torsG
	}
	tauAdm := mat.AdmissibleShear
	if torsTauAdm > 0 {
		tauAdm = torsTauAdm
	}

	sec, err := torsSection.build(repo)
	if err != nil {
		return err
	}
	props, err := sec.Torsion()
	if err != nil {
		return err
	}

	pointsNm, err := parsePointLoads(torsPoints)
	if err != nil {
		return err
	}
	zonesNm, err := parseZonalLoads(torsZones)
	if err != nil {
		return err
	}
	supports, err := parseSupportPair(torsSupports)
	if err != nil {
		return err
	}

	// Torques are entered in N·m; the solver works in N·mm throughout.
	points := make([]beam.PointLoad, len(pointsNm))
	for i, p := range pointsNm {
		points[i] = beam.PointLoad{Magnitude: p.Magnitude * 1000, Position: p.Position}
	}
	zones := make([]beam.ZonalLoad, len(zonesNm))
	for i, z := range zonesNm {
		zones[i] = beam.ZonalLoad{Total: z.Total * 1000, Start: z.Start, End: z.End}
	}

	res, err := beam.SolveTorsion(beam.TorsionInput{
		Length:          torsLength,
		ShearModulus:    shear,
		TorsionConstant: props.Constant,
		BaseTotal:       torsUDL * 1000,
		Points:          points,
		Zones:           zones,
		Supports:        supports,
	})
	if err != nil {
		return err
	}

	tMax := res.MaxTorque()
	thetaMax := res.MaxTwist()
	tau := beam.TorsionStress(tMax, props.ExtremeRadius, props.Constant)

	var zonalTotalNm float64
	for _, z := range zonesNm {
		zonalTotalNm += z.Total
	}
	totalNm := torsUDL + zonalTotalNm

	check, err := beam.CheckStress(tau, tauAdm)
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
				{Label: "Torsion constant Jt", Value: fmtValue(props.Constant, "mm^4")},
				{Label: "Extreme radius r", Value: fmtValue(props.ExtremeRadius, "mm")},
				{Label: "Span length L", Value: fmtValue(torsLength, "mm")},
				{Label: "Shear modulus G", Value: fmtValue(shear, "MPa")},
			},
		},
		{
			Title: "LOADS",
			Rows: []diagram.ReportRow{
				{Label: "Whole-span distributed total", Value: fmtValue(torsUDL, "N.m")},
				{Label: "Zonal distributed total", Value: fmtValue(zonalTotalNm, "N.m")},
				{Label: "Overall applied torque", Value: fmtValue(totalNm, "N.m")},
				{Label: "Point torques", Value: strconv.Itoa(len(points))},
				{Label: "Zonal torques", Value: strconv.Itoa(len(zones))},
			},
		},
		{
			Title: "RESULTS",
			Rows: []diagram.ReportRow{
				{Label: "Max internal torque |T|max", Value: fmtValue(tMax/1000, "N.m")},
				{Label: "Max shear stress tau", Value: fmtValue(tau, "MPa")},
				{Label: "Max twist |theta|max", Value: fmtValue(thetaMax*180/math.Pi, "deg")},
				{Label: "Max twist |theta|max", Value: fmtValue(thetaMax, "rad")},
				{Label: "Relative end rotation", Value: fmtValue(res.EndRotation()*180/math.Pi, "deg")},
			},
		},
		{
			Title: "REACTIONS",
			Rows:  torsionReactionRows(res),
		},
		{
			Title: "VERIFICATION",
			Rows:  stressRows("tau", check),
		},
	}

	printBanner("SHAFT TORSION ANALYSIS")
	if torsUDL == 0 && len(points) == 0 && len(zones) == 0 {
		fmt.Println("  Note: no torque applied; all diagrams are zero.")
		fmt.Println()
	}
	printSections(sections)

	torqueNm := make([]float64, len(res.Torque))
	for i, t := range res.Torque {
		torqueNm[i] = t / 1000
	}
	twistDeg := make([]float64, len(res.Twist))
	for i, th := range res.Twist {
		twistDeg[i] = th * 180 / math.Pi
	}

	if !torsNoChart {
		height := viper.GetInt("chart-height")
		fmt.Println(diagram.PlotSeries("Internal torque T (N.m)", torqueNm, height))
		fmt.Println()
		fmt.Println(diagram.PlotSeries("Twist angle theta (deg)", twistDeg, height))
		fmt.Println()
	}

	if torsPNG != "" {
		exports := []struct {
			suffix, title, label string
			y                    []float64
		}{
			{"-torque.png", "Internal torque diagram", "T (N.m)", torqueNm},
			{"-twist.png", "Twist angle diagram", "theta (deg)", twistDeg},
		}
		for _, e := range exports {
			name := torsPNG + e.suffix
			if err := diagram.ExportCurvePNG(e.title, e.label, res.X, e.y, name); err != nil {
				return fmt.Errorf("exporting %s: %w", name, err)
			}
			fmt.Printf("  PNG written to %s\n", name)
		}
	}

	if torsXLSX != "" {
		headers := []string{"x (mm)", "T (N.m)", "theta (deg)"}
		columns := [][]float64{res.X, torqueNm, twistDeg}
		if err := diagram.ExportXLSX("Torsion", headers, columns, torsXLSX); err != nil {
			return fmt.Errorf("exporting %s: %w", torsXLSX, err)
		}
		fmt.Printf("  XLSX written to %s\n", torsXLSX)
	}

	if torsPDF != "" {
		if err := diagram.ExportPDF("Shaft Torsion Analysis", sections, torsPDF); err != nil {
			return fmt.Errorf("exporting %s: %w", torsPDF, err)
		}
		fmt.Printf("  PDF written to %s\n", torsPDF)
	}

	return nil
}

func torsionReactionRows(res *beam.TorsionResult) []diagram.ReportRow {
	r := res.Reactions
	switch {
	case res.Supports.Left == beam.Fixed && res.Supports.Right == beam.Fixed:
		return []diagram.ReportRow{
			{Label: "Reaction torque left", Value: fmtValue(r.Left/1000, "N.m")},
			{Label: "Reaction torque right", Value: fmtValue(r.Right/1000, "N.m")},
		}
	case res.Supports.Right == beam.Fixed:
		return []diagram.ReportRow{
			{Label: "Reaction torque (right)", Value: fmtValue(r.Right/1000, "N.m")},
		}
	}
	return []diagram.ReportRow{
		{Label: "Reaction torque (left)", Value: fmtValue(r.Left/1000, "N.m")},
	}
}
