package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobeam-dev/gobeam/internal/beam"
	"github.com/gobeam-dev/gobeam/internal/catalog"
	"github.com/gobeam-dev/gobeam/internal/section"
	"github.com/spf13/cobra"
)

// parsePointLoad parses "magnitude@position", e.g. "2000@500".
func parsePointLoad(s string) (beam.PointLoad, error) {
	mag, pos, ok := strings.Cut(s, "@")
	if !ok {
		return beam.PointLoad{}, fmt.Errorf("invalid point load %q: expected magnitude@position", s)
	}
	m, err := strconv.ParseFloat(strings.TrimSpace(mag), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("invalid point load magnitude %q: %v", mag, err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(pos), 64)
	if err != nil {
		return beam.PointLoad{}, fmt.Errorf("invalid point load position %q: %v", pos, err)
	}
	return beam.PointLoad{Magnitude: m, Position: x}, nil
}

// parseZonalLoad parses "total@start:end", e.g. "1500@200:600".
func parseZonalLoad(s string) (beam.ZonalLoad, error) {
	mag, zone, ok := strings.Cut(s, "@")
	if !ok {
		return beam.ZonalLoad{}, fmt.Errorf("invalid zonal load %q: expected total@start:end", s)
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(mag), 64)
	if err != nil {
		return beam.ZonalLoad{}, fmt.Errorf("invalid zonal load total %q: %v", mag, err)
	}
	from, to, ok := strings.Cut(zone, ":")
	if !ok {
		return beam.ZonalLoad{}, fmt.Errorf("invalid zonal load %q: expected total@start:end", s)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
	if err != nil {
		return beam.ZonalLoad{}, fmt.Errorf("invalid zone start %q: %v", from, err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(to), 64)
	if err != nil {
		return beam.ZonalLoad{}, fmt.Errorf("invalid zone end %q: %v", to, err)
	}
	return beam.ZonalLoad{Total: total, Start: start, End: end}, nil
}

func parsePointLoads(specs []string) ([]beam.PointLoad, error) {
	var out []beam.PointLoad
	for _, s := range specs {
		p, err := parsePointLoad(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseZonalLoads(specs []string) ([]beam.ZonalLoad, error) {
	var out []beam.ZonalLoad
	for _, s := range specs {
		z, err := parseZonalLoad(s)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, nil
}

// parseSupport maps a support name to its enum value. "roller" and "pin"
// are accepted aliases for pinned.
func parseSupport(s string) (beam.Support, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pinned", "pin", "roller":
		return beam.Pinned, nil
	case "fixed", "clamped":
		return beam.Fixed, nil
	case "free":
		return beam.Free, nil
	}
	return 0, fmt.Errorf("unknown support %q: use pinned, fixed or free", s)
}

// parseSupportPair parses "left-right", e.g. "pinned-pinned" or "fixed-free".
func parseSupportPair(s string) (beam.SupportPair, error) {
	left, right, ok := strings.Cut(s, "-")
	if !ok {
		return beam.SupportPair{}, fmt.Errorf("invalid support pair %q: expected left-right, e.g. pinned-pinned", s)
	}
	l, err := parseSupport(left)
	if err != nil {
		return beam.SupportPair{}, err
	}
	r, err := parseSupport(right)
	if err != nil {
		return beam.SupportPair{}, err
	}
	return beam.SupportPair{Left: l, Right: r}, nil
}

// sectionFlags holds the section description common to the bending, torsion
// and section commands.
type sectionFlags struct {
	kind      string
	diameter  float64
	thickness float64
	width     float64
	height    float64
	wall      float64
	profile   string
}

// build resolves the flags into a section, consulting the catalog repository
// for standard profiles.
func (f *sectionFlags) build(repo catalog.Repository) (section.Section, error) {
	switch strings.ToLower(strings.TrimSpace(f.kind)) {
	case "round":
		return section.NewRound(f.diameter), nil
	case "tube":
		return section.NewTube(f.diameter, f.thickness), nil
	case "rect", "rectangular":
		return section.NewRect(f.width, f.height), nil
	case "rect-tube", "recttube":
		return section.NewRectTube(f.width, f.height, f.wall), nil
	case "profile", "standard":
		p, err := repo.Profile(f.profile)
		if err != nil {
			return section.Section{}, err
		}
		desc := fmt.Sprintf("%s (%s) h=%.4g mm, b=%.4g mm, tw=%.4g mm, tf=%.4g mm",
			p.Name, p.Type, p.Height, p.Width, p.WebThickness, p.FlangeThickness)
		return section.NewStandard(p.Code, p.Area, p.Inertia, p.Modulus, desc), nil
	}
	return section.Section{}, fmt.Errorf("unknown section type %q: use round, tube, rect, rect-tube or profile", f.kind)
}

// register adds the shared section flags to a command.
func (f *sectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "section", "round", "section type: round, tube, rect, rect-tube, profile")
	cmd.Flags().Float64Var(&f.diameter, "diameter", 0, "outer diameter (mm) for round and tube sections")
	cmd.Flags().Float64Var(&f.thickness, "thickness", 0, "wall thickness (mm) for tube sections")
	cmd.Flags().Float64Var(&f.width, "width", 0, "width b (mm) for rectangular sections")
	cmd.Flags().Float64Var(&f.height, "height", 0, "height h (mm) for rectangular sections")
	cmd.Flags().Float64Var(&f.wall, "wall", 0, "wall thickness s (mm) for rect-tube sections")
	cmd.Flags().StringVar(&f.profile, "profile", "", "catalog profile code (e.g. IPE100) for profile sections")
}
