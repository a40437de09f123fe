// Package catalog provides the material and standard-profile tables the
// command layer resolves names against. The solver core never imports this
// package; it only ever receives already-resolved numeric properties.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed materials.yaml
var materialsYAML []byte

//go:embed profiles.yaml
var profilesYAML []byte

// ErrNotFound reports a lookup for a code that is not in the catalog.
var ErrNotFound = errors.New("not in catalog")

// Material is one engineering material with its elastic constants and
// admissible working stresses.
type Material struct {
	Code              string  `yaml:"code"`
	Name              string  `yaml:"name"`
	ElasticModulus    float64 `yaml:"e_mpa"`          // E (MPa)
	ShearModulus      float64 `yaml:"g_mpa"`          // G (MPa)
	AdmissibleBending float64 `yaml:"sigma_adm_mpa"`  // σ_adm (MPa)
	AdmissibleShear   float64 `yaml:"tau_adm_mpa"`    // τ_adm (MPa)
	Notes             string  `yaml:"notes"`
}

// Profile is one standard catalog section with pre-computed strong-axis
// properties.
type Profile struct {
	Code            string  `yaml:"code"`
	Name            string  `yaml:"name"`
	Type            string  `yaml:"type"`
	Height          float64 `yaml:"h_mm"`
	Width           float64 `yaml:"b_mm"`
	WebThickness    float64 `yaml:"tw_mm"`
	FlangeThickness float64 `yaml:"tf_mm"`
	Area            float64 `yaml:"area_mm2"`
	Inertia         float64 `yaml:"ix_mm4"` // Ix
	Modulus         float64 `yaml:"wx_mm3"` // Wx
	Notes           string  `yaml:"notes"`
}

// Repository resolves catalog names to numeric properties. The embedded
// store is the default implementation; callers that load tables from
// elsewhere can substitute their own.
type Repository interface {
	Materials() []Material
	Material(code string) (Material, error)
	Profiles() []Profile
	Profile(code string) (Profile, error)
}

// Store is the repository backed by the embedded YAML tables.
type Store struct {
	materials []Material
	profiles  []Profile
}

// NewStore parses the embedded tables.
func NewStore() (*Store, error) {
	var mats struct {
		Materials []Material `yaml:"materials"`
	}
	if err := yaml.Unmarshal(materialsYAML, &mats); err != nil {
		return nil, fmt.Errorf("parsing material catalog: %w", err)
	}
	var profs struct {
		Profiles []Profile `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(profilesYAML, &profs); err != nil {
		return nil, fmt.Errorf("parsing profile catalog: %w", err)
	}
	return &Store{materials: mats.Materials, profiles: profs.Profiles}, nil
}

// Materials lists every catalog material.
func (s *Store) Materials() []Material { return s.materials }

// Material looks a material up by code, case-insensitively.
func (s *Store) Material(code string) (Material, error) {
	for _, m := range s.materials {
		if strings.EqualFold(m.Code, code) {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: material %q", ErrNotFound, code)
}

// Profiles lists every catalog profile.
func (s *Store) Profiles() []Profile { return s.profiles }

// Profile looks a standard profile up by code, case-insensitively.
func (s *Store) Profile(code string) (Profile, error) {
	for _, p := range s.profiles {
		if strings.EqualFold(p.Code, code) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: profile %q", ErrNotFound, code)
}
