package cmd

import (
	"fmt"
	"os"

	"github.com/gobeam-dev/gobeam/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam Bending and Torsion Diagram Tool",
	Long: `gobeam - Go Beam Diagram Tool

A CLI tool for shear, moment, deflection and twist diagrams of uniform
beams and shafts under arbitrary combinations of point and distributed
loads.

The solver supports:
  - Simply supported beams and cantilevers (bending)
  - Fixed-free, free-fixed and fixed-fixed shafts (torsion)
  - Point loads, zonal distributed loads and a whole-span uniform load
  - Round, tubular, rectangular, rectangular-tube and catalog sections
  - Stress verification against the material's admissible limits

Diagrams are computed by double numerical integration over a fixed
240-station grid.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Diagram Tool                                    ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Shear, moment, deflection and twist diagrams for uniform")
		fmt.Println("  beams and shafts.")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • bending: solve a bending problem and plot V, M, y")
		fmt.Println("    • torsion: solve a torsion problem and plot T, theta")
		fmt.Println("    • section: resolve cross-section properties")
		fmt.Println("    • materials: list the material catalog")
		fmt.Println("    • profiles: list the standard profile catalog")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see all options.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gobeam.yaml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// initConfig loads defaults (e.g. the preferred material code) from the
// config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".gobeam")
		}
	}

	viper.SetEnvPrefix("GOBEAM")
	viper.AutomaticEnv()
	viper.SetDefault("material", "S235JR")
	viper.SetDefault("chart-height", 10)

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
