package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gonum.org/v1/plot/vg"

	rama "github.com/lorenzo-rovigatti/Ramachandran-Plotter"
	"github.com/lorenzo-rovigatti/Ramachandran-Plotter/ramaplot"
)

var (
	flagPDB          string
	flagRef          string
	flagType         string
	flagOut          string
	flagBackground   string
	flagPalette      string
	flagDPI          int
	flagFigSize      float64
	flagSigma        float64
	flagFilterSize   int
	flagPercentile   float64
	flagChains       string
	flagScatter      bool
	flagSaveAngles   string
	flagContourLevel float64
	flagContourAlpha float64
	flagContourColor string
	flagVerbose      bool
	flagConfigDir    string
)

var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "ramaplot",
	Short: "ramaplot draws Ramachandran plots from PDB structures",
	Long: `ramaplot extracts the backbone phi/psi dihedrals of a PDB structure,
classifies every residue, and draws them as contour lines over a smoothed
reference density showing the allowed conformational regions.

The reference table is a CSV file with type, phi and psi fields, such as
one derived from the Top8000 set; compressed tables (.zst, .gz, .flate,
.lzw) are read transparently. Options not given on the command line are
taken from ramaplot.yaml if one exists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(flagConfigDir)
		return err
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagPDB, "pdb", "i", "", "input PDB structure (required)")
	rootCmd.Flags().StringVarP(&flagRef, "ref", "r", "", "reference angle table CSV")
	rootCmd.Flags().StringVarP(&flagType, "type", "t", "", "plot type: All, General, Glycine, Proline, Pre-proline, Trans-proline or Cis-proline")
	rootCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output PNG path (default: derived from the structure name)")
	rootCmd.Flags().StringVar(&flagBackground, "background", "", "also write the smoothed background alone to this base name")
	rootCmd.Flags().StringVar(&flagPalette, "palette", "", "background color scheme")
	rootCmd.Flags().IntVar(&flagDPI, "dpi", 0, "output resolution")
	rootCmd.Flags().Float64Var(&flagFigSize, "figure-size", 0, "figure edge length, inches")
	rootCmd.Flags().Float64Var(&flagSigma, "sigma", 0, "smoothing blur sigma, pixels")
	rootCmd.Flags().IntVar(&flagFilterSize, "filter-size", 0, "smoothing neighborhood edge, pixels")
	rootCmd.Flags().Float64Var(&flagPercentile, "percentile", 0, "smoothing percentile rank, 0 to 100")
	rootCmd.Flags().StringVar(&flagChains, "chains", "", "chains to include, e.g. AB (default: all)")
	rootCmd.Flags().BoolVar(&flagScatter, "scatter", false, "mark the structure's own angle pairs on the figure")
	rootCmd.Flags().StringVar(&flagSaveAngles, "save-angles", "", "also write the extracted angle table to this CSV path")
	rootCmd.Flags().Float64Var(&flagContourLevel, "contour-level", 0, "cell count the contour line runs at")
	rootCmd.Flags().Float64Var(&flagContourAlpha, "contour-alpha", 0, "contour line opacity, 0 to 1")
	rootCmd.Flags().StringVar(&flagContourColor, "contour-color", "", "contour line color, named or #rrggbb")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log pipeline progress")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "directory holding ramaplot.yaml (default: the working directory)")
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	if flagPDB == "" {
		return fmt.Errorf("no input structure given (use --pdb)")
	}
	refPath := flagRef
	if refPath == "" {
		refPath = cfg.GetString(cfgKeyReference)
	}
	if refPath == "" {
		return fmt.Errorf("no reference table given (use --ref or set reference in ramaplot.yaml)")
	}
	typeName := flagType
	if typeName == "" {
		typeName = cfg.GetString(cfgKeyType)
	}
	ptype, err := rama.ParsePlotType(typeName)
	if err != nil {
		return err
	}
	paletteName := flagPalette
	if paletteName == "" {
		paletteName = cfg.GetString(cfgKeyPalette)
	}
	scheme, err := ramaplot.Named(paletteName)
	if err != nil {
		return err
	}
	spec, err := contourSpec(cmd)
	if err != nil {
		return err
	}

	verbose("reading reference table %s", refPath)
	ref, err := rama.ReadTable(refPath)
	if err != nil {
		return err
	}
	verbose("read %d reference records", len(ref))
	verbose("reading structure %s", flagPDB)
	mol, err := rama.PDBRead(flagPDB)
	if err != nil {
		return err
	}
	sets, err := rama.BackboneList(mol, flagChains)
	if err != nil {
		return err
	}
	user, err := rama.Angles(mol, sets)
	if err != nil {
		return err
	}
	verbose("extracted %d angle pairs from %d atoms", len(user), mol.Len())
	if flagSaveAngles != "" {
		if err := rama.WriteTable(user, flagSaveAngles); err != nil {
			return err
		}
		verbose("wrote angle table %s", flagSaveAngles)
	}

	o := ramaplot.DefaultOptions()
	o.PlotType = ptype
	o.Scheme = scheme
	o.Smooth = smoothSpec(cmd)
	o.Contours = []ramaplot.ContourSpec{spec}
	o.Export.DPI = flagDPI
	if o.Export.DPI == 0 {
		o.Export.DPI = cfg.GetInt(cfgKeyDPI)
	}
	edge := vg.Length(figureInches(cmd)) * vg.Inch
	o.Export.Width, o.Export.Height = edge, edge
	o.Scatter = flagScatter
	if flagBackground != "" {
		o.Background = flagBackground + ".png"
	}
	out := flagOut
	if out == "" {
		out = outputName(flagPDB, ptype)
	}
	//the user's own angles are filtered to the same population as the
	//background; an empty selection still renders, just without contours
	verbose("rendering %s", out)
	if err := ramaplot.Render(ref, user.Filter(ptype), out, o); err != nil {
		return err
	}
	verbose("done")
	return nil
}

// smoothSpec merges the smoothing flags over the config file values.
func smoothSpec(cmd *cobra.Command) ramaplot.SmoothOptions {
	s := ramaplot.SmoothOptions{
		Sigma:      cfg.GetFloat64(cfgKeySigma),
		Size:       cfg.GetInt(cfgKeySize),
		Percentile: cfg.GetFloat64(cfgKeyPercentile),
	}
	if cmd.Flags().Changed("sigma") {
		s.Sigma = flagSigma
	}
	if cmd.Flags().Changed("filter-size") {
		s.Size = flagFilterSize
	}
	if cmd.Flags().Changed("percentile") {
		s.Percentile = flagPercentile
	}
	return s
}

// figureInches merges the figure edge flag over the config file value.
func figureInches(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("figure-size") {
		return flagFigSize
	}
	return cfg.GetFloat64(cfgKeyFigure)
}

// contourSpec merges the contour flags over the config file values.
func contourSpec(cmd *cobra.Command) (ramaplot.ContourSpec, error) {
	spec := ramaplot.ContourSpec{
		Level: cfg.GetFloat64(cfgKeyLevel),
		Alpha: cfg.GetFloat64(cfgKeyAlpha),
	}
	colorName := cfg.GetString(cfgKeyColor)
	if cmd.Flags().Changed("contour-level") {
		spec.Level = flagContourLevel
	}
	if cmd.Flags().Changed("contour-alpha") {
		spec.Alpha = flagContourAlpha
	}
	if flagContourColor != "" {
		colorName = flagContourColor
	}
	c, err := parseColor(colorName)
	if err != nil {
		return spec, err
	}
	spec.Color = c
	return spec, nil
}

// outputName derives the default output path from the structure name and
// the selected population, 1abc.pdb and Glycine giving 1abc-glycine.png.
func outputName(pdb string, f rama.CategoryFilter) string {
	base := strings.TrimSuffix(filepath.Base(pdb), filepath.Ext(pdb))
	return base + "-" + strings.ToLower(string(f)) + ".png"
}

func verbose(format string, args ...any) {
	if flagVerbose {
		log.Printf(format, args...)
	}
}
