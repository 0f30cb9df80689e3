package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/decoplan/buhlmann"
	"github.com/katalvlaran/decoplan/divelog"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a staged decompression schedule",
	Long: `Compute the decompression schedule for a square dive profile:
descend to the given depth, stay for the given bottom time, then ascend
through whatever stops the model requires.

Examples:
  # 40 m for 35 min on air, GF 30/85, ZH-L16C
  decoplan plan --depth 40 --time 35

  # Trimix 21/35 to 45 m, save the result to the logbook
  decoplan plan --depth 45 --time 25 --o2 0.21 --he 0.35 --save

  # Altitude lake at 0.89 bar, 5 m stop grid
  decoplan plan --depth 30 --time 30 --surface-pressure 0.89 --stop-step 5`,
	RunE: runPlan,
}

var (
	planDepth          float64
	planTime           float64
	planO2             float64
	planHe             float64
	planGFLow          float64
	planGFHigh         float64
	planVariant        string
	planSurface        float64
	planDescentRate    float64
	planAscentRate     float64
	planStopStep       float64
	planExcludeDescent bool
	planSave           bool
	planNotes          string
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Float64Var(&planDepth, "depth", 0, "maximum depth in metres (required)")
	planCmd.Flags().Float64Var(&planTime, "time", 0, "bottom time in minutes, descent included (required)")
	planCmd.Flags().Float64Var(&planO2, "o2", 0.21, "oxygen fraction of the mix")
	planCmd.Flags().Float64Var(&planHe, "he", 0, "helium fraction of the mix")
	planCmd.Flags().Float64Var(&planGFLow, "gf-low", 0.30, "gradient factor at the first stop")
	planCmd.Flags().Float64Var(&planGFHigh, "gf-high", 0.85, "gradient factor at the surface")
	planCmd.Flags().StringVar(&planVariant, "variant", "C", "ZH-L16 coefficient set (B or C)")
	planCmd.Flags().Float64Var(&planSurface, "surface-pressure", buhlmann.DefaultSurfacePressure, "surface pressure in bar")
	planCmd.Flags().Float64Var(&planDescentRate, "descent-rate", buhlmann.DefaultDescentRate, "descent rate in m/min")
	planCmd.Flags().Float64Var(&planAscentRate, "ascent-rate", buhlmann.DefaultAscentRate, "ascent rate in m/min")
	planCmd.Flags().Float64Var(&planStopStep, "stop-step", buhlmann.DefaultStopStep, "stop-grid increment in metres")
	planCmd.Flags().BoolVar(&planExcludeDescent, "exclude-descent", false, "measure bottom time from arrival at depth instead of from leaving the surface")
	planCmd.Flags().BoolVar(&planSave, "save", false, "save the computed plan to the logbook")
	planCmd.Flags().StringVar(&planNotes, "notes", "", "free-form note stored with a saved plan")

	_ = planCmd.MarkFlagRequired("depth")
	_ = planCmd.MarkFlagRequired("time")
}

// applyConfigDefaults lets a config file (or DECOPLAN_* env) override
// the built-in defaults for any flag the user did not set explicitly.
// Flags always win over config, config over built-ins.
func applyConfigDefaults(cmd *cobra.Command) {
	overrides := map[string]*float64{
		"gf-low":       &planGFLow,
		"gf-high":      &planGFHigh,
		"descent-rate": &planDescentRate,
		"ascent-rate":  &planAscentRate,
		"stop-step":    &planStopStep,
	}
	for key, target := range overrides {
		if !cmd.Flags().Changed(key) && viper.IsSet(key) {
			*target = viper.GetFloat64(key)
		}
	}
	if !cmd.Flags().Changed("variant") && viper.IsSet("variant") {
		planVariant = viper.GetString("variant")
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	applyConfigDefaults(cmd)

	profile := buhlmann.Profile{
		MaxDepth:   planDepth,
		BottomTime: planTime,
		Gas:        buhlmann.GasMix{O2: planO2, He: planHe},
		GFLow:      planGFLow,
		GFHigh:     planGFHigh,
		Variant:    buhlmann.ModelVariant(planVariant),
	}

	overrides := []buhlmann.Option{
		buhlmann.WithSurfacePressure(planSurface),
		buhlmann.WithRates(planDescentRate, planAscentRate),
		buhlmann.WithStopStep(planStopStep),
	}
	if !planExcludeDescent {
		overrides = append(overrides, buhlmann.WithBottomTimeIncludesDescent())
	}

	plan, err := buhlmann.PlanDive(profile, buhlmann.DefaultOptions(overrides...))
	if err != nil {
		return err
	}

	printPlan(cmd, plan, profile.Gas)

	if planSave {
		store, err := openLogbook()
		if err != nil {
			return err
		}
		defer store.Close()

		rec, err := store.SaveDive(profile, plan, planNotes)
		if err != nil {
			return err
		}
		slog.Info("plan saved to logbook", "id", rec.ID)
	}

	return nil
}

func printPlan(cmd *cobra.Command, plan buhlmann.Plan, gas buhlmann.GasMix) {
	cmd.Printf("ZH-L16%s  %.0f m / %.0f min  GF %.0f/%.0f  O2 %.0f%% He %.0f%%\n",
		plan.Variant, plan.MaxDepth, plan.BottomTime,
		plan.GFLow*100, plan.GFHigh*100, gas.O2*100, gas.He*100)

	if len(plan.Stops) == 0 {
		cmd.Println("No decompression stops required: direct ascent to the surface.")
	} else {
		cmd.Println("Depth    Stop")
		for _, s := range plan.Stops {
			cmd.Printf("%4.0f m   %3d min\n", s.Depth, s.Minutes)
		}
	}

	cmd.Printf("Total decompression: %d min\n", plan.TotalDecompressionMinutes())
	cmd.Printf("Runtime:             %.1f min\n", plan.RuntimeMinutes)
	cmd.Println("\nResearch and education only. Not a dive computer.")
}

// openLogbook resolves the database path (flag, env, config file, then
// the default under $HOME) and opens the store.
func openLogbook() (*divelog.Store, error) {
	path := viper.GetString("db")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".decoplan")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create logbook dir: %w", err)
		}
		path = filepath.Join(dir, "dives.db")
	}

	return divelog.Open(path)
}
