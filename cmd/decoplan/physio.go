package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/decoplan/physio"
)

var physioCmd = &cobra.Command{
	Use:   "physio",
	Short: "Field physiology calculators",
	Long: `Quick calculators for surface conditions around a dive day:
wind chill and heat index for exposure planning, sweat rate for
rehydration, and OSHA noise dose for compressor and boat work.`,
}

var windChillCmd = &cobra.Command{
	Use:   "windchill",
	Short: "Wind chill index (JAG/TI)",
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, _ := cmd.Flags().GetFloat64("temp")
		wind, _ := cmd.Flags().GetFloat64("wind")

		wc, err := physio.WindChill(temp, wind)
		if err != nil {
			return err
		}
		cmd.Printf("Wind chill: %.1f °C (air %.1f °C, wind %.1f km/h)\n", wc, temp, wind)

		return nil
	},
}

var heatIndexCmd = &cobra.Command{
	Use:   "heatindex",
	Short: "Heat index (Rothfusz regression)",
	RunE: func(cmd *cobra.Command, args []string) error {
		temp, _ := cmd.Flags().GetFloat64("temp")
		rh, _ := cmd.Flags().GetFloat64("humidity")

		hi, err := physio.HeatIndex(temp, rh)
		if err != nil {
			return err
		}
		cmd.Printf("Heat index: %.1f °C (air %.1f °C, RH %.0f%%)\n", hi, temp, rh)

		return nil
	},
}

var sweatRateCmd = &cobra.Command{
	Use:   "sweatrate",
	Short: "Sweat rate from a fluid-balance weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		pre, _ := cmd.Flags().GetFloat64("pre")
		post, _ := cmd.Flags().GetFloat64("post")
		fluid, _ := cmd.Flags().GetFloat64("fluid")
		urine, _ := cmd.Flags().GetFloat64("urine")
		hours, _ := cmd.Flags().GetFloat64("hours")

		rate, err := physio.SweatRate(pre, post, fluid, urine, hours)
		if err != nil {
			return err
		}
		cmd.Printf("Sweat rate: %.2f L/h over %.1f h\n", rate, hours)

		return nil
	},
}

var noiseDoseCmd = &cobra.Command{
	Use:   "noisedose",
	Short: "OSHA daily noise dose from level/hours pairs",
	Long: `Compute the OSHA daily noise dose from one or more exposures,
each given as --exposure LEVEL:HOURS (level in dBA, duration in hours).

Example:
  decoplan physio noisedose --exposure 95:4 --exposure 90:2`,
	RunE: runNoiseDose,
}

var noiseExposureSpecs []string

func init() {
	rootCmd.AddCommand(physioCmd)
	physioCmd.AddCommand(windChillCmd)
	physioCmd.AddCommand(heatIndexCmd)
	physioCmd.AddCommand(sweatRateCmd)
	physioCmd.AddCommand(noiseDoseCmd)

	windChillCmd.Flags().Float64("temp", 0, "air temperature in °C (required)")
	windChillCmd.Flags().Float64("wind", 0, "wind speed in km/h (required)")
	_ = windChillCmd.MarkFlagRequired("temp")
	_ = windChillCmd.MarkFlagRequired("wind")

	heatIndexCmd.Flags().Float64("temp", 0, "air temperature in °C (required)")
	heatIndexCmd.Flags().Float64("humidity", 0, "relative humidity in percent (required)")
	_ = heatIndexCmd.MarkFlagRequired("temp")
	_ = heatIndexCmd.MarkFlagRequired("humidity")

	sweatRateCmd.Flags().Float64("pre", 0, "pre-session body weight in kg (required)")
	sweatRateCmd.Flags().Float64("post", 0, "post-session body weight in kg (required)")
	sweatRateCmd.Flags().Float64("fluid", 0, "fluid intake during the session in L")
	sweatRateCmd.Flags().Float64("urine", 0, "urine output during the session in L")
	sweatRateCmd.Flags().Float64("hours", 1, "session duration in hours")
	_ = sweatRateCmd.MarkFlagRequired("pre")
	_ = sweatRateCmd.MarkFlagRequired("post")

	noiseDoseCmd.Flags().StringArrayVar(&noiseExposureSpecs, "exposure", nil, "exposure as LEVEL:HOURS, repeatable (required)")
	_ = noiseDoseCmd.MarkFlagRequired("exposure")
}

func runNoiseDose(cmd *cobra.Command, args []string) error {
	exposures, err := parseExposures(noiseExposureSpecs)
	if err != nil {
		return err
	}

	dose, err := physio.NoiseDose(exposures)
	if err != nil {
		return err
	}
	cmd.Printf("Noise dose: %.1f%% of the daily limit\n", dose)

	twa, err := physio.TWA(dose)
	if err != nil {
		return err
	}
	cmd.Printf("8-hour TWA: %.1f dBA\n", twa)

	return nil
}

// parseExposures decodes repeated LEVEL:HOURS flag values.
func parseExposures(specs []string) ([]physio.NoiseExposure, error) {
	exposures := make([]physio.NoiseExposure, 0, len(specs))
	for _, spec := range specs {
		level, hours, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("exposure %q: want LEVEL:HOURS", spec)
		}

		l, err := strconv.ParseFloat(strings.TrimSpace(level), 64)
		if err != nil {
			return nil, fmt.Errorf("exposure %q: bad level: %w", spec, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
		if err != nil {
			return nil, fmt.Errorf("exposure %q: bad hours: %w", spec, err)
		}

		exposures = append(exposures, physio.NoiseExposure{LevelDBA: l, Hours: h})
	}

	return exposures, nil
}
