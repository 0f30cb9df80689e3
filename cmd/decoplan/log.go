package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the dive logbook",
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently saved plans, newest first",
	RunE:  runLogList,
}

var logShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved plan in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogShow,
}

var logListLimit int

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logShowCmd)

	logListCmd.Flags().IntVarP(&logListLimit, "limit", "n", 20, "maximum number of entries to show")
}

func runLogList(cmd *cobra.Command, args []string) error {
	store, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.RecentDives(logListLimit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		cmd.Println("Logbook is empty.")
		return nil
	}

	for _, r := range recs {
		cmd.Printf("%s  %-14s  ZH-L16%s  %4.0f m / %3.0f min  GF %.0f/%.0f  deco %3d min  %s\n",
			r.ID, humanize.Time(r.SavedAt), r.Variant,
			r.MaxDepth, r.BottomTime, r.GFLow*100, r.GFHigh*100,
			r.TotalDeco, r.Notes)
	}

	return nil
}

func runLogShow(cmd *cobra.Command, args []string) error {
	store, err := openLogbook()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Dive(args[0])
	if err != nil {
		return err
	}

	stops, err := rec.Stops()
	if err != nil {
		return err
	}

	cmd.Printf("Dive %s\n", rec.ID)
	cmd.Printf("Saved:    %s (%s)\n", rec.SavedAt.Format("2006-01-02 15:04 MST"), humanize.Time(rec.SavedAt))
	cmd.Printf("Model:    ZH-L16%s  GF %.0f/%.0f\n", rec.Variant, rec.GFLow*100, rec.GFHigh*100)
	cmd.Printf("Profile:  %.0f m for %.0f min  (O2 %.0f%%, He %.0f%%)\n",
		rec.MaxDepth, rec.BottomTime, rec.O2*100, rec.He*100)

	if len(stops) == 0 {
		cmd.Println("Schedule: no decompression stops")
	} else {
		cmd.Println("Schedule:")
		for _, s := range stops {
			cmd.Printf("  %4.0f m   %3d min\n", s.Depth, s.Minutes)
		}
	}

	cmd.Printf("Total decompression: %d min\n", rec.TotalDeco)
	cmd.Printf("Runtime:             %.1f min\n", rec.Runtime)
	if rec.Notes != "" {
		cmd.Printf("Notes:    %s\n", rec.Notes)
	}

	return nil
}
