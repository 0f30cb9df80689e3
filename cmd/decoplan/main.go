// decoplan is a command-line decompression-schedule planner built on the
// Bühlmann ZH-L16 model with Gradient Factors, with a SQLite logbook and
// a few field physiology calculators on the side.
//
// It is a research and education tool, not a dive computer.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
