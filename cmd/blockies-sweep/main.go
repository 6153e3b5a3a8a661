package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"blockies/internal/sweep"
)

func main() {
	count := flag.Int("count", 10000, "number of seeds to generate")
	prefix := flag.String("prefix", "seed-", "seed prefix; seeds are prefix0, prefix1, ...")
	size := flag.Int("size", 8, "grid side length")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("sweeping %d seeds (%d workers, size %d)", *count, *workers, *size)
	start := time.Now()
	report, err := sweep.Run(ctx, sweep.Config{Count: *count, Prefix: *prefix, Size: *size, Workers: *workers})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("done in %s", time.Since(start).Round(time.Millisecond))

	shares := report.Shares()
	expected := sweep.Expected()
	labels := [3]string{"background", "foreground", "spot"}
	fmt.Printf("Cells (drawn half only):\n")
	for i, label := range labels {
		fmt.Printf("  %-10s %8d  %.4f (expected %.4f)\n", label, report.CellCounts[i], shares[i], expected[i])
	}
	fmt.Printf("  chi-square %.3f, p=%.4f\n", report.ChiSquare, report.PValue)
	fmt.Printf("Palette:\n")
	fmt.Printf("  hue mean %.2f, stddev %.2f\n", report.HueMean, report.HueStdDev)
	fmt.Printf("  lightness median %.2f%%\n", report.LightnessMedian)
	fmt.Printf("Bitmaps:\n")
	fmt.Printf("  distinct %d, collisions %d\n", report.DistinctBitmaps, report.Collisions)
}
