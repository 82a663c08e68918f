package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/utkarsh5026/parlist/pool"
)

var (
	bold  = color.New(color.Bold)
	red   = color.New(color.FgRed)
	green = color.New(color.FgGreen)
)

func printConfiguration(opts options) {
	bold.Println("Configuration:")
	fmt.Printf("  Elements:      %d (seed %d)\n", opts.size, opts.seed)
	fmt.Printf("  Thread counts: %v\n", opts.threads)
	fmt.Printf("  Pool workers:  %d (%d CPU cores)\n", opts.workers, runtime.NumCPU())
	fmt.Println()
}

func printResults(results []result) {
	fmt.Println()
	bold.Println("Results: shared pool vs goroutine per chunk")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Operation", "Threads", "Pool", "Goroutines", "Pool vs Goroutines", "Agree")

	for _, r := range results {
		agree := green.Sprint("yes")
		if !r.match {
			agree = red.Sprint("NO")
		}

		_ = table.Append(
			r.operation,
			fmt.Sprintf("%d", r.threads),
			r.pooled.Round(time.Microsecond).String(),
			r.direct.Round(time.Microsecond).String(),
			ratio(r.pooled, r.direct),
			agree,
		)
	}

	_ = table.Render()
}

func printStats(s pool.Stats) {
	fmt.Println()
	bold.Println("Pool:")
	fmt.Printf("  Workers:   %d\n", s.Workers)
	fmt.Printf("  Submitted: %d\n", s.Submitted)
	fmt.Printf("  Completed: %d\n", s.Completed)
}

func ratio(a, b time.Duration) string {
	if b <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fx", float64(a)/float64(b))
}
