// Package main provides a tool that clusters 2D points read from a CSV file
// and renders the groups as a PNG scatter plot and an interactive HTML chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/quantity/internal/config"
	"github.com/banshee-data/quantity/internal/timeutil"
	"github.com/banshee-data/quantity/internal/version"
)

// Options holds the command-line options.
type Options struct {
	InputFile  string
	ConfigFile string
	OutputDir  string
	Mode       string
	NoPNG      bool
	NoHTML     bool
	Version    bool
}

func main() {
	opts := parseFlags()

	if opts.Version {
		fmt.Println("cluster-plot", version.String())
		return
	}

	if opts.InputFile == "" {
		log.Fatal("input file is required")
	}

	cfg := config.DefaultClusterConfig()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.LoadClusterConfig(opts.ConfigFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	in, err := os.Open(opts.InputFile)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer in.Close()

	summary, err := run(in, cfg, opts, timeutil.RealClock{})
	if err != nil {
		log.Fatalf("Clustering failed: %v", err)
	}

	log.Printf("Run %s: %d points in %d groups, written to %s",
		summary.RunID, summary.Points, len(summary.Groups), summary.RunDir)
}

func parseFlags() Options {
	opts := Options{}

	flag.StringVar(&opts.InputFile, "input", "", "CSV file of x,y points")
	flag.StringVar(&opts.ConfigFile, "config", "", "Cluster config JSON file (defaults apply when omitted)")
	flag.StringVar(&opts.OutputDir, "output", "cluster-runs", "Directory that receives one subdirectory per run")
	flag.StringVar(&opts.Mode, "mode", ModeKMeans, "Clustering mode: kmeans or proximity")
	flag.BoolVar(&opts.NoPNG, "no-png", false, "Skip the PNG scatter plot")
	flag.BoolVar(&opts.NoHTML, "no-html", false, "Skip the HTML chart")
	flag.BoolVar(&opts.Version, "version", false, "Print the version and exit")

	flag.Parse()

	return opts
}
