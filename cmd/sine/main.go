package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"HedgeLens/internal/chart"
	"HedgeLens/internal/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	path, err := chart.Save(chart.SinePlot(), cfg.Output.Dir, "sine", cfg.Output.Format)
	if err != nil {
		log.Fatalf("[FATAL] render sine: %v", err)
	}
	d := chart.NewViewerDisplay(cfg.Output.Viewer, cfg.Output.ViewerArgs, bufio.NewReader(os.Stdin), os.Stdout)
	if err := d.Show(path); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	fmt.Println()
}
