package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gonum.org/v1/plot"

	"HedgeLens/internal/chart"
	"HedgeLens/internal/collector"
	"HedgeLens/internal/config"
	"HedgeLens/internal/hedge"
	"HedgeLens/internal/input"
	"HedgeLens/internal/report"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Every outcome, failures included, exits 0.
	if err := run(os.Stdin, os.Stdout); err != nil {
		var nd *hedge.NoDataError
		if errors.As(err, &nd) {
			fmt.Print(report.FormatNoData(nd.Symbol))
			return
		}
		fmt.Print(report.FormatError(err))
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	fetcher := newFetcher(cfg)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// One reader serves both the prompts and plot dismissal.
	in := bufio.NewReader(stdin)
	req, err := input.NewPrompter(in, stdout).Collect()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	analysis, err := hedge.Run(ctx, fetcher, req)
	if err != nil {
		return err
	}

	display := chart.NewViewerDisplay(cfg.Output.Viewer, cfg.Output.ViewerArgs, in, stdout)
	prices, err := chart.PricePlot(analysis)
	if err != nil {
		return err
	}
	if err := show(display, prices, cfg, fmt.Sprintf("%s_%s_prices", req.Symbol1, req.Symbol2)); err != nil {
		return err
	}
	returns, err := chart.ReturnsPlot(analysis)
	if err != nil {
		return err
	}
	if err := show(display, returns, cfg, fmt.Sprintf("%s_%s_returns", req.Symbol1, req.Symbol2)); err != nil {
		return err
	}

	fmt.Fprint(stdout, report.FormatSummary(analysis))
	return nil
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case config.ProviderVsTrader:
		return collector.NewVsTraderFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy, cfg.HTTPTimeout)
	case config.ProviderAlpaca:
		return collector.NewAlpacaFetcher(cfg.DataSource.APIKey, cfg.DataSource.APISecret, cfg.DataSource.BaseURL)
	default:
		f := collector.NewYahooFetcher(cfg.Proxy, cfg.HTTPTimeout)
		f.Adjusted = *cfg.DataSource.Adjusted
		return f
	}
}

func show(d chart.Display, p *plot.Plot, cfg *config.Config, name string) error {
	path, err := chart.Save(p, cfg.Output.Dir, name, cfg.Output.Format)
	if err != nil {
		return err
	}
	log.Printf("[INFO] plot written: %s", path)
	return d.Show(path)
}
