package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoart/internal/config"
	"github.com/san-kum/algoart/internal/export"
	"github.com/san-kum/algoart/internal/painting"
	"github.com/san-kum/algoart/internal/storage"
	"github.com/san-kum/algoart/internal/viz"
)

// resolveConfig layers the sources: defaults, then the preset, then the
// config file, then any flag set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.OutputDir = dataDir

	if preset != "" {
		if !cfg.ApplyPreset(preset) {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if flags.Changed("seed") {
		cfg.Seed = painting.Seed(seed)
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("out") {
		cfg.OutputDir = outDir
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteName
		cfg.Colors = nil
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = maxAttempts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func paint(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sc, err := cfg.Session()
	if err != nil {
		return err
	}
	f, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	res, err := painting.Paint(cmd.Context(), sc)
	if err != nil {
		return err
	}

	st := storage.New(cfg.OutputDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta, err := st.Save(res, f)
	if err != nil {
		return err
	}

	if preview {
		if braille {
			fmt.Print(viz.Braille(res.Canvas, previewCols, 0.5))
		} else {
			fmt.Print(viz.Preview(res.Canvas, previewCols))
		}
	}

	fmt.Printf("%s  %s  (%s)\n", viz.Title.Render(res.Name), st.Path(meta), res.Elapsed.Round(time.Millisecond))
	return nil
}

func batch(cmd *cobra.Command, args []string) error {
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := cfg.Session()
	if err != nil {
		return err
	}
	f, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	results, err := painting.NewBatch(sc, count, seedFrom).WithWorkers(workers).Run(cmd.Context())
	if err != nil {
		return err
	}

	st := storage.New(cfg.OutputDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSEED\tELAPSED\tFILE")
	for _, res := range results {
		meta, err := st.Save(res, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", res.Name, res.Seed, res.Elapsed.Round(time.Millisecond), st.Path(meta))
	}
	return w.Flush()
}

func histogram(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	sc, err := cfg.Session()
	if err != nil {
		return err
	}

	res, err := painting.Paint(cmd.Context(), sc)
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(res.Name))
	fmt.Println(viz.Subtle.Render(viz.Summary(res.Canvas)))
	fmt.Println(viz.Separator(60))
	if channels {
		fmt.Println(viz.ChannelHistogram(res.Canvas, bins, 12, "% of pixels per channel value"))
	} else {
		fmt.Println(viz.Histogram(res.Canvas, bins, 12, "% of pixels per lightness"))
	}
	return nil
}
