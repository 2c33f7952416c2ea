package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/config"
	"github.com/san-kum/algoart/internal/painting"
	"github.com/san-kum/algoart/internal/palette"
	"github.com/san-kum/algoart/internal/server"
	"github.com/san-kum/algoart/internal/storage"
	"github.com/san-kum/algoart/internal/tui"
	"github.com/san-kum/algoart/internal/viz"
)

var (
	dataDir string
	verbose bool
	theme   string

	seed        int64
	height      int
	width       int
	format      string
	outDir      string
	preset      string
	configFile  string
	paletteName string
	maxAttempts int
	preview     bool
	braille     bool
	previewCols int

	seedFrom int64
	count    int
	workers  int

	bins     int
	channels bool

	addr string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers every command. Without a subcommand the root opens the
// interactive picker.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "algoart",
		Short:        "procedural art generator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return viz.SetTheme(theme)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{Store: storage.New(dataDir)})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultOutputDir, "paintings directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeTerra.Name, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	paintCmd := &cobra.Command{
		Use:   "paint [algorithm]",
		Short: "paint one canvas and save it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  paint,
	}
	addCanvasFlags(paintCmd)
	paintCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "png, jpeg, bmp, tiff or svg")
	paintCmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to --data)")
	paintCmd.Flags().StringVar(&preset, "preset", "", "size preset")
	paintCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	paintCmd.Flags().StringVar(&paletteName, "palette", palette.DefaultName, "palette for recursive_squares")
	paintCmd.Flags().IntVar(&maxAttempts, "max-attempts", algorithm.DefaultMaxAttempts, "placement attempts per square")
	paintCmd.Flags().BoolVar(&preview, "preview", false, "print the painting to the terminal")
	paintCmd.Flags().BoolVar(&braille, "braille", false, "preview with braille dots instead of color")
	paintCmd.Flags().IntVar(&previewCols, "cols", 80, "preview width in terminal cells")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	galleryCmd := &cobra.Command{
		Use:   "gallery",
		Short: "list saved paintings",
		RunE:  gallery,
	}

	showCmd := &cobra.Command{
		Use:   "show [algorithm_seed]",
		Short: "show saved painting metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  show,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [algorithm]",
		Short: "paint consecutive seeds concurrently",
		Args:  cobra.ExactArgs(1),
		RunE:  batch,
	}
	addCanvasFlags(batchCmd)
	batchCmd.Flags().Int64Var(&seedFrom, "from", 0, "first seed")
	batchCmd.Flags().IntVar(&count, "count", 8, "number of paintings")
	batchCmd.Flags().IntVar(&workers, "workers", 4, "concurrent sessions")
	batchCmd.Flags().StringVar(&format, "format", config.DefaultFormat, "png, jpeg, bmp, tiff or svg")
	batchCmd.Flags().StringVar(&paletteName, "palette", palette.DefaultName, "palette for recursive_squares")

	histCmd := &cobra.Command{
		Use:   "histogram [algorithm]",
		Short: "plot the lightness distribution of a painting",
		Args:  cobra.ExactArgs(1),
		RunE:  histogram,
	}
	addCanvasFlags(histCmd)
	histCmd.Flags().IntVar(&bins, "bins", 64, "histogram buckets")
	histCmd.Flags().BoolVar(&channels, "channels", false, "plot red, green and blue separately")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list size presets",
		RunE:  listPresets,
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		RunE:  listPalettes,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve paintings over http",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive algorithm picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tui.Options{Store: storage.New(dataDir)})
		},
	}

	rootCmd.AddCommand(paintCmd, listCmd, galleryCmd, showCmd, batchCmd, histCmd,
		presetsCmd, palettesCmd, serveCmd, tuiCmd)

	return rootCmd
}

func addCanvasFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (generated when omitted)")
	cmd.Flags().IntVar(&height, "height", config.DefaultConfig().Height, "canvas height")
	cmd.Flags().IntVar(&width, "width", config.DefaultConfig().Width, "canvas width")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	painting.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tLEGACY")
	for _, info := range algorithm.NewRegistry().List() {
		legacy := ""
		if info.Legacy {
			legacy = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Name, info.Description, legacy)
	}
	return w.Flush()
}

func gallery(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	paintings, err := st.List()
	if err != nil {
		return err
	}

	if len(paintings) == 0 {
		fmt.Println("no paintings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tSEED\tSIZE\tFORMAT\tTIME")
	for _, p := range paintings {
		fmt.Fprintf(w, "%s\t%s\t%d\t%dx%d\t%s\t%s\n",
			p.Name,
			p.Algorithm,
			p.Seed,
			p.Height, p.Width,
			p.Format,
			p.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}

func show(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.HeaderStyle.Render(meta.Name))
	fmt.Println(viz.Separator(40))
	fmt.Println(viz.KeyValue("algorithm", meta.Algorithm, 10))
	fmt.Println(viz.KeyValue("seed", fmt.Sprint(meta.Seed), 10))
	fmt.Println(viz.KeyValue("size", fmt.Sprintf("%dx%d", meta.Height, meta.Width), 10))
	fmt.Println(viz.KeyValue("format", string(meta.Format), 10))
	fmt.Println(viz.KeyValue("elapsed", meta.Elapsed.String(), 10))
	fmt.Println(viz.KeyValue("saved", meta.Timestamp.Format("2006-01-02 15:04:05"), 10))
	fmt.Println(viz.KeyValue("file", st.Path(meta), 10))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tHEIGHT\tWIDTH")
	for _, name := range config.ListPresets() {
		s, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\n", name, s.Height, s.Width)
	}
	return w.Flush()
}

func listPalettes(cmd *cobra.Command, args []string) error {
	for _, name := range palette.Names() {
		p, err := palette.Get(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == palette.DefaultName {
			marker = "*"
		}
		fmt.Printf("%s %-10s %s  %s\n", marker, name, viz.Swatch(p.Hexes()), viz.Subtle.Render(fmt.Sprint(p.Hexes())))
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := storage.New(dataDir)
	fmt.Printf("serving on %s\n", addr)
	return server.New(st).ListenAndServe(ctx, addr)
}
