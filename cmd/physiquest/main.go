package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EEseka/physiquest/internal/config"
	"github.com/EEseka/physiquest/internal/logging"
	"github.com/EEseka/physiquest/internal/storage"
	"github.com/EEseka/physiquest/internal/viz"
)

var (
	dataDir    string
	storeKind  string
	logLevel   string
	themeName  string
	configFile string

	inputs     []string
	preset     string
	save       bool
	label      string
	asJSON     bool
	curveName  string
	overlay    bool
	showPaths  bool
	braille    bool
	outPath    string
	workers    int
	benchIters int

	sweepParam  string
	sweepFrom   float64
	sweepTo     float64
	sweepSteps  int
	sweepOutput string

	cfg = config.DefaultConfig()
	log = zap.NewNop()
)

// main registers the physiquest commands and runs the root command. It
// exits with status 1 when the command fails.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", zap.Error(err))
		log.Sync()
		fmt.Fprintln(os.Stderr, viz.ErrorText("error: "+err.Error()))
		os.Exit(1)
	}
	log.Sync()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "physiquest",
		Short:             "closed-form physics calculator",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	pf.StringVar(&storeKind, "store", config.DefaultStore, "storage backend (file, sqlite)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")

	domainsCmd := &cobra.Command{
		Use:   "domains",
		Short: "list domains and the inputs they accept",
		Args:  cobra.NoArgs,
		RunE:  listDomains,
	}

	calcCmd := &cobra.Command{
		Use:   "calc [domain]",
		Short: "compute a domain from the given inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  calc,
	}
	inputFlags(calcCmd)
	calcCmd.Flags().BoolVar(&save, "save", false, "save the result")
	calcCmd.Flags().StringVar(&label, "label", "", "label for the saved result")
	calcCmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	plotCmd := &cobra.Command{
		Use:   "plot [domain|record_id]",
		Short: "plot result curves",
		Args:  cobra.ExactArgs(1),
		RunE:  plot,
	}
	inputFlags(plotCmd)
	plotCmd.Flags().StringVar(&curveName, "curve", "", "plot only this curve")
	plotCmd.Flags().BoolVar(&overlay, "overlay", false, "draw all curves on one chart")
	plotCmd.Flags().BoolVar(&showPaths, "paths", false, "draw paths instead of curves")

	viewCmd := &cobra.Command{
		Use:   "view [domain|record_id]",
		Short: "browse result curves interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  view,
	}
	inputFlags(viewCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [domain]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "run a scenario batch",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent calculations")

	sweepCmd := &cobra.Command{
		Use:   "sweep [domain]",
		Short: "vary one input and plot an output",
		Args:  cobra.ExactArgs(1),
		RunE:  sweep,
	}
	inputFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "", "input to vary")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of values")
	sweepCmd.Flags().StringVar(&sweepOutput, "output", "", "output scalar to plot")
	sweepCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent calculations")
	sweepCmd.MarkFlagRequired("param")
	sweepCmd.MarkFlagRequired("output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved results",
		Args:  cobra.NoArgs,
		RunE:  listRecords,
	}

	showCmd := &cobra.Command{
		Use:   "show [record_id]",
		Short: "show a saved result",
		Args:  cobra.ExactArgs(1),
		RunE:  showRecord,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [record_id]",
		Short: "delete a saved result",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteRecord,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [record_id]",
		Short: "export a saved result to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [record_id]",
		Short: "export a curve or the scalars of a saved result to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&curveName, "curve", "", "curve or path to export (default: scalars)")
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [record_id]",
		Short: "export a curve or the paths of a saved result to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&curveName, "curve", "", "curve to export (default: all paths)")
	exportSVGCmd.Flags().BoolVar(&braille, "braille", false, "render paths through the Braille canvas")
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench [domain]",
		Short: "benchmark a domain calculator",
		Args:  cobra.ExactArgs(1),
		RunE:  bench,
	}
	inputFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchIters, "iterations", 10000, "calculations per run")
	benchCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent calculations")

	rootCmd.AddCommand(domainsCmd, calcCmd, plotCmd, viewCmd, presetsCmd, runCmd, sweepCmd,
		listCmd, showCmd, deleteCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, benchCmd)
	return rootCmd
}

func inputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&inputs, "in", "i", nil, "input as name=value (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
}

// setup loads the config file, lets explicitly set flags override it, and
// builds the logger and theme.
func setup(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if configFile == "" || flags.Changed("store") {
		cfg.Store = storeKind
	}
	if configFile == "" || flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if configFile == "" || flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Lookup("workers") != nil && (configFile == "" || flags.Changed("workers")) {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	log = l
	if err := viz.SetTheme(cfg.Theme); err != nil {
		return err
	}

	log.Debug("configured",
		zap.String("data", cfg.DataDir),
		zap.String("store", cfg.Store),
		zap.String("theme", cfg.Theme),
		zap.Int("workers", cfg.Workers))
	return nil
}

func openStore() (storage.Store, error) {
	return storage.Open(cfg.Store, cfg.DataDir, log)
}
