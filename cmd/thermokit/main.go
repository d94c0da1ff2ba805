package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/thermokit/internal/bath"
	"github.com/san-kum/thermokit/internal/config"
	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/export"
	"github.com/san-kum/thermokit/internal/logger"
	"github.com/san-kum/thermokit/internal/storage"
	"github.com/san-kum/thermokit/internal/tabulate"
	"github.com/san-kum/thermokit/internal/thermal"
)

var (
	configFile string
	dataDir    string
	jsonLogs   bool
	verbose    bool

	temperature float64
	mass        float64
	dof         float64
	spin2       int

	tMin   float64
	tMax   float64
	points int

	column string
	svgOut string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "thermokit",
		Short:         "thermal functions of plasma species and the Standard Model bath",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(jsonLogs, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "structured JSON logs on stderr")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list known species",
		Args:  cobra.NoArgs,
		RunE:  listSpecies,
	}

	particleCmd := &cobra.Command{
		Use:   "particle [name]",
		Short: "thermal functions of one species at a temperature",
		Args:  cobra.MaximumNArgs(1),
		RunE:  evalParticle,
	}
	particleCmd.Flags().Float64Var(&temperature, "temp", 1, "temperature (GeV)")
	addSpeciesFlags(particleCmd)

	bathCmd := &cobra.Command{
		Use:   "bath",
		Short: "Standard Model bath degrees of freedom at a temperature",
		Args:  cobra.NoArgs,
		RunE:  evalBath,
	}
	bathCmd.Flags().Float64Var(&temperature, "temp", 1, "temperature (GeV)")

	tabulateCmd := &cobra.Command{
		Use:   "tabulate",
		Short: "tabulate over a temperature range and save the run",
	}
	tabulateParticleCmd := &cobra.Command{
		Use:   "particle [name]",
		Short: "tabulate one species",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tabulateParticle,
	}
	addSpeciesFlags(tabulateParticleCmd)
	addRangeFlags(tabulateParticleCmd)
	tabulateBathCmd := &cobra.Command{
		Use:   "bath",
		Short: "tabulate the Standard Model bath",
		Args:  cobra.NoArgs,
		RunE:  tabulateBath,
	}
	addRangeFlags(tabulateBathCmd)
	tabulateCmd.AddCommand(tabulateParticleCmd, tabulateBathCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a column of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "geff", "column to plot")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the curve to this SVG file")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(speciesCmd, particleCmd, bathCmd, tabulateCmd, listCmd, plotCmd, exportJSONCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, hintStyle.Render("hint: "+hint))
		}
		os.Exit(1)
	}
}

func addSpeciesFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass (GeV), overrides the species")
	cmd.Flags().Float64Var(&dof, "dof", 0, "internal degeneracy, overrides the species")
	cmd.Flags().IntVar(&spin2, "spin2", 0, "twice the spin, overrides the species")
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tMin, "tmin", config.DefaultTMin, "lowest temperature (GeV)")
	cmd.Flags().Float64Var(&tMax, "tmax", config.DefaultTMax, "highest temperature (GeV)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of temperatures")
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func newCalculator(cfg *config.Config) (*thermal.Calculator, error) {
	return thermal.New(cfg.QuadratureConfig(), thermal.WithLogger(logger.Named("thermal")))
}

func newBath(cfg *config.Config) (*bath.Bath, error) {
	mode, err := cfg.Extrapolation()
	if err != nil {
		return nil, err
	}
	return bath.New(bath.StandardModelDataset(),
		bath.WithExtrapolation(mode),
		bath.WithLogger(logger.Named("bath")),
	)
}

// resolveSpecies starts from the named catalog entry, if any, and applies
// the flags the user set explicitly.
func resolveSpecies(cmd *cobra.Command, cfg *config.Config, args []string) (config.Species, error) {
	s := config.Species{Name: "custom"}
	if len(args) == 1 {
		var err error
		if s, err = cfg.LookupSpecies(args[0]); err != nil {
			return config.Species{}, err
		}
	} else if !cmd.Flags().Changed("dof") {
		return config.Species{}, errors.WithHint(
			errors.InvalidInputf("no species named and no --dof given"),
			"pass a species name or at least --dof",
		)
	}
	if cmd.Flags().Changed("mass") {
		s.Mass = mass
	}
	if cmd.Flags().Changed("dof") {
		s.Degeneracy = dof
	}
	if cmd.Flags().Changed("spin2") {
		s.Spin2 = spin2
	}
	return s, s.Validate()
}

func listSpecies(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	catalog := cfg.Catalog()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS (GeV)\tDOF\tSPIN2\tSTATISTICS")
	for _, name := range config.SortedNames(catalog) {
		s := catalog[name]
		stats, err := thermal.StatisticsOf(s.Spin2)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6g\t%g\t%d\t%s\n", s.Name, s.Mass, s.Degeneracy, s.Spin2, stats)
	}
	return w.Flush()
}

func evalParticle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := resolveSpecies(cmd, cfg, args)
	if err != nil {
		return err
	}
	calc, err := newCalculator(cfg)
	if err != nil {
		return err
	}
	p, err := s.Particle(thermal.WithCalculator(calc))
	if err != nil {
		return err
	}

	table, err := tabulate.Particle(p, []float64{temperature})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s at T = %g GeV", s.Name, temperature)))
	fmt.Printf("%s %g GeV  %s %g  %s %d (%s)\n\n",
		labelStyle.Render("mass"), s.Mass,
		labelStyle.Render("dof"), s.Degeneracy,
		labelStyle.Render("spin2"), s.Spin2, p.Statistics())
	return printRow(table)
}

func evalBath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b, err := newBath(cfg)
	if err != nil {
		return err
	}
	table, err := tabulate.Bath(b, []float64{temperature})
	if err != nil {
		return err
	}

	lo, hi := b.Window()
	fmt.Println(titleStyle.Render(fmt.Sprintf("Standard Model bath at T = %g GeV", temperature)))
	fmt.Println(labelStyle.Render(fmt.Sprintf("tabulated for log10(T/GeV) in [%g, %g], asymptotes outside", lo, hi)))
	fmt.Println()
	return printRow(table)
}

func printRow(table *tabulate.Table) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, v := range table.Row(0) {
		fmt.Fprintf(w, "%s\t%s\n", labelStyle.Render(table.Columns[i]), valueStyle.Render(fmt.Sprintf("%.10g", v)))
	}
	return w.Flush()
}

func temperatures(cmd *cobra.Command, cfg *config.Config) ([]float64, error) {
	lo, hi, n := cfg.Tabulate.TMin, cfg.Tabulate.TMax, cfg.Tabulate.Points
	if cmd.Flags().Changed("tmin") {
		lo = tMin
	}
	if cmd.Flags().Changed("tmax") {
		hi = tMax
	}
	if cmd.Flags().Changed("points") {
		n = points
	}
	return tabulate.LogSpace(lo, hi, n)
}

func tabulateParticle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := resolveSpecies(cmd, cfg, args)
	if err != nil {
		return err
	}
	temps, err := temperatures(cmd, cfg)
	if err != nil {
		return err
	}
	calc, err := newCalculator(cfg)
	if err != nil {
		return err
	}
	p, err := s.Particle(thermal.WithCalculator(calc))
	if err != nil {
		return err
	}

	table, err := tabulate.Particle(p, temps)
	if err != nil {
		return err
	}

	params := map[string]float64{
		"mass":       s.Mass,
		"degeneracy": s.Degeneracy,
		"spin2":      float64(s.Spin2),
		"rel_tol":    cfg.Quadrature.RelTol,
	}
	return saveAndPrint(cfg, "particle", s.Name, params, table)
}

func tabulateBath(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	temps, err := temperatures(cmd, cfg)
	if err != nil {
		return err
	}
	b, err := newBath(cfg)
	if err != nil {
		return err
	}
	table, err := tabulate.Bath(b, temps)
	if err != nil {
		return err
	}
	return saveAndPrint(cfg, "bath", "standard_model", nil, table)
}

func saveAndPrint(cfg *config.Config, kind, subject string, params map[string]float64, table *tabulate.Table) error {
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(kind, subject, params, table)
	if err != nil {
		return err
	}
	logger.Logger.Info("tabulation saved",
		zap.String("id", runID),
		zap.String("kind", kind),
		zap.Int("points", table.Len()),
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T (GeV)\t"+strings.ToUpper(strings.Join(table.Columns, "\t")))
	for i, T := range table.Temperature {
		fields := []string{fmt.Sprintf("%.4g", T)}
		for _, v := range table.Row(i) {
			fields = append(fields, fmt.Sprintf("%.6g", v))
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s %s\n", labelStyle.Render("saved run"), valueStyle.Render(runID))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSUBJECT\tTIME\tT_MIN\tT_MAX\tPOINTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.3g\t%.3g\t%d\n",
			run.ID,
			run.Kind,
			run.Subject,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.TMin,
			run.TMax,
			run.Points,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadTable(runID)
	if err != nil {
		return err
	}

	data, ok := table.Column(column)
	if !ok {
		return errors.WithHintf(
			errors.InvalidInputf("run %s has no column %q", runID, column),
			"available: %s", strings.Join(table.Columns, ", "),
		)
	}
	if len(data) == 0 {
		return errors.New("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("subject: %s\n", meta.Subject)
	fmt.Printf("samples: %d\n\n", len(data))

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs log T, T from %.3g to %.3g GeV", column, meta.TMin, meta.TMax)),
	)
	fmt.Println(graph)

	if svgOut == "" {
		return nil
	}
	svg, err := export.CurveToSVG(table.Temperature, data, 800, 400, "#00ff88", true)
	if err != nil {
		return err
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return errors.Wrapf(err, "write %s", svgOut)
	}
	fmt.Printf("\nwrote %s\n", svgOut)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return storage.New(cfg.DataDir).ExportJSON(os.Stdout, args[0])
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "thermokit.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"remove it first or pass another path",
		)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
