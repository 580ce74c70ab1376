package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/guimove/pewfit/internal/config"
	"github.com/guimove/pewfit/internal/logging"
)

var (
	cfgFile string
	cfg     config.Config
	verbose bool
	logger  logging.Logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pewfit",
	Short: "Seat household reservations in church pews",
	Long: `pewfit assigns households to pew rows so that every row is filled as
closely as possible, keeping a fixed number of empty seats between
households for distancing.

Each row is matched to the subset of waiting households that fits it best,
then a leftover pass swaps and backfills households to close the gaps.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		return setupLogger()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: pewfit.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	// Global flags that map to config
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().String("households", "", "path to the household reservations CSV")
	rootCmd.PersistentFlags().String("pews", "", "path to the pew seating info CSV")
	rootCmd.PersistentFlags().Int("margin", 0, "empty seats between households")
	rootCmd.PersistentFlags().Float64("separation-feet", 0, "distance between households in feet (overrides --margin)")
	rootCmd.PersistentFlags().Float64("seat-width-inches", 0, "width of one seat in inches")
	rootCmd.PersistentFlags().Int("max-capacity", 0, "venue head-count limit, 0 for none")
	rootCmd.PersistentFlags().Int("reserved", 0, "seats held back from reservations")
	rootCmd.PersistentFlags().Bool("skip-optimize", false, "skip the leftover swap and backfill pass")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("input.households", rootCmd.PersistentFlags().Lookup("households"))
	_ = viper.BindPFlag("input.pews", rootCmd.PersistentFlags().Lookup("pews"))
	_ = viper.BindPFlag("seating.margin", rootCmd.PersistentFlags().Lookup("margin"))
	_ = viper.BindPFlag("seating.separation_feet", rootCmd.PersistentFlags().Lookup("separation-feet"))
	_ = viper.BindPFlag("seating.seat_width_inches", rootCmd.PersistentFlags().Lookup("seat-width-inches"))
	_ = viper.BindPFlag("seating.max_capacity", rootCmd.PersistentFlags().Lookup("max-capacity"))
	_ = viper.BindPFlag("seating.reserved_seats", rootCmd.PersistentFlags().Lookup("reserved"))
	_ = viper.BindPFlag("seating.skip_optimize", rootCmd.PersistentFlags().Lookup("skip-optimize"))
}

func loadConfig() error {
	// Start with defaults
	cfg = config.Default()
	setDefaults(viper.GetViper(), cfg)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pewfit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.pewfit")
	}

	// Environment variable overrides, e.g. PEWFIT_SEATING_MARGIN
	viper.SetEnvPrefix("PEWFIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file (not an error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if verbose {
		cfg.Log.Level = "debug"
	}

	return cfg.Validate()
}

// setDefaults registers every config key so that env overrides apply even
// when no config file sets them.
func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("seating.margin", d.Seating.Margin)
	v.SetDefault("seating.separation_feet", d.Seating.SeparationFeet)
	v.SetDefault("seating.seat_width_inches", d.Seating.SeatWidthInches)
	v.SetDefault("seating.max_capacity", d.Seating.MaxCapacity)
	v.SetDefault("seating.reserved_seats", d.Seating.ReservedSeats)
	v.SetDefault("seating.skip_optimize", d.Seating.SkipOptimize)
	v.SetDefault("input.households", d.Input.Households)
	v.SetDefault("input.pews", d.Input.Pews)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.max_upload_bytes", d.Server.MaxUploadBytes)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("compare.margins", d.Compare.Margins)
	v.SetDefault("compare.parallelism", d.Compare.Parallelism)
	v.SetDefault("compare.top_n", d.Compare.TopN)
}

func setupLogger() error {
	l, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	logger = l
	return nil
}
