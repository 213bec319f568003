package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/navforge"
	"github.com/xkilldash9x/navforge/internal/config"
	"github.com/xkilldash9x/navforge/internal/observability"
)

// Version is stamped by the release build.
var Version = "dev"

var (
	cfgFile string

	flagOS         []string
	flagNavigator  []string
	flagDeviceType []string
	flagExtended   bool
	flagJS         bool
	flagCount      int
	flagSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "navforge",
	Short: "Generate random, historically plausible browser User-Agent identities.",
	Long: `navforge prints random web navigator identities: a bare User-Agent
header by default, or the full navigator config as JSON with --extended.

Filters accept one or more ids, or "all":
  os:          win, mac, linux, android
  navigator:   chrome, firefox, ie
  device type: desktop, smartphone, tablet`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}
		if err := config.Load(viper.GetViper()); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		observability.InitializeLogger(cfg.Logger)
		return nil
	},
	RunE: runGenerate,
}

// Execute runs the root command with the provided context.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			if ctx.Err() == nil {
				logger.Error("Command execution failed", zap.Error(err))
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./navforge.yaml)")

	rootCmd.Flags().StringSliceVarP(&flagOS, "os", "o", nil, "limit OS families (win, mac, linux, android, all)")
	rootCmd.Flags().StringSliceVarP(&flagNavigator, "navigator", "n", nil, "limit browser engines (chrome, firefox, ie, all)")
	rootCmd.Flags().StringSliceVarP(&flagDeviceType, "device-type", "d", nil, "limit device types (desktop, smartphone, tablet, all)")
	rootCmd.Flags().BoolVarP(&flagExtended, "extended", "e", false, "print the full navigator config as JSON")
	rootCmd.Flags().BoolVar(&flagJS, "js", false, "key the JSON output like the in-page navigator object (implies --extended)")
	rootCmd.Flags().IntVar(&flagCount, "count", 0, "number of identities to generate (default from config, 1)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed the random source for reproducible output")
}

// initializeConfig reads in the config file and NAVFORGE_* env variables.
func initializeConfig() error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("navforge")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NAVFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine; the defaults carry the command.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// callOptions merges CLI flags with the config-file defaults into the
// generation options for one run.
func callOptions(cfg *config.Config) []navforge.Option {
	osFilter := flagOS
	if len(osFilter) == 0 {
		osFilter = cfg.Generate.OS
	}
	navFilter := flagNavigator
	if len(navFilter) == 0 {
		navFilter = cfg.Generate.Navigator
	}
	devFilter := flagDeviceType
	if len(devFilter) == 0 {
		devFilter = cfg.Generate.DeviceType
	}

	var opts []navforge.Option
	if len(osFilter) > 0 {
		opts = append(opts, navforge.WithOS(osFilter...))
	}
	if len(navFilter) > 0 {
		opts = append(opts, navforge.WithNavigator(navFilter...))
	}
	if len(devFilter) > 0 {
		opts = append(opts, navforge.WithDeviceType(devFilter...))
	}
	return opts
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	logger := observability.GetLogger()
	defer observability.Sync()

	genOpts := []navforge.GeneratorOption{navforge.WithLogger(logger)}
	if cmd.Flags().Changed("seed") {
		genOpts = append(genOpts, navforge.WithSeed(flagSeed))
	}
	gen := navforge.New(genOpts...)

	count := flagCount
	if count < 1 {
		count = cfg.Generate.Count
	}
	extended := flagExtended || flagJS || cfg.Generate.Extended

	opts := callOptions(cfg)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)

	for i := 0; i < count; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		switch {
		case flagJS:
			nav, err := gen.NavigatorJS(opts...)
			if err != nil {
				return err
			}
			if err := enc.Encode(nav); err != nil {
				return err
			}
		case extended:
			nav, err := gen.Navigator(opts...)
			if err != nil {
				return err
			}
			if err := enc.Encode(nav); err != nil {
				return err
			}
		default:
			ua, err := gen.UserAgent(opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ua)
		}
	}
	return nil
}
