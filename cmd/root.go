/*
Copyright © 2025 acorgdb authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/acorg/acorgdb/internal/iofs"
	"github.com/acorg/acorgdb/internal/iologger"
	"github.com/acorg/acorgdb/internal/iorecords"
	app "github.com/acorg/acorgdb/pkg"
	"github.com/acorg/acorgdb/pkg/config"
	"github.com/acorg/acorgdb/pkg/db"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir  string
	cfg      *config.Config
	dataDir  string
	datasets []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "acorgdb",
	Short:   "acorgdb queries antigen, serum, and experiment records",
	Long: `acorgdb gives read-only access to datasets of antigens, sera, and
titration experiments stored as flat JSON files, and reconstructs gene
sequences for antigens by walking their ancestry and applying recorded
amino-acid substitutions.

Datasets live as subdirectories of the data directory, each holding
antigens.json, sera.json, and experiments.json. Select the data
directory with --data-dir and the datasets to load with --dataset.`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags win over config file and env vars.
	var opts []config.Option
	if dataDir != "" {
		opts = append(opts, config.OptDataDir(dataDir))
	}
	if len(datasets) > 0 {
		opts = append(opts, config.OptDataDatasets(datasets))
	}
	cfg.Update(opts)

	if cfg.Data.Dir == "" {
		cfg.Update([]config.Option{
			config.OptDataDir(config.DataDir(homeDir)),
		})
	}

	// Reconfigure logging with user's settings and proper log file location
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.Data.Dir,
	)

	return nil
}

// loadDatabase assembles the in-memory database from the configured
// datasets. Subcommands that need records call it after bootstrap.
func loadDatabase() (*db.Database, error) {
	start := time.Now()
	database, err := iorecords.New(cfg).Load()
	if err != nil {
		gn.PrintErrorMessage(err)
		return nil, err
	}
	slog.Info("Database assembled",
		"antigens", len(database.Antigens()),
		"sera", len(database.Sera()),
		"experiments", len(database.Experiments()),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return database, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "acorgdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for acorgdb")

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "",
		"data directory holding the datasets")
	rootCmd.PersistentFlags().StringSliceVarP(&datasets, "dataset", "s",
		nil, "dataset to load (repeatable, default all)")

	rootCmd.AddCommand(getDatasetsCmd())
	rootCmd.AddCommand(getListCmd())
	rootCmd.AddCommand(getSequenceCmd())
	rootCmd.AddCommand(getTitersCmd())
	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getExportCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("ACORGDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data configuration
	v.BindEnv("data.dir", "DATA_DIR")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
