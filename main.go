package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Directories
	inputDir  string
	outputDir string
	gitSubdir string

	// Filtering
	includePatterns  string
	excludePatterns  string
	maxSizeBytes     int64
	skipHidden       bool
	respectGitignore bool

	// Processing
	numThreads      int
	interactiveMode bool
	dryRun          bool

	// Output
	copyToClipboard bool
	reportFile      string

	// Logging
	logLevel  string
	logFormat string

	cfgFile string
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "uniqint",
	Short: "uniqint extracts the distinct bounded integers of every file in a directory.",
	Long: `uniqint reads each file of the input directory line by line, keeps the lines
that are integers between -1023 and 1023, and writes them sorted and deduplicated
to <output>/<file>_results.txt.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(viper.GetString("log_level"), viper.GetString("log_format"))
		if err != nil {
			return err
		}
		defer log.Sync()

		opts := optionsFromConfig()
		log.Debugw("resolved options", "input", opts.InputDir, "output", opts.OutputDir, "threads", opts.Threads)

		_, err = run(opts, runEnv{
			log:  log,
			out:  cmd.OutOrStdout(),
			find: fuzzyfinder.FindMulti,
		})
		return err
	},
}

// optionsFromConfig collects the final flag/config/env values into Options.
func optionsFromConfig() Options {
	return Options{
		InputDir:  viper.GetString("input"),
		OutputDir: viper.GetString("output"),
		GitSubdir: viper.GetString("git_subdir"),
		Filters: scanFilters{
			Include:          parsePatterns(viper.GetString("include")),
			Exclude:          parsePatterns(viper.GetString("exclude")),
			SkipHidden:       viper.GetBool("skip_hidden"),
			RespectGitignore: viper.GetBool("respect_gitignore"),
			MaxSizeBytes:     viper.GetInt64("max_size"),
		},
		Threads:     viper.GetInt("threads"),
		Interactive: viper.GetBool("interactive"),
		DryRun:      viper.GetBool("dry_run"),
		Clipboard:   viper.GetBool("clipboard"),
		ReportPath:  viper.GetString("report"),
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/uniqint/config.toml)")

	// Directories
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", defaultInputDir, "Directory (or Git URL) whose files are converted")
	viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", defaultOutputDir, "Directory receiving <file>_results.txt, created if missing")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().StringVar(&gitSubdir, "git-subdir", "", "Directory inside a cloned Git input to scan")
	viper.BindPFlag("git_subdir", rootCmd.Flags().Lookup("git-subdir"))

	// Filtering
	rootCmd.Flags().StringVar(&includePatterns, "include", "", `Only convert files matching these patterns (comma-separated, e.g. *.txt,*.in)`)
	viper.BindPFlag("include", rootCmd.Flags().Lookup("include"))
	rootCmd.Flags().StringVarP(&excludePatterns, "exclude", "e", "", "Skip files matching these patterns (comma-separated)")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().Int64VarP(&maxSizeBytes, "max-size", "s", 0, "Maximum input file size in bytes (0 for no limit)")
	viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	rootCmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "Skip hidden files")
	viper.BindPFlag("skip_hidden", rootCmd.Flags().Lookup("skip-hidden"))
	rootCmd.Flags().BoolVar(&respectGitignore, "respect-gitignore", false, "Skip files ignored by <input>/.gitignore")
	viper.BindPFlag("respect_gitignore", rootCmd.Flags().Lookup("respect-gitignore"))

	// Processing
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 1, "Number of files converted in parallel (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the input files to convert with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "List the files that would be converted and exit")
	viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))

	// Output
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the run summary to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&reportFile, "report", "", "Write a YAML manifest of the run to this file")
	viper.BindPFlag("report", rootCmd.Flags().Lookup("report"))

	// Logging
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	rootCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: console or json")
	viper.BindPFlag("log_format", rootCmd.Flags().Lookup("log-format"))

	viper.SetDefault("input", defaultInputDir)
	viper.SetDefault("output", defaultOutputDir)
	viper.SetDefault("threads", 1)
	viper.SetDefault("max_size", 0)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "console")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "uniqint"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("UNIQINT") // read in environment variables that match UNIQINT_*
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		// Config file was found but another error was produced
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
