package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wordlesolver/internal/dictionary"
	"wordlesolver/internal/logger"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool

	cliLogger = logger.New("wordlesolver")
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wordlesolver",
	Short: "Narrow a Wordle dictionary from guess feedback and rank the next guess",
	Long: `wordlesolver keeps the dictionary words consistent with every guess and
its tile colours, then ranks them two ways:

  suggest  candidates scored by how common their letters are among candidates
  info     any dictionary word scored by how many untested letters it tries

Guesses are written word:pattern, where the pattern has one code per tile:
g (green, correct), y (yellow, present) and b (gray, absent).

Example:
  wordlesolver suggest --guess crane:bbybg --guess stole:bgbbg
  wordlesolver info --guess crane:bbbbb --output yaml
  wordlesolver simulate --workers 8`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel, cliLogger)
		}
	},
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wordlesolver %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.wordlesolver/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("words", "data/words.txt", "dictionary file (.txt one word per line, or .json)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("words", rootCmd.PersistentFlags().Lookup("words"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			cliLogger.Warnf("Error finding home directory: %v", err)
			return
		}
		viper.AddConfigPath(home + "/.wordlesolver")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match WORDLESOLVER_*
	viper.SetEnvPrefix("WORDLESOLVER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		cliLogger.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

// loadWords loads the configured dictionary.
func loadWords() ([]string, error) {
	path := viper.GetString("words")
	words, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	cliLogger.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}
