// Package commands implements the CLI commands for webmark.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielmarass/webmark/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "webmark",
	Short: "Convert web pages into clean Markdown documents",
	Long: `Webmark fetches a web page, extracts its main content, localizes
images, and writes a portable Markdown document with YAML front matter.

Examples:
  # Convert an article into ~/Downloads
  webmark convert -u "https://example.com/article"

  # Convert into a specific folder with a fixed filename
  webmark convert -u "https://example.com/article" -o ~/notes -f article

  # Keep the full page instead of extracting the main content
  webmark convert -u "https://example.com/article" --no-strip

  # List recently used output folders
  webmark folders`,
	Version: version.String(),
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.webmark.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".webmark")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("WEBMARK")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
