package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resumeiq"
)

// Config is the typed view of the viper configuration.
type Config struct {
	// Model is the path to the STAR model artifact.
	Model string `mapstructure:"model"`
	// Role is the target role for keyword matching. Empty disables the step.
	Role string `mapstructure:"role"`
	// MinBulletWords filters out short lines when collecting bullets.
	MinBulletWords int `mapstructure:"min-bullet-words"`
	// Roles holds catalog overrides, decoded by the roles package.
	Roles map[string]any `mapstructure:"roles"`

	Depth *DepthConfig `mapstructure:"depth"`
}

// DepthConfig configures the optional embedding-based depth analysis.
type DepthConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Model     string        `mapstructure:"model"`
	Threshold float64       `mapstructure:"threshold"`
	Gemini    *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds the embedding provider settings.
type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resumeiq scores resumes for STAR-method compliance and trains the models behind the score",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("model", "RESUMEIQ_MODEL"); err != nil {
		log.Fatalf("binding RESUMEIQ_MODEL environment variable: %v", err)
	}

	if err := viper.BindEnv("depth.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resumeiq.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")
	viper.SetConfigType("yaml")

	// The default config file is optional: every command can run from flags
	// and environment alone.
	_ = viper.ReadInConfig()
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	return config, nil
}
