package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information - set via ldflags at build time
var (
	// Version is the semantic version
	Version = "dev"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fastecc",
	Short: "FourQ curve arithmetic and SchnorrQ signature tool",
	Long: `fastecc is a command-line tool for the FourQ elliptic curve.

It generates key pairs, signs messages with the deterministic SchnorrQ scheme
and verifies signatures, using the same encodings as the library API:
little-endian hex for scalars and signatures, byte-reversed hex for points.

Use 'fastecc keygen' to generate a key pair.
Use 'fastecc sign' to sign a message.
Use 'fastecc verify' to verify a signature.
Use 'fastecc curve-info' to inspect the curve parameters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME/.fastecc")
			viper.AddConfigPath(".")
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}

		// Read config file if it exists
		if err := viper.ReadInConfig(); err == nil && verbose {
			fmt.Printf("Using config file: %s\n", viper.ConfigFileUsed())
		}

		// Environment variables
		viper.SetEnvPrefix("FASTECC")
		viper.AutomaticEnv()
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version number and build information of fastecc.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fastecc version %s\n", Version)
		fmt.Printf("Git commit: %s\n", GitCommit)
		fmt.Printf("Build date: %s\n", BuildTime)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fastecc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind verbose flag: %v", err))
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(curveInfoCmd)
}
