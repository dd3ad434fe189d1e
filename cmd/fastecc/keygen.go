package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bitworker20/fastecc/pkg/crypto/fourq"
)

var keygenOut string

// KeyPairFile is the on-disk key pair format written by keygen.
type KeyPairFile struct {
	SecretKey string `json:"secret_key"` // Secret scalar (hex, little-endian)
	PublicKey string `json:"public_key"` // Public point (hex, byte-reversed)
}

// keygenCmd represents the keygen command
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a FourQ key pair",
	Long: `Generate a fresh key pair: a random secret scalar and its public point.

The secret key prints as 64 hex characters in little-endian byte order; the
public key prints in the byte-reversed point convention.

Examples:
  # Print a new key pair
  fastecc keygen

  # Write the key pair to a file instead
  fastecc keygen --out signing-key.json`,
	RunE: runKeygen,
}

func init() {
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "write the key pair to this file instead of stdout")

	if err := viper.BindPFlag("keygen.out", keygenCmd.Flags().Lookup("out")); err != nil {
		panic(fmt.Sprintf("failed to bind out flag: %v", err))
	}
}

func runKeygen(cmd *cobra.Command, args []string) error {
	secret, err := fourq.RandomScalar()
	if err != nil {
		return fmt.Errorf("failed to generate secret key: %w", err)
	}
	public, err := fourq.MulBase(secret)
	if err != nil {
		return fmt.Errorf("failed to derive public key: %w", err)
	}

	if keygenOut == "" {
		fmt.Printf("Secret key: %s\n", secret)
		fmt.Printf("Public key: %s\n", public)
		return nil
	}

	data, err := json.MarshalIndent(KeyPairFile{
		SecretKey: secret.String(),
		PublicKey: public.String(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode key pair: %w", err)
	}

	cleanPath := filepath.Clean(keygenOut)
	if err := os.WriteFile(cleanPath, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}

	fmt.Printf("Key pair written to %s\n", cleanPath)
	if verbose {
		fmt.Printf("Public key: %s\n", public)
	}
	return nil
}
