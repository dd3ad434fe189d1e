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

var (
	signKey     string
	signKeyFile string
	signMessage string
	signIn      string
	signOut     string
)

// signCmd represents the sign command
var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message with SchnorrQ",
	Long: `Sign a message with a FourQ secret key, producing a 64-byte signature.

The secret key comes either from --key (64 hex characters, little-endian) or
from a key file written by 'fastecc keygen --out'. Signing is deterministic:
the same key and message always produce the same signature.

Examples:
  # Sign with an inline key
  fastecc sign --key 0500000000000000... --message "hello"

  # Sign with a key file
  fastecc sign --key-file signing-key.json --message "hello"

  # Sign the contents of a file
  fastecc sign --key-file signing-key.json --in message.bin --out message.sig`,
	RunE: runSign,
}

func init() {
	signCmd.Flags().StringVarP(&signKey, "key", "k", "", "secret key (64 hex characters, little-endian)")
	signCmd.Flags().StringVar(&signKeyFile, "key-file", "", "path to a key file written by keygen")
	signCmd.Flags().StringVarP(&signMessage, "message", "m", "", "message to sign")
	signCmd.Flags().StringVar(&signIn, "in", "", "read the message from this file instead of --message")
	signCmd.Flags().StringVarP(&signOut, "out", "o", "", "write the signature hex to this file instead of stdout")

	if err := viper.BindPFlag("sign.key_file", signCmd.Flags().Lookup("key-file")); err != nil {
		panic(fmt.Sprintf("failed to bind key_file flag: %v", err))
	}
}

// loadSecretKey resolves the secret key from the --key or --key-file flag.
func loadSecretKey() (fourq.Scalar, error) {
	switch {
	case signKey != "" && signKeyFile != "":
		return fourq.Scalar{}, fmt.Errorf("use either --key or --key-file, not both")

	case signKey != "":
		secret, err := fourq.ParseScalar(signKey)
		if err != nil {
			return fourq.Scalar{}, fmt.Errorf("invalid secret key: %w", err)
		}
		return secret, nil

	case signKeyFile != "":
		cleanPath := filepath.Clean(signKeyFile)
		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return fourq.Scalar{}, fmt.Errorf("failed to read key file: %w", err)
		}
		var pair KeyPairFile
		if err := json.Unmarshal(data, &pair); err != nil {
			return fourq.Scalar{}, fmt.Errorf("failed to parse key file JSON: %w", err)
		}
		if pair.SecretKey == "" {
			return fourq.Scalar{}, fmt.Errorf("missing secret_key field")
		}
		secret, err := fourq.ParseScalar(pair.SecretKey)
		if err != nil {
			return fourq.Scalar{}, fmt.Errorf("invalid secret_key in key file: %w", err)
		}
		return secret, nil

	default:
		return fourq.Scalar{}, fmt.Errorf("a secret key is required: pass --key or --key-file")
	}
}

// readMessage resolves the message bytes from the --message or --in flag.
func readMessage(inline, path string) ([]byte, error) {
	switch {
	case inline != "" && path != "":
		return nil, fmt.Errorf("use either --message or --in, not both")

	case path != "":
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read message file: %w", err)
		}
		return data, nil

	case inline != "":
		return []byte(inline), nil

	default:
		return nil, fmt.Errorf("a message is required: pass --message or --in")
	}
}

func runSign(cmd *cobra.Command, args []string) error {
	secret, err := loadSecretKey()
	if err != nil {
		return err
	}

	msg, err := readMessage(signMessage, signIn)
	if err != nil {
		return err
	}

	if verbose {
		public, err := fourq.MulBase(secret)
		if err != nil {
			return fmt.Errorf("failed to derive public key: %w", err)
		}
		fmt.Printf("Public key: %s\n", public)
		fmt.Printf("Message length: %d bytes\n", len(msg))
	}

	sig, err := fourq.Sign(secret, msg)
	if err != nil {
		return fmt.Errorf("signing failed: %w", err)
	}

	if signOut != "" {
		cleanPath := filepath.Clean(signOut)
		if err := os.WriteFile(cleanPath, []byte(sig.String()+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write signature file: %w", err)
		}
		fmt.Printf("Signature written to %s\n", cleanPath)
		return nil
	}

	fmt.Printf("Signature: %s\n", sig)
	return nil
}
