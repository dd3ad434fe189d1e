package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitworker20/fastecc/pkg/crypto/fourq"
)

// curveInfoCmd represents the curve-info command
var curveInfoCmd = &cobra.Command{
	Use:   "curve-info",
	Short: "Print FourQ curve parameters",
	Long: `Print the curve parameters and encoding conventions used by this tool.

The group order prints in the scalar convention (little-endian hex) and the
generator in the point convention (byte-reversed hex).`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Curve:           FourQ")
		fmt.Println("Field:           GF(p^2), p = 2^127 - 1")
		fmt.Println("Signatures:      SchnorrQ (deterministic, 64 bytes)")
		fmt.Printf("Scalar bytes:    %d\n", fourq.RawSize)
		fmt.Printf("Point bytes:     %d\n", fourq.RawSize)
		fmt.Printf("Signature bytes: %d\n", fourq.SignatureSize)
		fmt.Printf("Group order:     %s\n", fourq.Order())
		fmt.Printf("Generator:       %s\n", fourq.GeneratorPoint())
	},
}
