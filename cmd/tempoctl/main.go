// Command tempoctl evaluates interval expressions from the command line.
//
//	tempoctl range union "1:9, 30:31" "10:12"
//	tempoctl bitset shift -- "100:150" -75
//	tempoctl merge "1:9=a" "5:20=b"
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/tempo/cmd/tempoctl/commands"
)

func main() {
	if err := commands.NewRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
