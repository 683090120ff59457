package main

import (
	"fmt"
	"os"

	theralink "github.com/theralink/client-go"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", theralink.KindOf(err), err)
		os.Exit(1)
	}
}
