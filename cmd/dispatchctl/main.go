// Command dispatchctl runs administrative jobs against the dispatch database.
package main

import (
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
