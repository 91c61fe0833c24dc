// Command sitectl inspects the business type catalog and resolves settings
// documents offline, or fetches them from a running site service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
