// Command anagram answers anagram lookups against a word list without
// starting the HTTP service.
package main

import (
	"os"

	"anagram/cmd/anagram/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
