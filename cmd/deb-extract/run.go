package main

import (
	"fmt"
	"os"

	"github.com/debforge/deb-extractor/deb"
)

// extract runs the extraction and prints warnings to stderr; warnings
// never change the exit status.
func extract(input, output string, maxDepth int, verbose bool) (*deb.Report, error) {
	rep, err := deb.Extract(input, output, maxDepth)
	for _, w := range rep.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if err != nil {
		return nil, err
	}
	if verbose {
		for _, p := range rep.Written {
			fmt.Println(p)
		}
	}
	return rep, nil
}

// verifySignature checks the package's _gpgorigin member against the
// keyring file before anything is extracted.
func verifySignature(input, keyringPath string) error {
	debData, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}
	key, err := os.ReadFile(keyringPath)
	if err != nil {
		return fmt.Errorf("reading keyring %s: %w", keyringPath, err)
	}
	return deb.Verify(debData, string(key))
}
