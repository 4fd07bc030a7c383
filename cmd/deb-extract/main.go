package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	confPath := flag.String("config", "deb-extract.yaml", "Path to optional YAML config file")
	output := flag.String("output", "", "Output directory (default from config, else ./extracted)")
	maxDepth := flag.Int("max-depth", -1, "Maximum nested archive depth (default from config, else 10)")
	verbose := flag.Bool("verbose", false, "Print every extracted path")
	keyring := flag.String("keyring", "", "Armored PGP keyring to check the package signature against")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: deb-extract [flags] <package.deb>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	cfg, err := loadConfig(*confPath)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}
	if *output == "" {
		*output = cfg.Output
	}
	*maxDepth = resolveMaxDepth(*maxDepth, cfg)
	if *keyring == "" {
		*keyring = cfg.Keyring
	}
	if cfg.Verbose {
		*verbose = true
	}

	if *keyring != "" {
		if err := verifySignature(input, *keyring); err != nil {
			fmt.Printf("Fatal: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Signature OK")
	}

	rep, err := extract(input, *output, *maxDepth, *verbose)
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	if rep.Control != nil {
		fmt.Printf("Package: %s %s (%s)\n",
			rep.Control.Package, rep.Control.Version, rep.Control.Architecture)
	}
	fmt.Printf("Extracted %d entries to %s\n", len(rep.Written), *output)
}
