package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"nodefarm/farm"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run checks the data file and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("datacheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "path to the product data JSON file (default: next to the server binary)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	path := *file
	if path == "" {
		p, err := farm.DefaultDataPath()
		if err != nil {
			fmt.Fprintf(stderr, "usage: datacheck -file <path-to-json>: %v\n", err)
			return 2
		}
		path = p
	}

	doc, err := farm.LoadDocument(path)
	if err != nil {
		fmt.Fprintf(stderr, "[datacheck] FAIL: %v\n", err)
		return 1
	}

	products, err := doc.Products()
	if err != nil {
		fmt.Fprintf(stderr, "[datacheck] FAIL: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "[datacheck] OK: %d product(s), %d bytes\n", len(products), len(doc.Raw))
	return 0
}
