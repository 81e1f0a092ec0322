package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/time/rate"

	"nodefarm/farm"
)

// parseOptions maps command-line flags onto farm.Options.
// The listen address is fixed and has no flag.
func parseOptions(fs *flag.FlagSet, args []string) (farm.Options, error) {
	dataPath := fs.String("data", "", "path to the JSON served on /api (default: "+farm.DataFile+" next to the binary)")
	rps := fs.Float64("rps", 0, "requests per second before answering 429 (0 disables the limiter)")
	burst := fs.Int("burst", 5, "rate limiter bucket size")

	if err := fs.Parse(args); err != nil {
		return farm.Options{}, err
	}

	path := *dataPath
	if path == "" {
		p, err := farm.DefaultDataPath()
		if err != nil {
			return farm.Options{}, err
		}
		path = p
	}

	return farm.Options{
		DataPath: path,
		Limit:    rate.Limit(*rps),
		Burst:    *burst,
	}, nil
}

func main() {
	opts, err := parseOptions(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}
	opts.Logger = log.Default()

	log.Fatal(farm.Run(opts))
}
