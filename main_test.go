package main

import (
	"flag"
	"io"
	"path/filepath"
	"testing"

	"golang.org/x/time/rate"

	"nodefarm/farm"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("nodefarm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want, err := farm.DefaultDataPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if opts.DataPath != want {
		t.Fatalf("data=%q want=%q", opts.DataPath, want)
	}
	if opts.Limit != 0 {
		t.Fatalf("limit=%v want=0", opts.Limit)
	}
	if opts.Burst != 5 {
		t.Fatalf("burst=%d want=5", opts.Burst)
	}
	if opts.Listen != nil {
		t.Fatalf("listen should default inside farm.Run")
	}
}

func TestParseOptionsFlags(t *testing.T) {
	path := filepath.Join("dev-data", "data.json")
	opts, err := parseOptions(newFlagSet(), []string{"-data", path, "-rps", "2.5", "-burst", "3"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.DataPath != path {
		t.Fatalf("data=%q want=%q", opts.DataPath, path)
	}
	if opts.Limit != rate.Limit(2.5) {
		t.Fatalf("limit=%v want=2.5", opts.Limit)
	}
	if opts.Burst != 3 {
		t.Fatalf("burst=%d want=3", opts.Burst)
	}
}

func TestParseOptionsRejectsAddressFlag(t *testing.T) {
	if _, err := parseOptions(newFlagSet(), []string{"-listen", "0.0.0.0:9000"}); err == nil {
		t.Fatalf("expected unknown flag error for -listen")
	}
}
