// Command trajgen generates synthetic robot trajectories and appends them as a named
// export to a storybook fixture file.
//
// Answers not supplied by flags are asked for interactively, in order: whether the
// trajectories conflict, how many to generate, and the export name.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/cxd309/trajgen/internal/config"
	"github.com/cxd309/trajgen/internal/engine"
	"github.com/cxd309/trajgen/internal/fixture"
	"github.com/cxd309/trajgen/internal/preview"
	"github.com/cxd309/trajgen/internal/prompt"
	"github.com/cxd309/trajgen/internal/sampler"
)

type options struct {
	conflict bool
	count    int
	name     string
	out      string
	seed     uint64
	profile  string
	preview  string
	set      map[string]bool // flags given on the command line
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("trajgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.conflict, "conflict", false, "flag every trajectory as conflicting")
	fs.IntVar(&opts.count, "count", 0, "number of trajectories")
	fs.StringVar(&opts.name, "name", "", "export name in the fixture file")
	fs.StringVar(&opts.out, "out", fixture.DefaultPath, "fixture file to append to")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed for a reproducible run")
	fs.StringVar(&opts.profile, "config", "", "JSON generation profile")
	fs.StringVar(&opts.preview, "preview", "", "write a plot of the trajectories to this image path")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// openFile appends fixtures to files on disk.
func openFile(path string) fixture.Writer {
	return fixture.NewFileWriter(path)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, open func(path string) fixture.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	settings := config.Defaults()
	if opts.profile != "" {
		profile, err := config.Load(opts.profile)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		settings = profile.Apply(settings)
	}
	if opts.set["out"] {
		settings.Output = opts.out
	}

	preset := prompt.Answers{Conflict: opts.conflict, Count: opts.count, VarName: opts.name}
	given := prompt.Given{Conflict: opts.set["conflict"], Count: opts.set["count"], VarName: opts.set["name"]}
	answers, err := prompt.New(stdin, stdout).Collect(settings.Output, preset, given)
	if err != nil {
		return err
	}

	batch := uuid.New()
	logger := log.New(stderr, fmt.Sprintf("[%s] ", batch.String()[:8]), log.LstdFlags|log.Lmsgprefix)

	var seed *uint64
	if opts.set["seed"] {
		seed = &opts.seed
	}
	gen := engine.NewGenerator(settings.Engine, settings.Robot, settings.Model, sampler.New(seed))
	set, err := gen.Run(answers.Count, answers.Conflict)
	if err != nil {
		return fmt.Errorf("generating trajectories: %w", err)
	}
	logger.Printf("generated %d trajectories (conflict=%t)", len(set.Trajectories), answers.Conflict)

	if err := open(settings.Output).Append(answers.VarName, set); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	logger.Printf("file written: %s (export %s)", settings.Output, answers.VarName)

	if opts.preview != "" {
		if err := preview.Save(opts.preview, answers.VarName, set); err != nil {
			return err
		}
		logger.Printf("preview written: %s", opts.preview)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, openFile); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
