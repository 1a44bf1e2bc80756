package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

const appName = "functional-practice"

// Version of the demo binary.
var Version = "0.1.0"

func run(args []string, stdout, stderr io.Writer) int {
	c := cli.NewCLI(appName, Version)
	c.Args = args
	c.HelpWriter = stdout
	c.ErrorWriter = stderr

	c.Commands = map[string]cli.CommandFactory{
		"all": func() (cli.Command, error) {
			return &allCommand{demos: demos, out: stdout, errOut: stderr}, nil
		},
	}
	for _, d := range demos {
		d := d
		c.Commands[d.name] = func() (cli.Command, error) {
			return &demoCommand{demo: d, out: stdout, errOut: stderr}, nil
		}
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return exitStatus
}

// parseFlags reads the options shared by every command and returns a logger
// configured from them.
func parseFlags(name string, args []string, out, errOut io.Writer) (hclog.Logger, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(errOut)
	logLevel := flags.String("log-level", "info", "Log level: trace, debug, info, warn or error.")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	level := hclog.LevelFromString(*logLevel)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", *logLevel)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   appName,
		Level:  level,
		Output: out,
	}), nil
}

const optionsHelp = `
Options:

  -log-level=info  Log level: trace, debug, info, warn or error.
`

type demoCommand struct {
	demo   demo
	out    io.Writer
	errOut io.Writer
}

func (c *demoCommand) Synopsis() string {
	return c.demo.synopsis
}

func (c *demoCommand) Help() string {
	return fmt.Sprintf("Usage: %s %s [options]\n\n  %s.\n%s", appName, c.demo.name, c.demo.synopsis, optionsHelp)
}

func (c *demoCommand) Run(args []string) int {
	logger, err := parseFlags(c.demo.name, args, c.out, c.errOut)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 1
	}
	logger = logger.Named(c.demo.name)
	if err := c.demo.run(logger); err != nil {
		logger.Error("demo failed", "error", err)
		return 1
	}
	return 0
}

type allCommand struct {
	demos  []demo
	out    io.Writer
	errOut io.Writer
}

func (c *allCommand) Synopsis() string {
	return "Run every demo in order"
}

func (c *allCommand) Help() string {
	return fmt.Sprintf("Usage: %s all [options]\n\n  Runs every demo in order, reporting all failures at the end.\n%s", appName, optionsHelp)
}

func (c *allCommand) Run(args []string) int {
	logger, err := parseFlags("all", args, c.out, c.errOut)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 1
	}

	var result *multierror.Error
	for _, d := range c.demos {
		if err := d.run(logger.Named(d.name)); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", d.name, err))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		logger.Error("demos failed", "error", err)
		return 1
	}
	return 0
}
