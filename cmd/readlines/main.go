package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/inconshreveable/log15"
	"github.com/mattn/go-isatty"
	"github.com/naethiel/readlines"
	"github.com/urfave/cli/v2"
)

type Service struct {
	logger        log15.Logger
	configuration Configuration
	filePath      string
}

func main() {
	app := newApp()

	err := app.Run(os.Args)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	var s Service

	return &cli.App{
		Name:  "readlines",
		Usage: "Print the lines of a text file",
		Action: func(ctx *cli.Context) error {
			return s.Read(ctx)
		},
		UsageText: "readlines [options] [path/to/file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Set log level to 'DEBUG'",
				Value:   false,
				Aliases: []string{"v"},
			},
			&cli.StringFlag{
				Name:    "file",
				Usage:   "Specify path to the file to read",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:  "lenient",
				Usage: "treat a file that cannot be read as empty instead of failing",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format: plain, numbered or json",
			},
			&cli.BoolFlag{
				Name:  "count",
				Usage: "print the number of lines only",
			},
			&cli.StringFlag{
				Name:  "highlight",
				Usage: "syntax highlight the output with the given lexer (go, json, ...)",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "highlighting style",
			},
			&cli.StringFlag{
				Name:    "configuration",
				Value:   DEFAULT_CONFIG_FILE_PATH,
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
			},
		},
	}
}

func (s *Service) bootstrap(ctx *cli.Context) error {
	// set log level properly, keeping stdout for the lines themselves
	lvl := log15.LvlInfo
	if ctx.Bool("verbose") {
		lvl = log15.LvlDebug
	}

	h := log15.LvlFilterHandler(lvl, log15.StreamHandler(ctx.App.ErrWriter, log15.LogfmtFormat()))
	log15.Root().SetHandler(h)
	readlines.Log.SetHandler(h)
	logger := log15.New("cmd", "readlines")

	// read configuration
	cfg, err := LoadConfiguration(ctx.String("configuration"))
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}

	// flags win over the configuration file
	if ctx.IsSet("lenient") {
		cfg.Lenient = ctx.Bool("lenient")
	}
	if ctx.IsSet("format") {
		cfg.Format = ctx.String("format")
	}
	if ctx.IsSet("highlight") {
		cfg.Highlight = ctx.String("highlight")
	}
	if ctx.IsSet("style") {
		cfg.Style = ctx.String("style")
	}

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	logger.Debug("configuration set", "cfg", cfg)

	filePath := ctx.Args().First()
	// if no path arg is provided, try to read the -file flag
	if len(filePath) == 0 {
		filePath = ctx.String("file")
	}
	if len(filePath) == 0 {
		filePath, err = askPath()
		if err != nil {
			return err
		}
	}

	s.logger = logger
	s.configuration = cfg
	s.filePath = filePath

	return nil
}

func askPath() (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", errors.New("no file path given")
	}

	var path string
	err := survey.AskOne(&survey.Input{
		Message: "Path to file",
	}, &path, survey.WithValidator(survey.Required))
	if err != nil {
		return "", fmt.Errorf("asking for file path: %w", err)
	}

	return path, nil
}

func (s *Service) Read(ctx *cli.Context) error {
	err := s.bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}

	if ctx.Bool("count") {
		n, err := s.countLines()
		if err != nil {
			return fmt.Errorf("counting lines: %w", err)
		}
		return writeCount(ctx.App.Writer, n)
	}

	lines, err := s.readLines()
	if err != nil {
		return fmt.Errorf("reading lines: %w", err)
	}

	s.logger.Debug("lines read", "path", s.filePath, "count", len(lines))

	err = writeLines(ctx.App.Writer, lines, s.configuration)
	if err != nil {
		return fmt.Errorf("writing lines to stdout: %w", err)
	}

	return nil
}

func (s *Service) readLines() ([]string, error) {
	if s.configuration.Lenient {
		return readlines.ReadLinesLenient(s.filePath), nil
	}

	return readlines.ReadLines(s.filePath)
}

func (s *Service) countLines() (int, error) {
	if !s.configuration.Lenient {
		return readlines.Count(s.filePath)
	}

	// lenient: an unreadable file counts as empty, a read error keeps what was counted
	n := 0
	err := readlines.Each(s.filePath, func(string) error {
		n++
		return nil
	})
	if err != nil {
		s.logger.Debug("counting stopped early", "path", s.filePath, "count", n, "err", err)
	}

	return n, nil
}
