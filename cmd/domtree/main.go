// SPDX-FileCopyrightText: © 2021 The domtree authors <https://github.com/golangee/domtree/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Command domtree reads a document and prints its tree.
// Without a file argument the built-in demo document is printed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golangee/domtree/config"
	"github.com/golangee/domtree/dom"
	"github.com/golangee/domtree/encoder"
	"github.com/golangee/domtree/markup"
	"github.com/golangee/domtree/printer"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(os.Stderr, "domtree:", err)
		}

		os.Exit(1)
	}
}

// run executes the command with the given arguments, without the program name.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("domtree", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "Usage: domtree [flags] [file]")
		_, _ = fmt.Fprintln(stderr, "")
		_, _ = fmt.Fprintln(stderr, "Prints the document in file, or stdin if file is -.")
		_, _ = fmt.Fprintln(stderr, "Without file the demo document is printed.")
		flags.PrintDefaults()
	}

	configFlag := flags.String("config", "", "TOML configuration file")
	inFlag := flags.String("in", "", "input format: markup, json or yaml")
	outFlag := flags.String("out", "", "output format: tree, xml, json or yaml")
	colorFlag := flags.Bool("color", false, "colorize tree output")
	levelFlag := flags.String("log-level", "", "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return err
		}
	}

	// flags override the file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *inFlag
		case "out":
			cfg.Output = *outFlag
		case "color":
			cfg.Color = *colorFlag
		case "log-level":
			cfg.LogLevel = *levelFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", flags.NArg())
	}

	level, _ := cfg.Level()
	logger := newLogger(stderr, level)
	defer func() { _ = logger.Sync() }()

	tree, err := load(flags.Arg(0), cfg.Input, stdin, logger)
	if err != nil {
		logger.Error("failed to read document", zap.String("file", flags.Arg(0)), zap.Error(err))
		return err
	}

	if err := write(stdout, tree, cfg, logger); err != nil {
		logger.Error("failed to write document", zap.String("format", cfg.Output), zap.Error(err))
		return err
	}

	return nil
}

// newLogger creates a console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)

	return zap.New(core)
}

// load reads the document from file. An empty file name selects the demo document.
func load(file, format string, stdin io.Reader, logger *zap.Logger) (dom.Node, error) {
	if file == "" {
		logger.Debug("no file given, using demo document")
		return dom.Demo(), nil
	}

	r := stdin
	name := "stdin"
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return dom.Node{}, err
		}

		defer f.Close()

		r = f
		name = file
	}

	switch format {
	case config.InputJSON:
		return encoder.DecodeJSON(r)
	case config.InputYAML:
		return encoder.DecodeYAML(r)
	default:
		return markup.Parse(name, r, markup.WithLogger(logger))
	}
}

func write(w io.Writer, tree dom.Node, cfg config.Config, logger *zap.Logger) error {
	switch cfg.Output {
	case config.OutputXML:
		return encoder.EncodeXML(w, tree)
	case config.OutputJSON:
		return encoder.EncodeJSON(w, tree)
	case config.OutputYAML:
		return encoder.EncodeYAML(w, tree)
	default:
		opts := []printer.Option{printer.WithLogger(logger)}
		if cfg.Color {
			opts = append(opts, printer.WithDecorator(colorize(termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI)))))
		}

		return printer.NewPrinter(w, opts...).Print(tree)
	}
}

// colorize styles element lines bold blue and comments faint.
func colorize(out *termenv.Output) printer.Decorator {
	return func(kind dom.Kind, content string) string {
		switch kind.(type) {
		case dom.ElementData:
			return out.String(content).Bold().Foreground(out.Color("4")).String()
		case dom.Comment:
			return out.String(content).Faint().String()
		default:
			return content
		}
	}
}
