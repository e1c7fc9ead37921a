package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"rill/internal"
	"rill/internal/config"
)

const continuationPrompt = ". "

type runner struct {
	settings   config.Settings
	logger     *logrus.Logger
	colors     *color.Color
	opts       []internal.Option
	dumpTokens bool
	dumpAst    bool
}

func main() {
	var (
		configPath string
		logLevel   string
		r          runner
	)
	flag.StringVar(&configPath, "config", "", "Path to settings file (default "+config.DefaultPath()+")")
	flag.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	flag.BoolVar(&r.dumpTokens, "tokens", false, "Print tokens instead of evaluating")
	flag.BoolVar(&r.dumpAst, "ast", false, "Print the syntax tree instead of evaluating")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: rill [flags] [/path/to/source.rl]")
		flag.PrintDefaults()
	}
	flag.Parse()

	settings, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	level, err := logrus.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	r.settings = settings
	r.logger = logrus.New()
	r.logger.SetOutput(os.Stderr)
	r.logger.SetLevel(level)
	r.colors = color.New()
	if !settings.Color {
		r.colors.Disable()
	}
	r.opts = []internal.Option{
		internal.WithLogger(r.logger),
		internal.WithMaxCallDepth(settings.MaxCallDepth),
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		r.repl()
	case 1:
		if !r.runFile(args[0]) {
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func (r *runner) runFile(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatal(err)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		log.Fatal(err)
	}

	r.logger.WithField("path", absPath).Debug("run file")
	env := internal.NewGlobalEnv(internal.StdPrinter{})
	if err := r.run(string(b), env); err != nil {
		r.printError(err)
		return false
	}
	return true
}

// run evaluates source in env, or dumps its tokens or tree when asked to
func (r *runner) run(source string, env *internal.Env) error {
	if r.dumpTokens {
		tokens, err := internal.Tokenize(source)
		if err != nil {
			return err
		}
		for _, tk := range tokens {
			fmt.Printf("%d:%d\t%s\n", tk.Line, tk.Col, tk)
		}
	}
	if r.dumpAst {
		program, err := internal.Parse(source)
		if err != nil {
			return err
		}
		fmt.Println(internal.PrintTree(program))
	}
	if r.dumpTokens || r.dumpAst {
		return nil
	}

	_, err := internal.RunSource(source, env, r.opts...)
	return err
}

func (r *runner) repl() {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	r.readHistory(ln)
	defer r.writeHistory(ln)

	env := internal.NewGlobalEnv(internal.StdPrinter{})

	fmt.Println("rill repl, type exit to quit")
	for {
		line, err := r.readSource(ln)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			r.logger.WithError(err).Error("read input")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		ln.AppendHistory(strings.ReplaceAll(line, "\n", " "))

		if r.dumpTokens || r.dumpAst {
			if err := r.run(line, env); err != nil {
				r.printError(err)
			}
			continue
		}

		// A failed line is dropped, bindings made before the failure stay
		result, err := internal.RunSource(line, env, r.opts...)
		if err != nil {
			r.printError(err)
			continue
		}
		fmt.Println(r.colors.Cyan(result.String()))
	}
}

// readSource prompts until the input parses or fails for a reason other
// than running out of tokens. An empty continuation line submits what was
// typed so far.
func (r *runner) readSource(ln *liner.State) (string, error) {
	var b strings.Builder
	for {
		prompt := r.settings.Prompt
		if b.Len() > 0 {
			prompt = continuationPrompt
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), nil
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if _, err := internal.Parse(b.String()); !internal.IsIncomplete(err) {
			return b.String(), nil
		}
	}
}

func (r *runner) printError(err error) {
	fmt.Fprintln(os.Stderr, r.colors.Red(err.Error()))
}

func (r *runner) readHistory(ln *liner.State) {
	f, err := os.Open(r.settings.HistoryFile)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		r.logger.WithError(err).Warn("read history")
	}
}

func (r *runner) writeHistory(ln *liner.State) {
	if r.settings.HistoryFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(r.settings.HistoryFile), 0o755); err != nil {
		r.logger.WithError(err).Warn("write history")
		return
	}
	f, err := os.Create(r.settings.HistoryFile)
	if err != nil {
		r.logger.WithError(err).Warn("write history")
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		r.logger.WithError(err).Warn("write history")
	}
}
