package main

// This is an interpreter for the xpr expression language written in Go.

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/letung3105/xpr/internal/xpr"
	"github.com/peterh/liner"
)

func main() {
	flags := flag.NewFlagSet("xpr", flag.ContinueOnError)
	configPath := flags.String("config", "", "path of the YAML config file (default "+defaultConfigFile+")")
	logLevel := flags.String("loglevel", "", "log level, overrides the config file")
	printAST := flags.Bool("ast", false, "print syntax trees instead of evaluating (script or REPL)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(64)
	}

	args := flags.Args()
	if len(args) > 1 {
		fmt.Println("Usage: xpr [flags] [script]")
		os.Exit(64)
	}

	cfg, err := loadConfig(orDefault(*configPath, defaultConfigFile), *configPath != "")
	exitOnError(err, 1)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	log.SetDefaultsForClientTools()
	exitOnError(log.SetLogLevelStr(cfg.LogLevel), 1)

	reporter := xpr.NewSimpleReporter(os.Stderr)
	session := xpr.NewSession(cfg.MaxDepth)
	if len(args) != 1 {
		runPrompt(cfg, *printAST, session, reporter)
	} else {
		runFile(args[0], *printAST, session, reporter)
	}
}

// Run the interpreter in REPL mode
func runPrompt(cfg config, printAST bool, session *xpr.Session, reporter xpr.Reporter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := newHistory(cfg.HistorySize)
	histPath := expandHome(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		if err := hist.load(f); err != nil {
			log.Warnf("can't read history %s: %v", histPath, err)
		}
		f.Close()
	}
	for _, line := range hist.entries() {
		ln.AppendHistory(line)
	}

	fmt.Println("welcome to REPL!")
	r := &repl{ln, os.Stdout, session, reporter, hist, cfg.Prompt, printAST}
	err := r.run()

	if cfg.HistoryFile != "" && cfg.HistorySize > 0 {
		saveHistory(hist, histPath)
	}
	if err != nil {
		ln.Close()
		exitOnError(err, 1)
	}
}

func saveHistory(hist *history, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("can't write history %s: %v", path, err)
		return
	}
	defer f.Close()
	if err := hist.save(f); err != nil {
		log.Warnf("can't write history %s: %v", path, err)
	}
}

// Run the given file as script
func runFile(fpath string, printAST bool, session *xpr.Session, reporter xpr.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, 1)

	runSource(string(bytes), printAST, session, reporter, os.Stdout)
	exitIf(reporter.HadError(), 65)
	exitIf(reporter.HadRuntimeError(), 70)
}

func runSource(source string, printAST bool, session *xpr.Session, reporter xpr.Reporter, out io.Writer) {
	if printAST {
		term, err := session.ParseSource(source)
		if err != nil {
			reporter.Report(err)
			return
		}
		fmt.Fprintln(out, session.Print(term))
		return
	}

	val, err := session.Eval(source)
	if err != nil {
		reporter.Report(err)
		return
	}
	if s := val.String(); s != "" {
		fmt.Fprintln(out, s)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
