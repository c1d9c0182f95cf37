package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/letung3105/xpr/internal/xpr"
	"github.com/peterh/liner"
)

const (
	cmdQuit = ":quit"
	cmdAST  = ":ast"
)

// lineReader is the part of liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ClearHistory()
}

// repl reads one line at a time, evaluates it and prints the value or the
// error. Errors never end the loop. With astOnly set every line is printed as
// a syntax tree instead of being evaluated.
type repl struct {
	reader   lineReader
	out      io.Writer
	session  *xpr.Session
	reporter xpr.Reporter
	history  *history
	prompt   string
	astOnly  bool
}

func (r *repl) run() error {
	for {
		line, err := r.reader.Prompt(r.prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			break
		}
		if err != nil {
			return err
		}
		if !r.handle(line) {
			break
		}
	}
	fmt.Fprintln(r.out, "Exiting...")
	return nil
}

// handle processes one line and returns false when the REPL should stop.
func (r *repl) handle(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	r.remember(line)
	defer r.reporter.Reset()

	switch {
	case trimmed == cmdQuit:
		return false
	case trimmed == cmdAST || strings.HasPrefix(trimmed, cmdAST+" "):
		r.printAST(strings.TrimPrefix(trimmed, cmdAST))
	default:
		r.eval(line)
	}
	return true
}

func (r *repl) eval(line string) {
	runSource(line, r.astOnly, r.session, r.reporter, r.out)
}

func (r *repl) printAST(source string) {
	runSource(source, true, r.session, r.reporter, r.out)
}

// remember records line in the bounded history and mirrors it into the line
// editor so it can be recalled with the arrow keys.
func (r *repl) remember(line string) {
	if r.history.limit == 0 {
		return
	}
	if !r.history.add(line) {
		r.reader.AppendHistory(line)
		return
	}
	log.LogVf("history full, keeping the last %d lines", len(r.history.entries()))
	r.reader.ClearHistory()
	for _, entry := range r.history.entries() {
		r.reader.AppendHistory(entry)
	}
}
