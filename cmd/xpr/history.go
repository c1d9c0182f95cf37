package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// history keeps the most recent non-empty lines, oldest first.
type history struct {
	limit int
	lines []string
}

func newHistory(limit int) *history {
	return &history{limit, make([]string, 0, limit)}
}

// add records line and reports whether an older line had to be dropped.
func (h *history) add(line string) (dropped bool) {
	if strings.TrimSpace(line) == "" || h.limit == 0 {
		return false
	}
	if len(h.lines) == h.limit {
		copy(h.lines, h.lines[1:])
		h.lines = h.lines[:len(h.lines)-1]
		dropped = true
	}
	h.lines = append(h.lines, line)
	return dropped
}

func (h *history) entries() []string {
	return h.lines
}

// load adds every line read from r.
func (h *history) load(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	for s.Scan() {
		h.add(s.Text())
	}
	return s.Err()
}

func (h *history) save(w io.Writer) error {
	for _, line := range h.lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
