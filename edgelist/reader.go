// SPDX-License-Identifier: MIT
// Package: qlap/edgelist
//
// reader.go - plain-text edge lists.
//
// Format: one edge per line, "src dst [weight]". Fields are separated by
// spaces, tabs or commas. Blank lines and lines starting with '#' or '%' are
// skipped. A file either gives a weight on every edge line or on none.

package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses a text edge list from r.
func Read(r io.Reader) (EdgeList, error) {
	var (
		e        EdgeList
		weighted = -1 // -1 undecided, 0 no, 1 yes
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ' ' || c == '\t' || c == ','
		})
		if len(fields) != 2 && len(fields) != 3 {
			return EdgeList{}, fmt.Errorf("Read: line %d: want 2 or 3 fields, got %d: %w", lineNo, len(fields), ErrParse)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return EdgeList{}, fmt.Errorf("Read: line %d: src %q: %w", lineNo, fields[0], ErrParse)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return EdgeList{}, fmt.Errorf("Read: line %d: dst %q: %w", lineNo, fields[1], ErrParse)
		}
		has := 0
		if len(fields) == 3 {
			has = 1
		}
		if weighted == -1 {
			weighted = has
		} else if weighted != has {
			return EdgeList{}, fmt.Errorf("Read: line %d: mixed weighted and unweighted lines: %w", lineNo, ErrParse)
		}
		e.Src = append(e.Src, u)
		e.Dst = append(e.Dst, v)
		if has == 1 {
			w, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return EdgeList{}, fmt.Errorf("Read: line %d: weight %q: %w", lineNo, fields[2], ErrParse)
			}
			e.Weight = append(e.Weight, float32(w))
		}
	}
	if err := sc.Err(); err != nil {
		return EdgeList{}, fmt.Errorf("Read: %w", err)
	}
	if err := e.Validate(UnknownNodes); err != nil {
		return EdgeList{}, fmt.Errorf("Read: %w", err)
	}

	return e, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return EdgeList{}, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	e, err := Read(f)
	if err != nil {
		return EdgeList{}, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return e, nil
}

// Write renders e in the format Read accepts. Unweighted lists omit the
// weight column.
func Write(w io.Writer, e EdgeList) error {
	bw := bufio.NewWriter(w)
	for k := range e.Src {
		var err error
		if e.Weight != nil {
			_, err = fmt.Fprintf(bw, "%d %d %s\n", e.Src[k], e.Dst[k],
				strconv.FormatFloat(float64(e.Weight[k]), 'g', -1, 32))
		} else {
			_, err = fmt.Fprintf(bw, "%d %d\n", e.Src[k], e.Dst[k])
		}
		if err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}
