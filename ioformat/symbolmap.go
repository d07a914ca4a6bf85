package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hyperltl/advicebits/alphabet"
)

// ReadTapeDescriptor parses a symbol-mapping file: plain UTF-8, one
// atomic-proposition name per line, blank lines and "#"-prefixed comment
// lines skipped. Position i in the returned descriptor corresponds to bit
// i, so the order lines appear in the file is significant.
func ReadTapeDescriptor(r io.Reader) (alphabet.TapeDescriptor, error) {
	var names alphabet.TapeDescriptor
	seen := map[string]int{}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if prev, ok := seen[name]; ok {
			return nil, &InputParseError{Line: lineNo, Reason: fmt.Sprintf("atomic proposition %q already declared on line %d", name, prev)}
		}
		seen[name] = lineNo
		names = append(names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: read symbol mapping: %w", err)
	}
	return names, nil
}

// WriteTapeDescriptor emits td to w, one atomic-proposition name per line,
// in bit-position order — the inverse of ReadTapeDescriptor.
func WriteTapeDescriptor(w io.Writer, td alphabet.TapeDescriptor) error {
	bw := bufio.NewWriter(w)
	for _, name := range td {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return err
		}
	}
	return bw.Flush()
}
