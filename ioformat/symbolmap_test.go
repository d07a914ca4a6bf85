package ioformat

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadTapeDescriptorOrdersByLine(t *testing.T) {
	src := "p\nq\nr\n"
	td, err := ReadTapeDescriptor(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTapeDescriptor: %v", err)
	}
	want := []string{"p", "q", "r"}
	if len(td) != len(want) {
		t.Fatalf("len(td) = %d, want %d", len(td), len(want))
	}
	for i, name := range want {
		if td[i] != name {
			t.Errorf("td[%d] = %q, want %q", i, td[i], name)
		}
	}
}

func TestReadTapeDescriptorSkipsBlankAndCommentLines(t *testing.T) {
	src := "p\n\n# a comment\nq\n"
	td, err := ReadTapeDescriptor(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTapeDescriptor: %v", err)
	}
	if len(td) != 2 || td[0] != "p" || td[1] != "q" {
		t.Errorf("td = %v, want [p q]", td)
	}
}

func TestReadTapeDescriptorRejectsDuplicateName(t *testing.T) {
	src := "p\nq\np\n"
	_, err := ReadTapeDescriptor(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected an error for a duplicate atomic proposition name")
	}
	var parseErr *InputParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want *InputParseError", err)
	}
	if !errors.Is(err, ErrInputParse) {
		t.Error("expected errors.Is(err, ErrInputParse) to hold")
	}
}

func TestWriteTapeDescriptorThenReadTapeDescriptorRoundTrips(t *testing.T) {
	orig := []string{"a", "b", "c"}
	var buf bytes.Buffer
	if err := WriteTapeDescriptor(&buf, orig); err != nil {
		t.Fatalf("WriteTapeDescriptor: %v", err)
	}
	reread, err := ReadTapeDescriptor(&buf)
	if err != nil {
		t.Fatalf("ReadTapeDescriptor after WriteTapeDescriptor: %v", err)
	}
	if len(reread) != len(orig) {
		t.Fatalf("len(reread) = %d, want %d", len(reread), len(orig))
	}
	for i := range orig {
		if reread[i] != orig[i] {
			t.Errorf("reread[%d] = %q, want %q", i, reread[i], orig[i])
		}
	}
}
