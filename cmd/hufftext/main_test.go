package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/axiomhq/hufftext"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options
	}{
		{"compress_stdin", []string{"compress"}, options{command: "compress"}},
		{"decompress_file", []string{"decompress", "in.huff"}, options{command: "decompress", input: "in.huff"}},
		{"output_short", []string{"-o", "out", "compress", "in"}, options{command: "compress", input: "in", output: "out"}},
		{"output_long", []string{"--output", "out", "compress"}, options{command: "compress", output: "out"}},
		{"stats_zstd", []string{"-zstd", "-v", "stats", "in"}, options{command: "stats", input: "in", zstd: true, verbose: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("parseArgs(%q): %v", tt.args, err)
			}
			if got != tt.want {
				t.Fatalf("got %+v want %+v", got, tt.want)
			}
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"explode"},
		{"compress", "a", "b"},
		{"-zstd", "compress"},
		{"-nope", "compress"},
	}
	for _, args := range tests {
		if _, err := parseArgs(args); !errors.Is(err, errUsage) {
			t.Fatalf("parseArgs(%q): got %v want usage error", args, err)
		}
	}
	if _, err := parseArgs([]string{"-h"}); err != flag.ErrHelp {
		t.Fatalf("-h: got %v want flag.ErrHelp", err)
	}
}

func TestRunRoundtrip(t *testing.T) {
	text := "colons: a:b::c and some 😀 text, repeated repeated repeated"

	var compressed bytes.Buffer
	if err := run(options{command: "compress"}, strings.NewReader(text), &compressed); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if compressed.String() != hufftext.Compress(text) {
		t.Fatalf("cli output differs from library output")
	}

	var restored bytes.Buffer
	if err := run(options{command: "decompress"}, &compressed, &restored); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	if restored.String() != text {
		t.Fatalf("got %q want %q", restored.String(), text)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	packed := filepath.Join(dir, "in.huff")
	out := filepath.Join(dir, "out.txt")
	text := strings.Repeat("file based round trip ", 20)
	if err := os.WriteFile(in, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(options{command: "compress", input: in, output: packed}, nil, nil); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := run(options{command: "decompress", input: packed, output: out}, nil, nil); err != nil {
		t.Fatalf("decompress: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != text {
		t.Fatalf("got %q want %q", got, text)
	}
}

func TestRunDecompressCorrupt(t *testing.T) {
	var out bytes.Buffer
	err := run(options{command: "decompress"}, strings.NewReader("not-a-container"), &out)
	if !errors.Is(err, hufftext.ErrInvalidFormat) {
		t.Fatalf("got %v want ErrInvalidFormat", err)
	}
	if out.Len() != 0 {
		t.Fatalf("wrote %q on failure", out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run(options{command: "compress", input: filepath.Join(t.TempDir(), "absent")}, nil, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v want os.ErrNotExist", err)
	}
}

func TestStatsReport(t *testing.T) {
	var out bytes.Buffer
	opts := options{command: "stats", zstd: true}
	if err := run(opts, strings.NewReader("aab"), &out); err != nil {
		t.Fatalf("stats: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"original:   6 Bytes\n",
		"compressed: 24 Bytes\n",
		"ratio:      4.0000\n",
		"savings:    -300.00%\n",
		"tree:       11 chars\n",
		"zstd:       ",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
