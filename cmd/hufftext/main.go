package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("hufftext")

const progName = "hufftext"
const usageMessageRaw = `
Usage: hufftext [OPTIONS] COMMAND [FILE]

Options:
  --output FILE, -o FILE
	Write the result to FILE instead of standard output.
  --zstd
	With stats, also report the size zstd reaches on the
	same input as a baseline.
  --verbose, -v
	Log each step to standard error.

Commands:
  compress [FILE]
	Compress the text in FILE (or standard input) into a
	HUFF1 container.
  decompress [FILE]
	Restore the text from the HUFF1 container in FILE (or
	standard input).
  stats [FILE]
	Compress the text in FILE (or standard input) and print
	size metrics instead of the container.
`

type options struct {
	command string
	input   string
	output  string
	zstd    bool
	verbose bool
}

var errUsage = errors.New("usage")

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging(w io.Writer) {
	backend := logging.NewLogBackend(w, progName+": ", 0)
	formatSpec := "%{level:6s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// parseArgs turns the command line into options. The returned error wraps
// errUsage for anything the user should fix, or is flag.ErrHelp.
func parseArgs(args []string) (options, error) {
	var opts options
	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.
	flags.StringVar(&opts.output, "output", "", "")
	flags.StringVar(&opts.output, "o", "", "")
	flags.BoolVar(&opts.zstd, "zstd", false, "")
	flags.BoolVar(&opts.verbose, "verbose", false, "")
	flags.BoolVar(&opts.verbose, "v", false, "")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, err
		}
		return opts, fmt.Errorf("%w: %s", errUsage, err)
	}

	switch flags.NArg() {
	case 0:
		return opts, fmt.Errorf("%w: not enough arguments; expected COMMAND", errUsage)
	case 1, 2:
	default:
		return opts, fmt.Errorf("%w: too many arguments at %d (%q)", errUsage, 2, flags.Arg(2))
	}
	opts.command = flags.Arg(0)
	opts.input = flags.Arg(1)

	switch opts.command {
	case "compress", "decompress", "stats":
	default:
		return opts, fmt.Errorf("%w: unknown command %q", errUsage, opts.command)
	}
	if opts.zstd && opts.command != "stats" {
		return opts, fmt.Errorf("%w: --zstd only applies to stats", errUsage)
	}
	return opts, nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func writeOutput(name string, stdout io.Writer, data string) error {
	if name == "" || name == "-" {
		_, err := io.WriteString(stdout, data)
		return err
	}
	return os.WriteFile(name, []byte(data), 0o644)
}

// run executes one command. Results go to stdout or opts.output.
func run(opts options, stdin io.Reader, stdout io.Writer) error {
	text, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}
	log.Debugf("read %d bytes for %s", len(text), opts.command)

	var result string
	switch opts.command {
	case "compress":
		result, err = compressText(text)
	case "decompress":
		result, err = decompressText(text)
	case "stats":
		result, err = statsReport(text, opts.zstd)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, opts.command)
	}
	if err != nil {
		return err
	}
	return writeOutput(opts.output, stdout, result)
}

func main() {
	startLogging(os.Stderr)

	opts, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if err != nil {
		usageErrorf("%s", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
	}

	if opts.verbose {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		exitError(err)
	}
}
