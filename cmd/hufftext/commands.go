package main

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/axiomhq/hufftext"
)

// Shared encoder; EncodeAll is safe for concurrent use.
var zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))

func compressText(text string) (string, error) {
	blob := hufftext.Compress(text)
	st := hufftext.Stats(text, blob)
	log.Infof("compressed %s to %s (%.1f%% saved)",
		hufftext.FormatSize(int64(st.OriginalSize), 2),
		hufftext.FormatSize(int64(st.CompressedSize), 2),
		st.Savings)
	return blob, nil
}

func decompressText(blob string) (string, error) {
	text, err := hufftext.Decompress(blob)
	if err != nil {
		return "", fmt.Errorf("decompress: %w", err)
	}
	if c, err := hufftext.ParseContainer(blob); err == nil {
		log.Debugf("container: padding %d, tree %d chars, payload %d bytes",
			c.Padding, len(c.Tree), len(c.Payload))
	}
	log.Infof("restored %d characters", len([]rune(text)))
	return text, nil
}

// statsReport compresses text and renders its metrics, one per line.
func statsReport(text string, withZstd bool) (string, error) {
	blob := hufftext.Compress(text)
	st := hufftext.Stats(text, blob)

	var b strings.Builder
	fmt.Fprintf(&b, "original:   %s\n", hufftext.FormatSize(int64(st.OriginalSize), 2))
	fmt.Fprintf(&b, "compressed: %s\n", hufftext.FormatSize(int64(st.CompressedSize), 2))
	fmt.Fprintf(&b, "ratio:      %.4f\n", st.Ratio)
	fmt.Fprintf(&b, "savings:    %.2f%%\n", st.Savings)
	if st.TreeSize != nil {
		fmt.Fprintf(&b, "tree:       %d chars\n", *st.TreeSize)
	}
	if withZstd {
		z := zstdEncoder.EncodeAll([]byte(text), nil)
		log.Debugf("zstd produced %d bytes from %d input bytes", len(z), len(text))
		fmt.Fprintf(&b, "zstd:       %s\n", hufftext.FormatSize(int64(len(z)), 2))
	}
	return b.String(), nil
}
