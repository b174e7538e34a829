package hufftext

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// CompressionStats describes one completed compression.
type CompressionStats struct {
	OriginalSize   int     `json:"originalSize"`       // 2 bytes per UTF-16 unit of the original
	CompressedSize int     `json:"compressedSize"`     // 1 byte per character of the container
	Ratio          float64 `json:"ratio"`              // CompressedSize / OriginalSize
	Savings        float64 `json:"savings"`            // 100 × (1 − Ratio)
	TreeSize       *int    `json:"treeSize,omitempty"` // serialized tree length, nil if compressed is not a valid container
}

// Stats reports size metrics for an (original, compressed) pair. It never
// fails: when compressed does not parse as a container, TreeSize is nil.
// Ratio and Savings are 0 for an empty original.
func Stats(original, compressed string) CompressionStats {
	st := CompressionStats{
		OriginalSize:   2 * unitCount(original),
		CompressedSize: utf8.RuneCountInString(compressed),
	}
	if st.OriginalSize > 0 {
		st.Ratio = float64(st.CompressedSize) / float64(st.OriginalSize)
		st.Savings = 100 * (1 - st.Ratio)
	}
	if c, err := ParseContainer(compressed); err == nil {
		n := len(c.Tree)
		st.TreeSize = &n
	}
	return st
}

var sizeUnits = [...]string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with base-1024 units, e.g. "1.5 KB".
// Trailing zeros of the fraction are dropped.
func FormatSize(bytes int64, decimals int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	if decimals < 0 {
		decimals = 0
	}
	v, i := float64(bytes), 0
	for math.Abs(v) >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	return strconv.FormatFloat(roundTo(v, decimals), 'f', -1, 64) + " " + sizeUnits[i]
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
