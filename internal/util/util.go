// Package util holds small helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileSummary describes an input file read by an admin command.
type FileSummary struct {
	Path     string
	Size     int64
	Checksum string // hex sha256
	Data     []byte
}

// String renders "path (1.5 KB, sha256 ab12cd34)".
func (f *FileSummary) String() string {
	short := f.Checksum
	if len(short) > 8 {
		short = short[:8]
	}

	return fmt.Sprintf("%s (%s, sha256 %s)", f.Path, FormatBytes(f.Size), short)
}

// ReadFileSummary reads the whole file and checksums it, so an import log
// can name exactly which spreadsheet was applied.
func ReadFileSummary(path string) (*FileSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	sum := sha256.Sum256(data)

	return &FileSummary{
		Path:     path,
		Size:     int64(len(data)),
		Checksum: hex.EncodeToString(sum[:]),
		Data:     data,
	}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a command run time: "350ms", "45s", "2m30s" or "1h30m".
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
