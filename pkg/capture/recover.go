package capture

import (
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
)

// Recover validates every frame of the capture file at path and truncates
// the file after the last valid frame if a damaged or torn frame is found.
// A missing file is not an error.
func Recover(path string) (*RecoveryResult, error) {
	start := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &RecoveryResult{Duration: time.Since(start)}, nil
		}
		return nil, err
	}
	sizeBefore := info.Size()

	reader, err := NewReader(ReaderConfig{FilePath: path})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var validated int64
	var lastValid int64
	var corrupt bool
	for {
		_, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if !errors.Is(err, ErrCorruption) && !errors.Is(err, ErrShortFrame) {
				return nil, err
			}
			corrupt = true
			break
		}
		validated++
		lastValid = reader.Offset()
	}

	result := &RecoveryResult{
		FramesValidated: validated,
		FileSizeBefore:  sizeBefore,
		FileSizeAfter:   sizeBefore,
	}

	if corrupt {
		if err := os.Truncate(path, lastValid); err != nil {
			return nil, errors.Wrap(err, "truncate capture file")
		}
		result.FileSizeAfter = lastValid
		result.BytesTruncated = sizeBefore - lastValid
	}

	result.Duration = time.Since(start)
	return result, nil
}
