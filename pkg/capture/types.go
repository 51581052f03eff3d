package capture

import (
	"time"

	"github.com/cockroachdb/errors"
)

// WriterConfig holds configuration for a capture Writer.
type WriterConfig struct {
	FilePath      string        // Path to the capture file
	FsyncInterval time.Duration // How often to fsync (0 = every append)
	BufferSize    int           // Write buffer size
}

// ReaderConfig holds configuration for a capture Reader.
type ReaderConfig struct {
	FilePath    string // Path to the capture file
	StartOffset int64  // Offset to start reading from
}

// RecoveryResult describes what Recover found in a capture file.
type RecoveryResult struct {
	FramesValidated int64
	BytesTruncated  int64
	FileSizeBefore  int64
	FileSizeAfter   int64
	Duration        time.Duration
}

// Errors
var (
	ErrCorruption    = errors.New("capture: data corruption detected")
	ErrShortFrame    = errors.New("capture: short frame")
	ErrFrameTooLarge = errors.New("capture: PDU too large for a frame")
)
