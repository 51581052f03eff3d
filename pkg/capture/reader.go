package capture

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Reader provides sequential access to the frames of a capture file.
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	offset int64
	config ReaderConfig
}

// NewReader opens the capture file for reading.
func NewReader(config ReaderConfig) (*Reader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, errors.Wrap(err, "open capture file")
	}

	if config.StartOffset > 0 {
		if _, err := file.Seek(config.StartOffset, io.SeekStart); err != nil {
			_ = file.Close()
			return nil, errors.Wrap(err, "seek capture file")
		}
	}

	return &Reader{
		file:   file,
		reader: bufio.NewReader(file),
		offset: config.StartOffset,
		config: config,
	}, nil
}

// Next reads and validates the next frame. It returns io.EOF at a clean end
// of file and an error wrapping ErrCorruption for a torn or damaged frame.
func (r *Reader) Next() (*Frame, error) {
	header := make([]byte, FrameHeaderSize)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.Wrapf(ErrCorruption, "torn frame header at offset %d (%d bytes)", r.offset, n)
		}
		return nil, err
	}

	length := binary.LittleEndian.Uint32(header[4:8])
	if length > MaxPDUSize {
		return nil, errors.Wrapf(ErrCorruption, "frame at offset %d claims a %d byte PDU", r.offset, length)
	}

	data := make([]byte, FrameHeaderSize+int(length))
	copy(data, header)
	if _, err := io.ReadFull(r.reader, data[FrameHeaderSize:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.Wrapf(ErrCorruption, "torn frame at offset %d", r.offset)
		}
		return nil, err
	}

	f, err := DecodeFrame(data)
	if err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrapf(err, "frame at offset %d", r.offset)
	}

	r.offset += int64(len(data))
	return f, nil
}

// Seek sets the read offset.
func (r *Reader) Seek(offset int64) error {
	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	r.reader = bufio.NewReader(r.file)
	r.offset = offset
	return nil
}

// Offset returns the offset of the next frame.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining frames.
func (r *Reader) Iterator() *Iterator {
	return &Iterator{reader: r}
}

// Close closes the capture file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Iterator walks frames until end of file or the first error.
type Iterator struct {
	reader *Reader
	frame  *Frame
	err    error
}

func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.frame, it.err = it.reader.Next()
	return it.err == nil
}

func (it *Iterator) Frame() *Frame {
	return it.frame
}

// Err returns the error that ended iteration, or nil at a clean end of file.
func (it *Iterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}
