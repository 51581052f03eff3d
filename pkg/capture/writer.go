package capture

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/disgo/pkg/codec"
)

// Writer appends frames to a capture file.
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	fsyncTimer *time.Timer
	config     WriterConfig
	mutex      sync.Mutex
	offset     int64 // Current write offset
}

// NewWriter opens or creates the capture file and positions at its end.
func NewWriter(config WriterConfig) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, errors.Wrap(err, "create capture directory")
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "open capture file")
	}

	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "seek capture file")
	}

	if config.BufferSize <= 0 {
		config.BufferSize = 64 * 1024
	}

	w := &Writer{
		file:   file,
		writer: bufio.NewWriterSize(file, config.BufferSize),
		config: config,
		offset: offset,
	}

	if config.FsyncInterval > 0 {
		w.fsyncTimer = time.AfterFunc(config.FsyncInterval, func() {
			w.mutex.Lock()
			defer w.mutex.Unlock()
			_ = w.sync()
		})
	}

	return w, nil
}

// Append writes pdu as a new frame and returns its ID and file offset.
func (w *Writer) Append(pdu []byte, order codec.ByteOrder) (ksuid.KSUID, int64, error) {
	f := NewFrame(pdu, order)
	offset, err := w.WriteFrame(f)
	return f.ID, offset, err
}

// WriteFrame writes f, recomputing its CRC, and returns its file offset.
func (w *Writer) WriteFrame(f *Frame) (int64, error) {
	data, err := f.Encode()
	if err != nil {
		return 0, err
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()

	n, err := w.writer.Write(data)
	if err != nil {
		return 0, errors.Wrap(err, "write frame")
	}

	frameOffset := w.offset
	w.offset += int64(n)

	if w.config.FsyncInterval == 0 {
		if err := w.sync(); err != nil {
			return 0, err
		}
	} else if w.fsyncTimer != nil {
		w.fsyncTimer.Reset(w.config.FsyncInterval)
	}

	return frameOffset, nil
}

// Sync flushes buffered frames and fsyncs the file.
func (w *Writer) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.sync()
}

func (w *Writer) sync() error {
	if err := w.writer.Flush(); err != nil {
		return errors.Wrap(err, "flush capture file")
	}
	return w.file.Sync()
}

// Close syncs and closes the capture file.
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.fsyncTimer != nil {
		w.fsyncTimer.Stop()
	}

	if err := w.sync(); err != nil {
		_ = w.file.Close()
		return err
	}

	return w.file.Close()
}

// Size returns the current size of the capture file including buffered frames.
func (w *Writer) Size() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Path returns the file path.
func (w *Writer) Path() string {
	return w.config.FilePath
}
