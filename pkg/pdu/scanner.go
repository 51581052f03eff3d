package pdu

import (
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/ssargent/disgo/pkg/codec"
)

// Observer is notified of every record a Scanner frames.
// Implementations must be safe for concurrent use if shared between scanners.
type Observer interface {
	Decoded(p PDU, size int)
	Skipped(version ProtocolVersion, t Type, size int)
	Failed(err *DecodeError)
}

// Options configures a Scanner.
type Options struct {
	Order codec.ByteOrder
	// Registry defaults to DefaultRegistry().
	Registry *Registry
	// SkipCorrupt continues past records that are framed correctly but fail
	// to decode. By default the scan stops at the first such record.
	SkipCorrupt bool
	Observer    Observer
	// Logger receives debug events for skipped and failed records.
	Logger *zerolog.Logger
}

// Scanner walks a buffer of concatenated PDUs.
//
//	s := pdu.NewScanner(buf, pdu.Options{})
//	for s.Next() {
//	    handle(s.PDU())
//	}
//	if err := s.Err(); err != nil { ... }
//
// Records of unregistered types are skipped. A zero length field marks the
// end of the stream. Framing errors and, unless SkipCorrupt is set, decode
// errors stop the scan; PDUs already returned stay valid.
type Scanner struct {
	buf  []byte
	off  int
	opts Options
	reg  *Registry
	log  zerolog.Logger

	cur    PDU
	raw    []byte
	curOff int

	err      error
	done     bool
	skipped  int
	failures int
}

// NewScanner returns a Scanner over buf. The scanner does not copy buf; the
// slices returned by Raw alias it.
func NewScanner(buf []byte, opts Options) *Scanner {
	s := &Scanner{buf: buf, opts: opts, reg: opts.Registry, log: zerolog.Nop()}
	if s.reg == nil {
		s.reg = DefaultRegistry()
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	return s
}

// frame is the part of a header the scanner reads without decoding.
type frame struct {
	version ProtocolVersion
	typ     Type
	length  int
}

// peek reads the framing fields of the record at off. A zero length is
// returned as-is for the caller to treat as end of stream.
func peek(buf []byte, off int, order codec.ByteOrder) (frame, error) {
	remaining := len(buf) - off
	if remaining < HeaderSize {
		return frame{}, errors.Wrapf(codec.ErrTruncated, "header needs %d bytes, %d remaining", HeaderSize, remaining)
	}
	f := frame{
		version: ProtocolVersion(buf[off+versionOffset]),
		typ:     Type(buf[off+typeOffset]),
		length:  int(order.Uint16(buf[off+lengthOffset:])),
	}
	switch {
	case f.length == 0:
		return f, nil
	case f.length < HeaderSize:
		return f, errors.Wrapf(ErrInvalidLength, "length %d is shorter than the header", f.length)
	case f.length > remaining:
		return f, errors.Wrapf(codec.ErrTruncated, "length %d, %d bytes remaining", f.length, remaining)
	}
	return f, nil
}

// Next advances to the next decodable PDU.
func (s *Scanner) Next() bool {
	s.cur, s.raw = nil, nil
	for !s.done {
		if s.off >= len(s.buf) {
			s.done = true
			break
		}

		f, err := peek(s.buf, s.off, s.opts.Order)
		if err != nil {
			s.stop(&DecodeError{Offset: s.off, Version: f.version, Type: f.typ, Err: err})
			break
		}
		if f.length == 0 {
			s.log.Debug().Int("offset", s.off).Msg("zero length record, end of stream")
			s.done = true
			break
		}

		off := s.off
		raw := s.buf[off : off+f.length]
		s.off += f.length

		factory, ok := s.reg.Lookup(f.version, f.typ)
		if !ok {
			s.skipped++
			s.log.Debug().Int("offset", off).Uint8("version", uint8(f.version)).
				Uint8("type", uint8(f.typ)).Int("length", f.length).Msg("skipping unknown PDU type")
			if s.opts.Observer != nil {
				s.opts.Observer.Skipped(f.version, f.typ, f.length)
			}
			continue
		}

		p := factory()
		rd := codec.NewReader(raw, s.opts.Order)
		if err := codec.UnmarshalFrom(rd, p); err != nil {
			derr := &DecodeError{Offset: off, Version: f.version, Type: f.typ, Err: err}
			s.failures++
			if s.opts.Observer != nil {
				s.opts.Observer.Failed(derr)
			}
			if s.opts.SkipCorrupt {
				s.log.Debug().Err(derr).Msg("skipping corrupt PDU")
				continue
			}
			s.stop(derr)
			break
		}
		if rd.Remaining() > 0 {
			s.log.Debug().Int("offset", off).Stringer("type", f.typ).
				Int("trailing", rd.Remaining()).Msg("PDU shorter than its length field")
		}

		s.cur, s.raw, s.curOff = p, raw, off
		if s.opts.Observer != nil {
			s.opts.Observer.Decoded(p, f.length)
		}
		return true
	}
	return false
}

func (s *Scanner) stop(err *DecodeError) {
	s.err = err
	s.done = true
	s.log.Debug().Err(err).Msg("scan stopped")
}

// PDU returns the PDU decoded by the last call to Next.
func (s *Scanner) PDU() PDU { return s.cur }

// Raw returns the exact bytes of the current PDU.
func (s *Scanner) Raw() []byte { return s.raw }

// Offset returns the buffer offset of the current PDU.
func (s *Scanner) Offset() int { return s.curOff }

// Err returns the error that stopped the scan, or nil if the buffer was
// consumed or a zero length record ended it.
func (s *Scanner) Err() error { return s.err }

// Skipped is the number of records of unregistered types passed over.
func (s *Scanner) Skipped() int { return s.skipped }

// Failures is the number of records that failed to decode.
func (s *Scanner) Failures() int { return s.failures }
