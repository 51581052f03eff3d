// Package archive stores raw PDUs in a pebble database, keyed by PDU type and
// a time-sortable KSUID.
package archive

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

const idLength = 20

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("archive: record not found")
	// ErrInvalidRecord is returned by Put for bytes too short to carry a PDU header.
	ErrInvalidRecord = errors.New("archive: invalid record")
)

// Entry is one archived PDU.
type Entry struct {
	ID      ksuid.KSUID
	Version pdu.ProtocolVersion
	Type    pdu.Type
	Order   codec.ByteOrder
	Raw     []byte
}

// Decode unmarshals the archived bytes with the default registry.
func (e *Entry) Decode() (pdu.PDU, error) {
	return pdu.Unmarshal(e.Raw, e.Order)
}

// Archive is a pebble-backed PDU store.
//
// Keys:
//
//	p/<type>/<ksuid>  ->  [version][order][raw PDU]
//	i/<ksuid>         ->  [type]
type Archive struct {
	db   *pebble.DB
	sync bool
}

// Options configures Open.
type Options struct {
	// Sync forces an fsync on every write.
	Sync bool
}

// Open opens or creates an archive in dir.
func Open(dir string, opts Options) (*Archive, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %s", dir)
	}
	return &Archive{db: db, sync: opts.Sync}, nil
}

func (a *Archive) writeOpts() *pebble.WriteOptions {
	if a.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

// Put stores a raw PDU and returns its new ID. The header is read to file the
// record under its type; the body is not validated.
func (a *Archive) Put(raw []byte, order codec.ByteOrder) (ksuid.KSUID, error) {
	if len(raw) < pdu.HeaderSize {
		return ksuid.Nil, errors.Wrapf(ErrInvalidRecord, "%d bytes, header needs %d", len(raw), pdu.HeaderSize)
	}
	version := pdu.ProtocolVersion(raw[0])
	t := pdu.Type(raw[2])

	id := ksuid.New()
	value := make([]byte, 0, 2+len(raw))
	value = append(value, uint8(version), uint8(order))
	value = append(value, raw...)

	b := a.db.NewBatch()
	defer b.Close()
	if err := b.Set(recordKey(t, id), value, nil); err != nil {
		return ksuid.Nil, err
	}
	if err := b.Set(indexKey(id), []byte{uint8(t)}, nil); err != nil {
		return ksuid.Nil, err
	}
	if err := b.Commit(a.writeOpts()); err != nil {
		return ksuid.Nil, errors.Wrap(err, "commit archive batch")
	}
	return id, nil
}

// PutPDU marshals p and stores it.
func (a *Archive) PutPDU(p pdu.PDU, order codec.ByteOrder) (ksuid.KSUID, error) {
	raw, err := pdu.MarshalWithLength(p, order)
	if err != nil {
		return ksuid.Nil, err
	}
	return a.Put(raw, order)
}

// Get returns the record with the given ID.
func (a *Archive) Get(id ksuid.KSUID) (*Entry, error) {
	t, err := a.typeOf(id)
	if err != nil {
		return nil, err
	}

	value, closer, err := a.db.Get(recordKey(t, id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "%s", id)
		}
		return nil, err
	}
	defer closer.Close()

	return decodeEntry(id, t, value)
}

// List returns up to limit records of type t in ID order, which follows
// arrival time to the second. A limit of zero or less returns every record.
func (a *Archive) List(t pdu.Type, limit int) ([]*Entry, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: typePrefix(t),
		UpperBound: []byte{'p', '/', uint8(t), '0'},
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []*Entry
	for iter.First(); iter.Valid(); iter.Next() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		key := iter.Key()
		id, err := ksuid.FromBytes(key[len(key)-idLength:])
		if err != nil {
			return nil, errors.Wrapf(err, "archive key %x", key)
		}
		entry, err := decodeEntry(id, t, iter.Value())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, iter.Error()
}

// Count returns the number of archived records of each type present.
func (a *Archive) Count() (map[pdu.Type]int, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("p/"),
		UpperBound: []byte("p0"),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	counts := make(map[pdu.Type]int)
	for iter.First(); iter.Valid(); iter.Next() {
		counts[pdu.Type(iter.Key()[2])]++
	}
	return counts, iter.Error()
}

// Delete removes the record with the given ID.
func (a *Archive) Delete(id ksuid.KSUID) error {
	t, err := a.typeOf(id)
	if err != nil {
		return err
	}

	b := a.db.NewBatch()
	defer b.Close()
	if err := b.Delete(recordKey(t, id), nil); err != nil {
		return err
	}
	if err := b.Delete(indexKey(id), nil); err != nil {
		return err
	}
	return b.Commit(a.writeOpts())
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) typeOf(id ksuid.KSUID) (pdu.Type, error) {
	value, closer, err := a.db.Get(indexKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return 0, errors.Wrapf(ErrNotFound, "%s", id)
		}
		return 0, err
	}
	defer closer.Close()

	if len(value) != 1 {
		return 0, errors.Newf("archive: index entry for %s has %d bytes", id, len(value))
	}
	return pdu.Type(value[0]), nil
}

func decodeEntry(id ksuid.KSUID, t pdu.Type, value []byte) (*Entry, error) {
	if len(value) < 2 {
		return nil, errors.Newf("archive: record %s has %d bytes", id, len(value))
	}
	// Pebble owns value; copy before the iterator or closer releases it.
	raw := make([]byte, len(value)-2)
	copy(raw, value[2:])
	return &Entry{
		ID:      id,
		Version: pdu.ProtocolVersion(value[0]),
		Type:    t,
		Order:   codec.ByteOrder(value[1]),
		Raw:     raw,
	}, nil
}

func typePrefix(t pdu.Type) []byte {
	return []byte{'p', '/', uint8(t), '/'}
}

func recordKey(t pdu.Type, id ksuid.KSUID) []byte {
	return append(typePrefix(t), id.Bytes()...)
}

func indexKey(id ksuid.KSUID) []byte {
	return append([]byte("i/"), id.Bytes()...)
}
