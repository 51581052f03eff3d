package archive

import (
	"os"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "archive_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	a, err := Open(tmpDir, Options{})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestPutGet(t *testing.T) {
	a := openTestArchive(t)

	fire := pdu.NewFire()
	fire.Range = 1500
	raw, err := pdu.MarshalWithLength(fire, codec.BigEndian)
	require.NoError(t, err)

	id, err := a.Put(raw, codec.BigEndian)
	require.NoError(t, err)
	assert.False(t, id.IsNil())

	entry, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, pdu.TypeFire, entry.Type)
	assert.Equal(t, pdu.DefaultVersion, entry.Version)
	assert.Equal(t, codec.BigEndian, entry.Order)
	assert.Equal(t, raw, entry.Raw)

	decoded, err := entry.Decode()
	require.NoError(t, err)
	require.IsType(t, &pdu.Fire{}, decoded)
	assert.Equal(t, float32(1500), decoded.(*pdu.Fire).Range)
}

func TestPutPDULittleEndian(t *testing.T) {
	a := openTestArchive(t)

	collision := pdu.NewCollision()
	id, err := a.PutPDU(collision, codec.LittleEndian)
	require.NoError(t, err)

	entry, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, codec.LittleEndian, entry.Order)
	assert.Equal(t, pdu.TypeCollision, entry.Type)

	decoded, err := entry.Decode()
	require.NoError(t, err)
	assert.True(t, codec.Equal(collision, decoded))
}

func TestPutRejectsShortRecord(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Put([]byte{6, 1, 2}, codec.BigEndian)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestGetMissing(t *testing.T) {
	a := openTestArchive(t)

	_, err := a.Get(ksuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByType(t *testing.T) {
	a := openTestArchive(t)

	want := make(map[ksuid.KSUID]bool)
	for range 3 {
		id, err := a.PutPDU(pdu.NewEntityState(), codec.BigEndian)
		require.NoError(t, err)
		want[id] = true
	}
	_, err := a.PutPDU(pdu.NewFire(), codec.BigEndian)
	require.NoError(t, err)

	entries, err := a.List(pdu.TypeEntityState, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, want[e.ID])
		assert.Equal(t, pdu.TypeEntityState, e.Type)
	}

	limited, err := a.List(pdu.TypeEntityState, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := a.List(pdu.TypeSignal, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCount(t *testing.T) {
	a := openTestArchive(t)

	for _, p := range pdu.Samples() {
		_, err := a.PutPDU(p, codec.BigEndian)
		require.NoError(t, err)
	}
	_, err := a.PutPDU(pdu.NewFire(), codec.BigEndian)
	require.NoError(t, err)

	counts, err := a.Count()
	require.NoError(t, err)
	assert.Len(t, counts, len(pdu.Samples()))
	assert.Equal(t, 2, counts[pdu.TypeFire])
	assert.Equal(t, 1, counts[pdu.TypeReceiver])
}

func TestDelete(t *testing.T) {
	a := openTestArchive(t)

	id, err := a.PutPDU(pdu.NewDesignator(), codec.BigEndian)
	require.NoError(t, err)

	require.NoError(t, a.Delete(id))

	_, err = a.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)

	counts, err := a.Count()
	require.NoError(t, err)
	assert.Empty(t, counts)

	assert.ErrorIs(t, a.Delete(id), ErrNotFound)
}

func TestReopenKeepsRecords(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "archive_reopen")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	a, err := Open(tmpDir, Options{Sync: true})
	require.NoError(t, err)
	id, err := a.PutPDU(pdu.NewComment(), codec.BigEndian)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(tmpDir, Options{})
	require.NoError(t, err)
	defer a.Close()

	entry, err := a.Get(id)
	require.NoError(t, err)
	assert.Equal(t, pdu.TypeComment, entry.Type)
}
