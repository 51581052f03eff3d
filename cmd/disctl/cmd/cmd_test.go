package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/config"
	"github.com/ssargent/disgo/pkg/pdu"
)

type cli struct {
	t      *testing.T
	dir    string
	config string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	tmpDir, err := os.MkdirTemp("", "disctl_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })
	return &cli{t: t, dir: tmpDir, config: filepath.Join(tmpDir, "config.yaml")}
}

func (c *cli) path(elem ...string) string {
	return filepath.Join(append([]string{c.dir}, elem...)...)
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", c.config, "--log-level", "error"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func TestInitCommand(t *testing.T) {
	c := newCLI(t)

	out := c.mustRun("init", "--archive-dir", c.path("archive"), "--order", "little")
	assert.Contains(t, out, "Wrote config")
	assert.FileExists(t, c.config)

	cfg, err := config.LoadConfig(c.config)
	require.NoError(t, err)
	assert.Equal(t, c.path("archive"), cfg.ArchiveDir)
	assert.Equal(t, codec.LittleEndian, cfg.ByteOrder)

	out = c.mustRun("init")
	assert.Contains(t, out, "already exists")

	out = c.mustRun("init", "--force")
	assert.Contains(t, out, "Wrote config")
	cfg, err = config.LoadConfig(c.config)
	require.NoError(t, err)
	assert.Equal(t, codec.BigEndian, cfg.ByteOrder)
}

func TestSampleAndDecodeSummary(t *testing.T) {
	c := newCLI(t)
	raw := c.path("all.raw")

	out := c.mustRun("sample", raw)
	assert.Contains(t, out, "Wrote 27 PDUs")

	out = c.mustRun("decode", "--summary", raw)
	assert.Contains(t, out, "Fire")
	assert.Contains(t, out, "Receiver")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 27+2)
	assert.Equal(t, []string{"total", "27"}, strings.Fields(lines[len(lines)-2]))
}

func TestSampleFilteredDecodeJSON(t *testing.T) {
	c := newCLI(t)
	raw := c.path("fire.raw")

	c.mustRun("sample", "--type", "Fire", "--repeat", "3", raw)

	out := c.mustRun("decode", "--json", raw)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var first struct {
		Offset int        `json:"offset"`
		Size   int        `json:"size"`
		Fields codec.Node `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &first))
	assert.Equal(t, 96, first.Offset)
	assert.Equal(t, 96, first.Size)
	assert.Equal(t, "Fire", first.Fields.Name)
}

func TestDecodeDump(t *testing.T) {
	c := newCLI(t)
	raw := c.path("comment.raw")
	c.mustRun("sample", "--type", "Comment", raw)

	out := c.mustRun("decode", raw)
	assert.True(t, strings.HasPrefix(out, "# offset 0,"), out)
	assert.Contains(t, out, "\nComment\n")
	assert.Contains(t, out, "  protocolVersion: 6\n")
}

func TestDecodeLittleEndian(t *testing.T) {
	c := newCLI(t)
	raw := c.path("le.raw")

	out := c.mustRun("sample", "--order", "little", "--type", "Fire", raw)
	assert.Contains(t, out, "little endian")

	// Read as big endian the length field is nonsense.
	_, err := c.run("decode", raw)
	assert.Error(t, err)

	out = c.mustRun("decode", "--order", "little", "--summary", raw)
	assert.Contains(t, out, "Fire")
}

func TestDecodeErrors(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("decode", c.path("missing.raw"))
	assert.Error(t, err)

	truncated := c.path("truncated.raw")
	fire, err := pdu.MarshalWithLength(pdu.NewFire(), codec.BigEndian)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(truncated, append(fire, fire[:50]...), 0644))

	out, err := c.run("decode", "--summary", truncated)
	assert.ErrorIs(t, err, codec.ErrTruncated)
	assert.Contains(t, out, "total")

	_, err = c.run("sample", "--type", "Teleport", c.path("x.raw"))
	assert.Error(t, err)

	_, err = c.run("decode", "--order", "sideways", truncated)
	assert.ErrorIs(t, err, codec.ErrInvalidByteOrder)
}

func TestCaptureAndReplay(t *testing.T) {
	c := newCLI(t)
	raw := c.path("all.raw")
	log := c.path("capture", "session.dis")

	c.mustRun("sample", raw)

	out := c.mustRun("capture", "--out", log, raw)
	assert.Contains(t, out, "Captured 27 PDUs")

	out = c.mustRun("replay", log)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 27)
	assert.Contains(t, lines[0], "EntityState")

	extracted := c.path("extracted.raw")
	c.mustRun("replay", "--raw", extracted, log)
	want, err := os.ReadFile(raw)
	require.NoError(t, err)
	got, err := os.ReadFile(extracted)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// A second capture appends.
	c.mustRun("capture", "--out", log, raw)
	out = c.mustRun("replay", log)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 54)
}

func TestCaptureRecoversTornTail(t *testing.T) {
	c := newCLI(t)
	raw := c.path("fire.raw")
	log := c.path("session.dis")

	c.mustRun("sample", "--type", "Fire", raw)
	c.mustRun("capture", "--out", log, raw)

	f, err := os.OpenFile(log, os.O_APPEND|os.O_WRONLY, 0600)
	require.NoError(t, err)
	_, err = f.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = c.run("replay", log)
	assert.Error(t, err)

	out := c.mustRun("capture", "--out", log, raw)
	assert.Contains(t, out, "3 bytes truncated")

	out = c.mustRun("replay", "--dump", log)
	assert.Equal(t, 2, strings.Count(out, "# offset"))
}

func TestArchiveCommands(t *testing.T) {
	c := newCLI(t)
	raw := c.path("all.raw")
	dir := c.path("archive")

	c.mustRun("sample", raw)
	out := c.mustRun("archive", "import", "--dir", dir, raw)
	assert.Contains(t, out, "Archived 27 PDUs")

	out = c.mustRun("archive", "stats", "--dir", dir)
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "27")

	out = c.mustRun("archive", "ls", "--dir", dir, "--type", "Fire")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	id := strings.Fields(lines[0])[0]

	out = c.mustRun("archive", "get", "--dir", dir, id)
	assert.Contains(t, out, "Fire")
	assert.Contains(t, out, "range: 1500")

	out = c.mustRun("archive", "get", "--dir", dir, "--json", id)
	var line struct {
		Fields codec.Node `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &line))
	assert.Equal(t, "Fire", line.Fields.Name)

	out = c.mustRun("archive", "rm", "--dir", dir, id)
	assert.Contains(t, out, "Deleted")

	_, err := c.run("archive", "get", "--dir", dir, id)
	assert.Error(t, err)

	_, err = c.run("archive", "ls", "--dir", dir)
	assert.Error(t, err, "--type is required")

	_, err = c.run("archive", "get", "--dir", dir, "not-an-id")
	assert.Error(t, err)
}

func TestArchiveImportCapture(t *testing.T) {
	c := newCLI(t)
	raw := c.path("warfare.raw")
	log := c.path("session.dis")
	dir := c.path("archive")

	c.mustRun("sample", "--type", "Fire", "--type", "Detonation", "--repeat", "2", raw)
	c.mustRun("capture", "--out", log, raw)

	out := c.mustRun("archive", "import", "--dir", dir, "--capture", log)
	assert.Contains(t, out, "Archived 4 PDUs")

	out = c.mustRun("archive", "ls", "--dir", dir, "-t", "Detonation", "-n", "0")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestConfigFileDrivesDefaults(t *testing.T) {
	c := newCLI(t)

	cfg := config.DefaultConfig()
	cfg.ByteOrder = codec.LittleEndian
	cfg.CapturePath = c.path("configured.dis")
	cfg.Logging.Console = false
	require.NoError(t, config.SaveConfig(cfg, c.config))

	raw := c.path("le.raw")
	out := c.mustRun("sample", "--type", "Receiver", raw)
	assert.Contains(t, out, "little endian")

	c.mustRun("capture", raw)
	assert.FileExists(t, cfg.CapturePath)

	out = c.mustRun("replay")
	assert.Contains(t, out, "Receiver")
	assert.Contains(t, out, "little")
}
