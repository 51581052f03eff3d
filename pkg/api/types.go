package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/disgo/pkg/archive"
	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind        string
	Port        int
	Order       codec.ByteOrder // Default byte order when a request has no ?order=
	SkipCorrupt bool            // Default for ?skip_corrupt=
	APIKey      string          // Optional; when set every /api/v1 route requires X-API-Key
	MaxBodySize int64           // Request body limit in bytes
}

// Archive is the subset of archive.Archive the server uses.
type Archive interface {
	Put(raw []byte, order codec.ByteOrder) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) (*archive.Entry, error)
	List(t pdu.Type, limit int) ([]*archive.Entry, error)
	Count() (map[pdu.Type]int, error)
	Delete(id ksuid.KSUID) error
}

// DecodedPDU is one PDU in a decode response.
type DecodedPDU struct {
	Offset  int        `json:"offset"`
	Size    int        `json:"size"`
	Version string     `json:"version"`
	Type    string     `json:"type"`
	Family  string     `json:"family"`
	Hash    string     `json:"hash"`
	Fields  codec.Node `json:"fields"`
}

// DecodeFailure describes a record that could not be decoded.
type DecodeFailure struct {
	Offset int    `json:"offset"`
	Type   string `json:"type"`
	Error  string `json:"error"`
}

// DecodeResponse is returned by POST /api/v1/decode.
type DecodeResponse struct {
	Order    string          `json:"order"`
	PDUs     []DecodedPDU    `json:"pdus"`
	Skipped  int             `json:"skipped"`
	Failures []DecodeFailure `json:"failures,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// ArchiveEntry is an archived PDU as returned by the archive routes.
type ArchiveEntry struct {
	ID      string      `json:"id"`
	Time    string      `json:"time"`
	Version string      `json:"version"`
	Type    string      `json:"type"`
	Order   string      `json:"order"`
	Size    int         `json:"size"`
	Fields  *codec.Node `json:"fields,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TypeInfo describes one registered PDU type.
type TypeInfo struct {
	Number uint8  `json:"number"`
	Name   string `json:"name"`
	Family string `json:"family"`
}
