package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/disgo/pkg/archive"
	"github.com/ssargent/disgo/pkg/codec"
	"github.com/ssargent/disgo/pkg/pdu"
)

const (
	defaultMaxBodySize = 16 << 20
	defaultListLimit   = 100
)

// Server holds the API server state
type Server struct {
	archive  Archive
	registry *pdu.Registry
	config   ServerConfig
	metrics  *Metrics
	logger   zerolog.Logger
}

// NewServer creates a new API server. archive may be nil, in which case the
// archive routes answer 503.
func NewServer(archive Archive, config ServerConfig, metrics *Metrics, logger zerolog.Logger) *Server {
	if config.MaxBodySize <= 0 {
		config.MaxBodySize = defaultMaxBodySize
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Server{
		archive:  archive,
		registry: pdu.DefaultRegistry(),
		config:   config,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleDecode decodes a body of concatenated PDUs.
//
//	POST /api/v1/decode?order=big|little&skip_corrupt=true
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	order, skipCorrupt, err := s.decodeParams(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := s.readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := DecodeResponse{Order: order.String(), PDUs: []DecodedPDU{}}
	logger := s.logger
	scanner := pdu.NewScanner(body, pdu.Options{
		Order:       order,
		Registry:    s.registry,
		SkipCorrupt: skipCorrupt,
		Observer:    &collector{Observer: s.metrics, resp: &resp},
		Logger:      &logger,
	})
	for scanner.Next() {
		p := scanner.PDU()
		resp.PDUs = append(resp.PDUs, describe(p, scanner.Offset(), len(scanner.Raw())))
	}
	resp.Skipped = scanner.Skipped()

	if err := scanner.Err(); err != nil {
		resp.Error = err.Error()
		if len(resp.PDUs) == 0 {
			sendError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}
	sendSuccess(w, resp)
}

// handleArchivePut archives every PDU framed in the body.
//
//	POST /api/v1/archive?order=big|little
func (s *Server) handleArchivePut(w http.ResponseWriter, r *http.Request) {
	if !s.archiveAvailable(w) {
		return
	}
	start := time.Now()

	order, _, err := s.decodeParams(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	body, err := s.readBody(w, r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, splitErr := pdu.SplitRaw(body, order)
	if len(records) == 0 {
		msg := "no PDUs in request body"
		if splitErr != nil {
			msg = splitErr.Error()
		}
		s.metrics.RecordArchiveOperation("put", false, time.Since(start))
		sendError(w, msg, http.StatusBadRequest)
		return
	}

	ids := make([]string, 0, len(records))
	for _, raw := range records {
		id, err := s.archive.Put(raw, order)
		if err != nil {
			s.metrics.RecordArchiveOperation("put", false, time.Since(start))
			sendError(w, fmt.Sprintf("Failed to archive PDU: %v", err), http.StatusInternalServerError)
			return
		}
		ids = append(ids, id.String())
	}
	s.metrics.RecordArchiveOperation("put", true, time.Since(start))

	result := map[string]interface{}{"ids": ids}
	if splitErr != nil {
		result["error"] = splitErr.Error()
	}
	sendJSON(w, http.StatusCreated, result)
}

// handleArchiveGet returns one archived PDU with its decoded fields.
func (s *Server) handleArchiveGet(w http.ResponseWriter, r *http.Request) {
	if !s.archiveAvailable(w) {
		return
	}
	start := time.Now()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	entry, err := s.archive.Get(id)
	if err != nil {
		s.metrics.RecordArchiveOperation("get", false, time.Since(start))
		s.sendArchiveError(w, err)
		return
	}
	s.metrics.RecordArchiveOperation("get", true, time.Since(start))
	sendSuccess(w, s.archiveEntry(entry, true))
}

// handleArchiveList lists archived PDUs of one type.
//
//	GET /api/v1/archive?type=Fire&limit=10
func (s *Server) handleArchiveList(w http.ResponseWriter, r *http.Request) {
	if !s.archiveAvailable(w) {
		return
	}
	start := time.Now()

	typeParam := r.URL.Query().Get("type")
	if typeParam == "" {
		sendError(w, "type query parameter is required", http.StatusBadRequest)
		return
	}
	t, ok := pdu.ParseType(typeParam)
	if !ok {
		sendError(w, fmt.Sprintf("unknown PDU type %q", typeParam), http.StatusBadRequest)
		return
	}

	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			sendError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.archive.List(t, limit)
	if err != nil {
		s.metrics.RecordArchiveOperation("list", false, time.Since(start))
		s.sendArchiveError(w, err)
		return
	}
	s.metrics.RecordArchiveOperation("list", true, time.Since(start))

	out := make([]ArchiveEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.archiveEntry(e, false))
	}
	sendSuccess(w, map[string]interface{}{
		"type":    t.String(),
		"count":   len(out),
		"entries": out,
	})
}

func (s *Server) handleArchiveDelete(w http.ResponseWriter, r *http.Request) {
	if !s.archiveAvailable(w) {
		return
	}
	start := time.Now()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.archive.Delete(id); err != nil {
		s.metrics.RecordArchiveOperation("delete", false, time.Since(start))
		s.sendArchiveError(w, err)
		return
	}
	s.metrics.RecordArchiveOperation("delete", true, time.Since(start))
	sendSuccess(w, map[string]string{"status": "deleted", "id": id.String()})
}

// handleArchiveStats returns per-type record counts.
func (s *Server) handleArchiveStats(w http.ResponseWriter, r *http.Request) {
	if !s.archiveAvailable(w) {
		return
	}
	start := time.Now()

	counts, err := s.archive.Count()
	if err != nil {
		s.metrics.RecordArchiveOperation("count", false, time.Since(start))
		s.sendArchiveError(w, err)
		return
	}
	s.metrics.RecordArchiveOperation("count", true, time.Since(start))
	s.metrics.UpdateArchiveCounts(counts)

	total := 0
	byName := make(map[string]int, len(counts))
	for t, n := range counts {
		byName[t.String()] = n
		total += n
	}
	sendSuccess(w, map[string]interface{}{"total": total, "types": byName})
}

// handleTypes lists the PDU types registered for a protocol version.
//
//	GET /api/v1/types?version=6
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	version := pdu.DefaultVersion
	if v := r.URL.Query().Get("version"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			sendError(w, "version must be a protocol version number", http.StatusBadRequest)
			return
		}
		version = pdu.ProtocolVersion(n)
	}

	types := s.registry.Types(version)
	out := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, TypeInfo{Number: uint8(t), Name: t.String(), Family: t.Family().String()})
	}
	sendSuccess(w, map[string]interface{}{
		"version": version.String(),
		"types":   out,
	})
}

func (s *Server) decodeParams(r *http.Request) (codec.ByteOrder, bool, error) {
	q := r.URL.Query()

	order := s.config.Order
	if v := q.Get("order"); v != "" {
		parsed, err := codec.ParseByteOrder(v)
		if err != nil {
			return order, false, err
		}
		order = parsed
	}

	skipCorrupt := s.config.SkipCorrupt
	if v := q.Get("skip_corrupt"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return order, false, errors.Newf("skip_corrupt: %q is not a boolean", v)
		}
		skipCorrupt = parsed
	}
	return order, skipCorrupt, nil
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.MaxBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read request body")
	}
	if len(body) == 0 {
		return nil, errors.New("request body is empty")
	}
	return body, nil
}

func (s *Server) archiveAvailable(w http.ResponseWriter) bool {
	if s.archive == nil {
		sendError(w, "archive is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) sendArchiveError(w http.ResponseWriter, err error) {
	if errors.Is(err, archive.ErrNotFound) {
		sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	s.logger.Error().Err(err).Msg("archive operation failed")
	sendError(w, fmt.Sprintf("archive error: %v", err), http.StatusInternalServerError)
}

func (s *Server) archiveEntry(e *archive.Entry, withFields bool) ArchiveEntry {
	out := ArchiveEntry{
		ID:      e.ID.String(),
		Time:    e.ID.Time().UTC().Format(time.RFC3339),
		Version: e.Version.String(),
		Type:    e.Type.String(),
		Order:   e.Order.String(),
		Size:    len(e.Raw),
	}
	if !withFields {
		return out
	}
	p, err := pdu.UnmarshalWith(e.Raw, s.registry, e.Order)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	tree := codec.Tree(p.Type().String(), p)
	out.Fields = &tree
	return out
}

func parseID(w http.ResponseWriter, r *http.Request) (ksuid.KSUID, bool) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "invalid archive id", http.StatusBadRequest)
		return ksuid.Nil, false
	}
	return id, true
}

func describe(p pdu.PDU, offset, size int) DecodedPDU {
	h := p.PDUHeader()
	return DecodedPDU{
		Offset:  offset,
		Size:    size,
		Version: h.ProtocolVersion.String(),
		Type:    p.Type().String(),
		Family:  p.Type().Family().String(),
		Hash:    strconv.FormatUint(codec.Hash(p), 16),
		Fields:  codec.Tree(p.Type().String(), p),
	}
}

// collector forwards to the metrics observer and keeps per-request failures.
type collector struct {
	pdu.Observer
	resp *DecodeResponse
}

func (c *collector) Failed(err *pdu.DecodeError) {
	c.Observer.Failed(err)
	c.resp.Failures = append(c.resp.Failures, DecodeFailure{
		Offset: err.Offset,
		Type:   err.Type.String(),
		Error:  err.Err.Error(),
	})
}
