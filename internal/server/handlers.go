package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/probelab/beliefnet/pkg/bayes"
	"github.com/probelab/beliefnet/pkg/cache"
	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/netio"
	"github.com/probelab/beliefnet/pkg/observability"
	"github.com/probelab/beliefnet/pkg/render"
)

// networkKeyType labels cache events for network documents.
const networkKeyType = "network"

// putResponse summarizes a stored network.
type putResponse struct {
	Name     string `json:"name"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`
	Complete bool   `json:"complete"`
}

// queryRequest is the body of POST /networks/{name}/query.
type queryRequest struct {
	Node     string           `json:"node"`
	Evidence []bayes.Evidence `json:"evidence,omitempty"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	names, err := s.store.List(r.Context())
	observability.Store().OnStoreOp(r.Context(), "list", "", time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"networks": names})
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := errors.ValidateNetworkName(name); err != nil {
		writeError(w, err)
		return
	}

	var doc netio.Network
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode network document"))
		return
	}
	doc.Name = name

	// Rebuilding proves the document satisfies the engine's invariants
	// before anything is persisted.
	net, err := netio.ToNetwork(doc)
	if err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	err = s.store.Save(r.Context(), doc)
	observability.Store().OnStoreOp(r.Context(), "save", name, time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = s.cache.Delete(r.Context(), cache.NetworkKey(name))

	writeJSON(w, http.StatusCreated, putResponse{
		Name:     name,
		Nodes:    len(net.Nodes()),
		Edges:    len(net.Edges()),
		Complete: net.Complete(),
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data, err := s.loadDocumentBytes(r, name)
	if err != nil {
		writeError(w, err)
		return
	}

	etag := `"` + cache.Hash(data) + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	start := time.Now()
	err := s.store.Delete(r.Context(), name)
	observability.Store().OnStoreOp(r.Context(), "delete", name, time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	_ = s.cache.Delete(r.Context(), cache.NetworkKey(name))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDot(w http.ResponseWriter, r *http.Request) {
	net, err := s.loadNetwork(r, chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(render.ToDOT(net, render.Options{Detailed: true})))
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode query request"))
		return
	}
	if req.Node == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "query must name a node"))
		return
	}

	net, err := s.loadNetwork(r, name)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(req.Evidence) > 0 {
		if err := net.SetEvidence(req.Evidence); err != nil {
			writeError(w, err)
			return
		}
	}

	id := uuid.NewString()
	observability.Query().OnQueryStart(r.Context(), id, name, req.Node)
	start := time.Now()
	res, err := net.Inference(req.Node)
	observability.Query().OnQueryComplete(r.Context(), id, name, req.Node, res.Observed(), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// loadDocumentBytes returns the serialized document for a network,
// reading through the cache in front of the store.
func (s *Server) loadDocumentBytes(r *http.Request, name string) ([]byte, error) {
	ctx := r.Context()
	key := cache.NetworkKey(name)

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, networkKeyType)
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, networkKeyType)

	start := time.Now()
	doc, err := s.store.Load(ctx, name)
	observability.Store().OnStoreOp(ctx, "load", name, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode network %q", name)
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.Cache.TTL.Duration); err == nil {
		observability.Cache().OnCacheSet(ctx, networkKeyType, len(data))
	}
	return data, nil
}

// loadNetwork loads a document and rebuilds the engine network from it.
func (s *Server) loadNetwork(r *http.Request, name string) (*bayes.Network, error) {
	data, err := s.loadDocumentBytes(r, name)
	if err != nil {
		return nil, err
	}
	doc, err := netio.UnmarshalNetwork(data)
	if err != nil {
		return nil, err
	}
	return netio.ToNetwork(doc)
}
