// Package server implements the beliefnetd HTTP service.
//
// The service exposes stored Bayesian networks over a small JSON API:
// networks are uploaded in document form, persisted by name, and
// queried per node with optional evidence supplied in the request. Each
// query rebuilds an engine instance from the stored document, so no
// network state is ever shared between requests.
//
// # Endpoints
//
//	GET    /healthz                  liveness probe
//	GET    /metrics                  Prometheus metrics
//	GET    /networks                 list stored network names
//	PUT    /networks/{name}          validate and store a network document
//	GET    /networks/{name}          fetch a stored document (ETag aware)
//	DELETE /networks/{name}          remove a stored document
//	GET    /networks/{name}/graph.dot  Graphviz DOT of the structure
//	POST   /networks/{name}/query    run an inference query
//
// A query request names the node to infer and may clamp evidence:
//
//	{"node": "grass_wet", "evidence": [{"node": "rain", "state": "T"}]}
//
// The response is either the clamped state (for an observed node) or
// the posterior distribution with its state labels.
//
// # Caching
//
// Loads go through a read-through byte cache in front of the store, so
// repeated queries against the same network skip the database. The
// cache entry is invalidated on PUT and DELETE.
package server
