package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/logging"
)

// maxTreeDepth bounds tree serialization.
const maxTreeDepth = 500

// ContextNode is the JSON form of a Context in the debug tree.
type ContextNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Children []ContextNode `json:"children,omitempty"`
}

// Tree serializes the Context tree below cx.
func Tree(cx *core.Context) ContextNode {
	return serializeTree(cx, 0)
}

func serializeTree(cx *core.Context, depth int) ContextNode {
	node := ContextNode{
		ID:     cx.ID().String(),
		Name:   cx.Name(),
		Status: cx.Status().String(),
	}
	if depth >= maxTreeDepth {
		return node
	}
	for _, s := range cx.Scopes() {
		for _, child := range s.Children() {
			node.Children = append(node.Children, serializeTree(child, depth+1))
		}
	}
	return node
}

type debugServer struct {
	server   *http.Server
	listener net.Listener
}

// startDebugServer binds addr and serves the engine's diagnostics.
func startDebugServer(e *Engine, addr string) (*debugServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debug server listen: %w", err)
	}

	srv := &debugServer{
		server:   &http.Server{Handler: debugMux(e), ReadHeaderTimeout: 5 * time.Second},
		listener: listener,
	}
	go func() {
		if err := srv.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Logger().Error("debug server failed", "error", err)
		}
	}()
	logging.Logger().Info("debug server listening", "addr", listener.Addr().String())
	return srv, nil
}

func (s *debugServer) addr() string {
	return s.listener.Addr().String()
}

func (s *debugServer) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
}

func debugMux(e *Engine) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /tree", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				http.Error(w, fmt.Sprintf("panic: %v", rec), http.StatusInternalServerError)
			}
		}()
		writeJSON(w, Tree(e.root))
	})
	mux.HandleFunc("GET /frame", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, e.LastFrame())
	})
	mux.HandleFunc("GET /frames", func(w http.ResponseWriter, r *http.Request) {
		samples := e.stats.Timings().Samples()
		ms := make([]float64, len(samples))
		for i, d := range samples {
			ms[i] = float64(d.Microseconds()) / 1000
		}
		writeJSON(w, struct {
			Count     uint64    `json:"count"`
			AverageMs float64   `json:"averageMs"`
			SamplesMs []float64 `json:"samplesMs"`
		}{
			Count:     e.frames.Load(),
			AverageMs: float64(e.stats.Timings().Average().Microseconds()) / 1000,
			SamplesMs: ms,
		})
	})
	if g, ok := e.opts.registry.(prometheus.Gatherer); ok {
		mux.Handle("GET /metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
