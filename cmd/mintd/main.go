// main.go - Confidential mint proving service.
//
// Exposes a REST API over the production commitment factory and the mint
// proof constructor:
//   - POST /prove   {values_in, values_out, sender} -> proof transcript
//   - GET  /params  public curve parameters for external verifiers
//   - GET  /health  component health
//   - GET  /metrics service metrics
//
// The trapdoor (fake commitment) factory path is test-only and is not wired
// into any endpoint here.

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"mintproof/internal/curve"
	"mintproof/internal/mint"
	"mintproof/internal/note"
)

const version = "1.0.0"

// Server holds the proving service state
type Server struct {
	cfg     *Config
	logger  *Logger
	metrics *MetricsCollector
	health  *HealthChecker
	limiter *ClientRateLimiter
}

// ProveRequest is the REST request for constructing a mint proof
type ProveRequest struct {
	ValuesIn  []uint64 `json:"values_in"`
	ValuesOut []uint64 `json:"values_out"`
	Sender    string   `json:"sender"`
}

// ProveResponse is the REST response carrying the proof transcript
type ProveResponse struct {
	InputCount int         `json:"m"`
	Data       [][6]string `json:"data"`
	Challenge  string      `json:"challenge"`
}

func main() {
	configPath := flag.String("config", "mintd.json", "path to the service configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("config load failed: %v\n", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid config: %v\n", err)
		return
	}

	auditPath := ""
	if cfg.EnableAudit {
		auditPath = cfg.AuditLogPath
	}
	logger, err := NewLogger(cfg.LogLevel, cfg.LogFile, auditPath)
	if err != nil {
		fmt.Printf("logger setup failed: %v\n", err)
		return
	}
	defer logger.Close()

	srv := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetricsCollector(),
		health:  NewHealthChecker(version),
		limiter: NewClientRateLimiter(cfg.RateLimitTokens, cfg.RateLimitRefill, time.Duration(cfg.RateLimitPeriodSeconds)*time.Second),
	}
	srv.health.RegisterComponent("factory", func() error {
		_, err := note.GenerateCommitmentSet([]uint64{1}, []uint64{1})
		return err
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/prove", srv.handleProve)
	mux.HandleFunc("/params", srv.handleParams)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/metrics", srv.handleMetrics)

	addr := fmt.Sprintf(":%d", cfg.ListenPort)
	logger.Info("mintd %s listening on %s", version, addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error: %v", err)
	}
}

// handleProve generates a production commitment set for the requested values
// and constructs the mint proof transcript
func (s *Server) handleProve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	client := clientAddr(r)
	if !s.limiter.Allow(client) {
		s.metrics.IncrementCounter("prove_rate_limited_total")
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	var req ProveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	total := len(req.ValuesIn) + len(req.ValuesOut)
	if total > s.cfg.MaxBatchSize {
		http.Error(w, fmt.Sprintf("batch of %d notes exceeds limit %d", total, s.cfg.MaxBatchSize), http.StatusBadRequest)
		return
	}
	sender, err := hex.DecodeString(strings.TrimPrefix(req.Sender, "0x"))
	if err != nil || len(sender) == 0 {
		http.Error(w, "invalid sender identifier", http.StatusBadRequest)
		return
	}

	start := time.Now()
	set, err := note.GenerateCommitmentSet(req.ValuesIn, req.ValuesOut)
	if err != nil {
		s.metrics.IncrementCounter("prove_failures_total")
		s.logger.Error("commitment generation failed: %v", err)
		http.Error(w, "commitment generation failed", http.StatusInternalServerError)
		return
	}
	proof, err := mint.ConstructProof(set, sender)
	if err != nil {
		s.metrics.IncrementCounter("prove_failures_total")
		s.logger.Warn("proof construction rejected: %v", err)
		http.Error(w, fmt.Sprintf("proof construction failed: %v", err), http.StatusBadRequest)
		return
	}

	s.metrics.IncrementCounter("prove_requests_total")
	s.metrics.ObserveDuration("prove_duration_seconds", time.Since(start))
	s.logger.Audit("proof_constructed", map[string]interface{}{
		"client": client,
		"notes":  total,
		"m":      set.InputCount,
	})

	writeJSON(w, ProveResponse{
		InputCount: set.InputCount,
		Data:       proof.Data(),
		Challenge:  proof.ChallengeHex(),
	})
}

// handleParams serves the public curve parameters
func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	g := curve.FromAffine(curve.G())
	h := curve.FromAffine(curve.H())
	writeJSON(w, map[string]interface{}{
		"field_modulus": curve.FieldModulus().String(),
		"group_order":   curve.GroupOrder().String(),
		"g":             [2]string{g.X.String(), g.Y.String()},
		"h":             [2]string{h.X.String(), h.Y.String()},
		"k_max":         curve.KMax,
	})
}

// handleHealth serves the component health report
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.health.CheckHealth()
	if health.OverallStatus != Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	writeJSON(w, health)
}

// handleMetrics serves the metrics snapshot
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.metrics.Snapshot())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// clientAddr extracts the client host for rate limiting
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
