package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/income-tax/internal/assessment"
	"github.com/iwvelando/income-tax/internal/config"
	"github.com/iwvelando/income-tax/internal/optimizer"
	"github.com/iwvelando/income-tax/pkg/constants"
	"github.com/iwvelando/income-tax/pkg/optimization"
	"github.com/iwvelando/income-tax/pkg/output"
	"github.com/iwvelando/income-tax/pkg/tax"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

type assessOptions struct {
	BreakEven bool
}

// NewHandler constructs the HTTP handler that serves the web UI and tax API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Single profile computation (JSON)
	mux.HandleFunc("/api/tax/compute", h.handleCompute)

	// Whole configuration assessment (file upload)
	mux.HandleFunc("/api/tax/assess", h.handleAssess)

	// Config serialization endpoint for downloads
	mux.HandleFunc("/api/config/export", h.handleConfigExport)

	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return withCorrelationID(logger, mux)
}

type computeResponse struct {
	tax.RegimeComparison
	Selected    tax.TaxComputationResult `json:"selected"`
	Recommended tax.Regime               `json:"recommended"`
	Savings     decimal.Decimal          `json:"savings"`
	BreakEven   *optimization.Summary    `json:"breakEven,omitempty"`
}

type assessResponse struct {
	Profiles    []string               `json:"profiles"`
	Assessments []output.Report        `json:"assessments"`
	CSV         string                 `json:"csv"`
	Warnings    []string               `json:"warnings,omitempty"`
	Duration    string                 `json:"duration"`
	Config      map[string]interface{} `json:"config,omitempty"`
	ConfigYAML  string                 `json:"configYaml,omitempty"`
}

func (h *handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompute"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var profile tax.TaxProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), op)
		return
	}
	if profile.SelectedRegime == "" {
		profile.SelectedRegime = tax.RegimeNew
	}
	if err := profile.Validate(); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	comparison := tax.Compute(profile)
	response := computeResponse{
		RegimeComparison: comparison,
		Selected:         comparison.Selected(),
		Recommended:      comparison.Recommended(),
		Savings:          comparison.Savings(),
	}
	if coerceBool(r.URL.Query().Get("breakEven")) {
		summary := optimizer.BreakEven("", profile)
		response.BreakEven = &summary
	}

	h.logger.Info("profile computed",
		zap.String("op", op),
		zap.String("correlationId", CorrelationIDFromContext(r.Context())),
		zap.String("regime", response.Selected.Regime.String()),
		zap.String("totalTaxPayable", response.Selected.TotalTaxPayable.String()),
		zap.String("recommended", response.Recommended.String()),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAssess"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
		return
	}

	configBytes := buf.Bytes()
	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	opts := assessOptions{BreakEven: coerceBool(r.FormValue("breakEven"))}
	h.runAssessment(w, r, configBytes, configMap, start, opts)
}

func (h *handler) runAssessment(w http.ResponseWriter, r *http.Request, configBytes []byte, configMap map[string]interface{}, start time.Time, opts assessOptions) {
	const op = "server.runAssessment"

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	if err := cfg.Validate(); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid configuration: %v", err), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	results, err := assessment.GetAssessments(h.logger, *cfg)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute assessments: %v", err), op)
		return
	}

	if opts.BreakEven {
		runner, err := optimizer.NewRunner(h.logger, cfg)
		if err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to initialize break-even search: %v", err), op)
			return
		}
		breakEven, err := runner.Run()
		if err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("break-even search failed: %v", err), op)
			return
		}
		breakEven.Apply(results)
	}

	elapsed := time.Since(start)

	response := assessResponse{
		Profiles: lo.Map(results, func(a assessment.Assessment, _ int) string {
			return a.Name
		}),
		Assessments: output.Reports(results),
		CSV:         output.CsvString(results),
		Warnings:    warnings,
		Duration:    elapsed.String(),
		Config:      configMap,
		ConfigYAML:  string(configBytes),
	}

	h.logger.Info("assessment computed",
		zap.String("op", op),
		zap.String("correlationId", CorrelationIDFromContext(r.Context())),
		zap.Int("profiles", len(response.Profiles)),
		zap.Int("warnings", len(warnings)),
		zap.Bool("breakEven", opts.BreakEven),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// leadingConfigKeys are emitted first, in this order; the rest follow sorted.
var leadingConfigKeys = []string{"logging", "output"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	for _, key := range leadingConfigKeys {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
		}
	}

	remainingKeys := lo.Filter(lo.Keys(payload), func(key string, _ int) bool {
		return !lo.Contains(leadingConfigKeys, key)
	})
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	return yaml.Marshal(orderedConfig{items: items})
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("tax request failed",
		zap.String("op", op),
		zap.String("correlationId", CorrelationIDFromContext(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func coerceBool(value string) bool {
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && parsed
}
