package main

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// WebServer holds the HTTP server configuration
type WebServer struct {
	config     *Config
	addr       string
	configFile string
}

// NewWebServer creates a new web server instance. configFile is where
// saved configurations are written.
func NewWebServer(config *Config, addr, configFile string) *WebServer {
	return &WebServer{
		config:     config,
		addr:       addr,
		configFile: configFile,
	}
}

// APISimulateRequest carries the parameters for any simulation endpoint.
// ETFs and Deltas are only read by the endpoints that use them; when empty,
// the server falls back to the loaded configuration.
type APISimulateRequest struct {
	Investment    SimulationParams `json:"investment"`
	TargetCapital float64          `json:"target_capital,omitempty"`
	Deltas        []float64        `json:"deltas,omitempty"`
	ETFs          []ETFConfig      `json:"etfs,omitempty"`
}

// APISimulateResponse is the common response envelope
type APISimulateResponse struct {
	Success       bool               `json:"success"`
	Error         string             `json:"error,omitempty"`
	Trajectory    Trajectory         `json:"trajectory,omitempty"`
	TotalInvested float64            `json:"total_invested,omitempty"`
	FinalCapital  float64            `json:"final_capital,omitempty"`
	Gain          float64            `json:"gain,omitempty"`
	TotalReturn   float64            `json:"total_return,omitempty"`
	Goal          *GoalResult        `json:"goal,omitempty"`
	Scenarios     []ScenarioResult   `json:"scenarios,omitempty"`
	Comparison    []ComparisonResult `json:"comparison,omitempty"`
}

// Start starts the web server and opens the UI in a browser
func (ws *WebServer) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleConfig)
	mux.HandleFunc("/api/simulate", ws.handleSimulate)
	mux.HandleFunc("/api/goal", ws.handleGoal)
	mux.HandleFunc("/api/sensitivity", ws.handleSensitivity)
	mux.HandleFunc("/api/compare", ws.handleCompare)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)

	// Listen on the address (use :0 for auto-assign)
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return err
	}

	// Get the actual address (with assigned port)
	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}

	log.Printf("Starting web server on %s", actualAddr)
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	return http.Serve(listener, mux)
}

// sendJSONError writes a failure envelope
func sendJSONError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{Success: false, Error: message})
}

// decodeRequest decodes and validates a simulation request. A nil return
// means the error response has already been written.
func (ws *WebServer) decodeRequest(w http.ResponseWriter, r *http.Request) *APISimulateRequest {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil
	}

	var req APISimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return nil
	}

	if err := ValidateParams(req.Investment); err != nil {
		sendJSONError(w, err.Error())
		return nil
	}

	return &req
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleConfig returns the current configuration on GET and saves a new
// one on POST (validated, then written to the config file).
func (ws *WebServer) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		ws.handleSaveConfig(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if ws.config == nil {
		defaultConfig, err := LoadDefaultConfig()
		if err != nil {
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(defaultConfig)
		return
	}

	json.NewEncoder(w).Encode(ws.config)
}

// handleSaveConfig replaces the server's configuration and persists it
func (ws *WebServer) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var config Config
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		sendJSONError(w, "Invalid request body: "+err.Error())
		return
	}

	if err := config.Validate(); err != nil {
		sendJSONError(w, err.Error())
		return
	}

	ws.config = &config
	if ws.configFile != "" {
		if err := SaveConfig(&config, ws.configFile); err != nil {
			sendJSONError(w, "Saving config failed: "+err.Error())
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{Success: true})
}

// handleSimulate runs the main projection
func (ws *WebServer) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req := ws.decodeRequest(w, r)
	if req == nil {
		return
	}

	params := req.Investment
	trajectory := Simulate(params)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{
		Success:       true,
		Trajectory:    trajectory,
		TotalInvested: params.TotalInvested(),
		FinalCapital:  trajectory.FinalCapital(),
		Gain:          trajectory.Gain(params),
		TotalReturn:   trajectory.TotalReturnPct(params),
	})
}

// handleGoal runs the time-to-goal search
func (ws *WebServer) handleGoal(w http.ResponseWriter, r *http.Request) {
	req := ws.decodeRequest(w, r)
	if req == nil {
		return
	}

	if req.TargetCapital < 0 {
		sendJSONError(w, fmt.Sprintf("%v: target_capital must be >= 0", ErrInvalidParameter))
		return
	}

	goal := MonthsToGoal(req.Investment, req.TargetCapital)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{
		Success: true,
		Goal:    &goal,
	})
}

// handleSensitivity runs the return-rate scenarios
func (ws *WebServer) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	req := ws.decodeRequest(w, r)
	if req == nil {
		return
	}

	deltas := req.Deltas
	if len(deltas) == 0 {
		deltas = DefaultSensitivityDeltas
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{
		Success:   true,
		Scenarios: Sensitivity(req.Investment, deltas),
	})
}

// handleCompare runs the ETF comparison
func (ws *WebServer) handleCompare(w http.ResponseWriter, r *http.Request) {
	req := ws.decodeRequest(w, r)
	if req == nil {
		return
	}

	etfs := req.ETFs
	if len(etfs) == 0 && ws.config != nil {
		etfs = ws.config.ETFs
	}
	for _, etf := range etfs {
		if etf.AnnualReturn < 0 || etf.AnnualDividend < 0 {
			sendJSONError(w, fmt.Sprintf("%v: etf %q rates must be >= 0", ErrInvalidParameter, etf.Name))
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APISimulateResponse{
		Success:    true,
		Comparison: CompareETFs(req.Investment, etfs),
	})
}

// handleExportCSV streams a CSV download: the monthly projection by
// default, or the comparison finals with ?type=comparison
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	req := ws.decodeRequest(w, r)
	if req == nil {
		return
	}

	w.Header().Set("Content-Type", "text/csv")

	if r.URL.Query().Get("type") == "comparison" {
		etfs := req.ETFs
		if len(etfs) == 0 && ws.config != nil {
			etfs = ws.config.ETFs
		}
		w.Header().Set("Content-Disposition", `attachment; filename="etf_comparison.csv"`)
		if err := WriteComparisonCSV(w, CompareETFs(req.Investment, etfs)); err != nil {
			log.Printf("CSV export error: %v", err)
		}
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="etf_projection.csv"`)
	if err := WriteTrajectoryCSV(w, Simulate(req.Investment)); err != nil {
		log.Printf("CSV export error: %v", err)
	}
}
