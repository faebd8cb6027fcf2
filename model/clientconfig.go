package model

// ClientConfigResponse is the runtime configuration handed to mobile
// clients on startup
type ClientConfigResponse struct {
	ScanTimeoutSeconds int      `json:"scan_timeout_seconds"`
	ScanSymbologies    []string `json:"scan_symbologies"`
}
