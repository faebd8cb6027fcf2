package transport

import (
	"net/http"

	"github.com/storescout/storescout/model"
	"github.com/storescout/storescout/scanner"
)

// ClientConfig handler
// @Summary Scan settings for mobile clients
// @Description Decode timeout and accepted symbologies for the barcode scanner
// @Tags Config
// @Produce json
// @Success 200 {object} model.ClientConfigResponse
// @Router /config [get]
func (s *RestHandler) ClientConfig(w http.ResponseWriter, r *http.Request) {
	timeout := s.ScanTimeout
	if timeout <= 0 {
		timeout = scanner.DefaultTimeout
	}

	writeSuccess(w, model.ClientConfigResponse{
		ScanTimeoutSeconds: int(timeout.Seconds()),
		ScanSymbologies:    scanner.DefaultSymbologies(),
	})
}
