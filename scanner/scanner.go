// Package scanner drives one barcode-scan attempt: camera lifecycle,
// torch state, a decode timeout with an explicit retry prompt, and the
// product lookup triggered by a successful decode. The camera is an
// injected capability rather than a device binding, so the session is
// testable with a fake driver.
package scanner

import (
	"context"
	"time"

	"github.com/storescout/storescout/model"
)

// Status is the observable state of a scan session
type Status int

const (
	StatusIdle Status = iota
	StatusScanning
	StatusFound
	StatusNotFound
	StatusUnsupported
	StatusError
)

var statusLabel = map[Status]string{
	StatusIdle:        "idle",
	StatusScanning:    "scanning",
	StatusFound:       "found",
	StatusNotFound:    "not_found",
	StatusUnsupported: "unsupported",
	StatusError:       "error",
}

func (s Status) String() string {
	return statusLabel[s]
}

// DefaultTimeout is how long a session waits for a decode before
// surfacing the retry prompt
const DefaultTimeout = 20 * time.Second

// Camera is the imperative surface of the device camera. Decode events
// are delivered back to the session by the integration calling
// HandleDecode for each frame the driver manages to decode.
type Camera interface {
	Activate()
	Deactivate()
	SetTorch(on bool)
	SetFacing(front bool)
}

// Lookup resolves a decoded barcode to a product. A nil product with a
// nil error means the barcode is not in the catalog.
type Lookup interface {
	LookupByBarcode(ctx context.Context, barcode string) (*model.ProductEntity, error)
}

// Navigator is invoked on terminal transitions
type Navigator interface {
	GoToProduct(product *model.ProductEntity)
}

// Config tunes a session. Zero values fall back to DefaultTimeout and
// the default symbology set.
type Config struct {
	Timeout     time.Duration
	Symbologies []string
}

var defaultSymbologies = []string{"ean13", "ean8", "upc_a", "upc_e", "code128"}

// DefaultSymbologies returns the symbology set used when Config leaves
// Symbologies empty.
func DefaultSymbologies() []string {
	out := make([]string, len(defaultSymbologies))
	copy(out, defaultSymbologies)
	return out
}
