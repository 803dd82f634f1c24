package scan

import (
	"sync"
)

// Detection is one decoded barcode event from the underlying reader.
type Detection struct {
	Code   string `json:"code"`
	Format string `json:"format,omitempty"`
}

// DefaultReaders is the fixed symbology set: the EAN/UPC family plus Code 128.
var DefaultReaders = []string{"ean_13", "ean_8", "upc_a", "upc_e", "code_128"}

type DetectorConfig struct {
	Readers   []string
	MinWidth  int
	MinHeight int
	Workers   int
	Frequency int
}

func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Readers:   DefaultReaders,
		MinWidth:  640,
		MinHeight: 480,
		Workers:   4,
		Frequency: 10,
	}
}

// Detector models the external barcode decoding capability: initialize
// against an input stream, drive the start/stop capture lifecycle, and
// subscribe to decoded-code events.
type Detector interface {
	Init(cfg DetectorConfig) error
	Start() error
	Stop() error
	Subscribe(fn func(Detection))
}

// RemoteDetector adapts a device-side decoder that pushes candidate codes
// over the wire onto the Detector interface. Offers arriving while the
// capture is stopped, or for a symbology outside the configured reader set,
// are dropped.
type RemoteDetector struct {
	mu      sync.Mutex
	running bool
	readers map[string]bool
	fn      func(Detection)
}

func NewRemoteDetector() *RemoteDetector {
	return &RemoteDetector{}
}

func (d *RemoteDetector) Init(cfg DetectorConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.readers = make(map[string]bool, len(cfg.Readers))
	for _, r := range cfg.Readers {
		d.readers[r] = true
	}
	return nil
}

func (d *RemoteDetector) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = true
	return nil
}

func (d *RemoteDetector) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.running = false
	return nil
}

func (d *RemoteDetector) Subscribe(fn func(Detection)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fn = fn
}

// Offer feeds one candidate decode from the device.
func (d *RemoteDetector) Offer(det Detection) {
	d.mu.Lock()
	fn := d.fn
	accepted := d.running && det.Code != "" && (det.Format == "" || d.readers[det.Format])
	d.mu.Unlock()

	if accepted && fn != nil {
		fn(det)
	}
}
