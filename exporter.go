package akf

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// Exporter defines an export interface.
type Exporter interface {
	Write(Estimate) error
	Close() error
}

// CSVExporter writes per step estimates to a CSV file.
type CSVExporter struct {
	delimiter string
	hdlr      *os.File
}

// Close closes the file.
func (e CSVExporter) Close() (err error) {
	err = e.WriteRawLn(fmt.Sprintf("# Closing date (UTC): %s\n", time.Now().UTC()))
	if err != nil {
		return
	}
	return e.hdlr.Close()
}

// Write writes the estimate to the CSV file: state, its ±2σ bounds, the
// covariance and the noise variance estimate of the step.
func (e CSVExporter) Write(est Estimate) error {
	bound := 2 * math.Sqrt(est.Covariance())
	vals := []string{
		fmt.Sprintf("%f", est.State()),
		fmt.Sprintf("%f", est.State()+bound),
		fmt.Sprintf("%f", est.State()-bound),
		fmt.Sprintf("%f", est.Covariance()),
		fmt.Sprintf("%f", est.NoiseVariance()),
	}
	_, err := e.hdlr.WriteString(strings.Join(vals, e.delimiter) + "\n")
	return err
}

// WriteRawLn writes a raw line to the CSV file.
func (e CSVExporter) WriteRawLn(s string) error {
	_, err := e.hdlr.WriteString(s + "\n")
	return err
}

// NewCSVExporter initializes a new CSV export.
func NewCSVExporter(filepath, filename string) (e *CSVExporter, err error) {
	f, err := os.Create(fmt.Sprintf("%s/%s", filepath, filename))
	if err != nil {
		return
	}
	delimiter := ","
	hdr := []string{"state", "state+2s", "state-2s", "covar", "noisevar"}
	f.WriteString(fmt.Sprintf("# Creation date (UTC): %s\n%s\n", time.Now(), strings.Join(hdr, delimiter)))
	e = &CSVExporter{delimiter, f}
	return
}
