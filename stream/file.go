package stream

import "os"

// FileSource reads NMEA lines from a file.
type FileSource struct {
	*scannerSource
}

// NewFileSource opens path and returns a Source over its lines.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{scannerSource: newScannerSource(f, f)}, nil
}
