package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSink appends records to a JSON-lines file, one document per line.
type FileSink struct {
	f   *os.File
	enc *json.Encoder
}

// NewFileSink opens path for appending, creating it when absent.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	return &FileSink{f: f, enc: json.NewEncoder(f)}, nil
}

// Append writes one record as a JSON line.
func (s *FileSink) Append(ctx context.Context, r Record) error {
	return s.enc.Encode(r)
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close(ctx context.Context) error { return s.f.Close() }

// Ensure FileSink implements Sink.
var _ Sink = (*FileSink)(nil)
