package series

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

type episodeRecord struct {
	Locations json.RawMessage `json:"locations"`
}

type locationEntry struct {
	Step json.Number `json:"step"`
	X    json.Number `json:"x"`
	Z    json.Number `json:"z"`
}

// Load reads one episode file and returns its normalized series.
func Load(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open episode: %w", err)
	}
	defer file.Close()
	return Decode(file, path)
}

// Decode parses an episode record from r. The path is only used to
// label errors. Shape problems are reported as a *FormatError; the
// caller decides whether a bad source is fatal.
func Decode(r io.Reader, path string) (*Series, error) {
	var record episodeRecord
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&record); err != nil {
		return nil, &FormatError{Path: path, Detail: "invalid JSON", Err: err}
	}
	if len(record.Locations) == 0 {
		return nil, &FormatError{Path: path, Detail: "locations field is missing"}
	}
	// A JSON null round-trips through Unmarshal as a nil slice, so it
	// has to be rejected before the list decode.
	if bytes.Equal(bytes.TrimSpace(record.Locations), []byte("null")) {
		return nil, &FormatError{Path: path, Detail: "locations is not a list"}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(record.Locations, &entries); err != nil {
		return nil, &FormatError{Path: path, Detail: "locations is not a list", Err: err}
	}

	samples := make([]Sample, 0, len(entries))
	for i, raw := range entries {
		var entry locationEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, &FormatError{Path: path, Detail: fmt.Sprintf("locations[%d] is malformed", i), Err: err}
		}
		step, err := coerceStep(entry.Step)
		if err != nil {
			return nil, &FormatError{Path: path, Detail: fmt.Sprintf("locations[%d].step", i), Err: err}
		}
		x, err := coerceFloat(entry.X)
		if err != nil {
			return nil, &FormatError{Path: path, Detail: fmt.Sprintf("locations[%d].x", i), Err: err}
		}
		z, err := coerceFloat(entry.Z)
		if err != nil {
			return nil, &FormatError{Path: path, Detail: fmt.Sprintf("locations[%d].z", i), Err: err}
		}
		samples = append(samples, Sample{Step: step, X: x, Z: z})
	}

	// Stable keeps the original file order among duplicate steps, so a
	// later entry still wins in the step lookup.
	sort.SliceStable(samples, func(a, b int) bool {
		return samples[a].Step < samples[b].Step
	})

	return &Series{Path: path, Samples: samples}, nil
}

func coerceStep(value json.Number) (int, error) {
	if value.String() == "" {
		return 0, fmt.Errorf("value is missing")
	}
	if n, err := value.Int64(); err == nil {
		return int(n), nil
	}
	f, err := value.Float64()
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", value.String())
	}
	return int(f), nil
}

func coerceFloat(value json.Number) (float64, error) {
	if value.String() == "" {
		return 0, fmt.Errorf("value is missing")
	}
	f, err := value.Float64()
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", value.String())
	}
	return f, nil
}
