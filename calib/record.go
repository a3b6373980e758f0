package calib

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Record is the persisted form of a calibration: slope a in wavelength per
// channel and intercept b, the wavelength at channel 0.
type Record struct {
	A float64 `json:"a" toml:"a"`
	B float64 `json:"b" toml:"b"`
}

// Format selects the text encoding of a Record.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks TOML for ".toml" files and JSON for everything else.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// wireRecord detects missing fields on decode.
type wireRecord struct {
	A *float64 `json:"a" toml:"a"`
	B *float64 `json:"b" toml:"b"`
}

// Export returns the current coefficients as a Record.
func (m *Model) Export() (Record, error) {
	a, b, ok := m.t.Coefficients()
	if !ok {
		return Record{}, ErrUncalibrated
	}
	return Record{A: a, B: b}, nil
}

// Import replaces the current coefficients with rec. The record is trusted
// as-is; nothing ties it to a particular detector.
func (m *Model) Import(rec Record) {
	m.set(NewTransform(rec.A, rec.B))
}

// Encode writes rec to w in the given format.
func Encode(w io.Writer, rec Record, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("calib: encode json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(rec); err != nil {
			return fmt.Errorf("calib: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Decode reads a Record from r. Both fields must be present.
func Decode(r io.Reader, format Format) (Record, error) {
	var wire wireRecord
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&wire); err != nil {
			return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&wire); err != nil {
			return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}
	default:
		return Record{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	switch {
	case wire.A == nil && wire.B == nil:
		return Record{}, fmt.Errorf("%w: missing fields a and b", ErrInvalidRecord)
	case wire.A == nil:
		return Record{}, fmt.Errorf("%w: missing field a", ErrInvalidRecord)
	case wire.B == nil:
		return Record{}, fmt.Errorf("%w: missing field b", ErrInvalidRecord)
	}
	return Record{A: *wire.A, B: *wire.B}, nil
}

// Save writes the model's coefficients to path, choosing the format from the
// file extension.
func (m *Model) Save(path string) error {
	rec, err := m.Export()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("calib: create %s: %w", path, err)
	}
	if err := Encode(f, rec, FormatForPath(path)); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("calib: close %s: %w", path, err)
	}
	return nil
}

// Load reads coefficients from path and imports them into the model. On
// error the model is unchanged.
func (m *Model) Load(path string) error {
	rec, err := ReadFile(path)
	if err != nil {
		return err
	}
	m.Import(rec)
	return nil
}

// ReadFile decodes the record stored at path.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("calib: open %s: %w", path, err)
	}
	defer f.Close()

	rec, err := Decode(f, FormatForPath(path))
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}
