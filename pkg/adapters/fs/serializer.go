package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/fitbook/pkg/core"
)

// Serializer defines how to read and write a specific file format.
type Serializer interface {
	// Decode reads a whole address book from r.
	Decode(r io.Reader) (*core.AddressBook, error)
	// Encode converts the address book to bytes.
	Encode(ab *core.AddressBook) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file
// extension.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": JSONSerializer{},
		".yaml": YAMLSerializer{},
		".yml":  YAMLSerializer{},
		".csv":  CSVSerializer{},
	}
}

// SerializerFor picks the serializer for format, or for the extension of
// path when format is empty.
func SerializerFor(path, format string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format != "" {
		ext = "." + strings.TrimPrefix(strings.ToLower(format), ".")
	}
	s, ok := DefaultSerializers()[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported data file format %q", ext)
	}
	return s, nil
}

// --- JSON Serializer ---

type JSONSerializer struct{}

func (JSONSerializer) Decode(r io.Reader) (*core.AddressBook, error) {
	var rec bookRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrDataFormat, err)
	}
	return rec.toAddressBook()
}

func (JSONSerializer) Encode(ab *core.AddressBook) ([]byte, error) {
	return json.MarshalIndent(newBookRecord(ab), "", "  ")
}

// --- YAML Serializer ---

type YAMLSerializer struct{}

func (YAMLSerializer) Decode(r io.Reader) (*core.AddressBook, error) {
	var rec bookRecord
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rec); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: invalid yaml: %v", ErrDataFormat, err)
	}
	return rec.toAddressBook()
}

func (YAMLSerializer) Encode(ab *core.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newBookRecord(ab)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- CSV Serializer ---

// CSVSerializer stores one client per row. Multi-valued fields are packed
// into a single cell: tags as "a;b", weights as "DATE=VALUE;..." and
// exercises as "NAME:SETS:REPS:BREAK;...".
type CSVSerializer struct{}

var csvHeader = []string{"name", "phone", "email", "address", "height", "note", "tags", "weights", "exercises"}

func (CSVSerializer) Decode(r io.Reader) (*core.AddressBook, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid csv: %v", ErrDataFormat, err)
	}
	if len(rows) == 0 {
		return core.NewAddressBook()
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "phone"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: csv header lacks %q column", ErrDataFormat, required)
		}
	}

	var rec bookRecord
	for n, row := range rows[1:] {
		cell := func(name string) string {
			if i, ok := cols[name]; ok && i < len(row) {
				return row[i]
			}
			return ""
		}
		p, err := decodeCSVRow(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataFormat, n+2, err)
		}
		rec.Persons = append(rec.Persons, p)
	}
	return rec.toAddressBook()
}

func decodeCSVRow(cell func(string) string) (personRecord, error) {
	p := personRecord{
		Name:    cell("name"),
		Phone:   cell("phone"),
		Email:   cell("email"),
		Address: cell("address"),
		Note:    cell("note"),
	}
	if h := cell("height"); h != "" {
		v, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return p, fmt.Errorf("height %q: %w", h, err)
		}
		p.Height = v
	}
	p.Tags = splitList(cell("tags"))

	for _, item := range splitList(cell("weights")) {
		date, value, ok := strings.Cut(item, "=")
		if !ok {
			return p, fmt.Errorf("weight %q: expected DATE=VALUE", item)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return p, fmt.Errorf("weight %q: %w", item, err)
		}
		if p.Weights == nil {
			p.Weights = make(map[string]float64)
		}
		p.Weights[date] = v
	}

	for _, item := range splitList(cell("exercises")) {
		parts := strings.Split(item, ":")
		if len(parts) != 4 {
			return p, fmt.Errorf("exercise %q: expected NAME:SETS:REPS:BREAK", item)
		}
		nums := make([]int, 3)
		for i, s := range parts[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return p, fmt.Errorf("exercise %q: %w", item, err)
			}
			nums[i] = n
		}
		p.Exercises = append(p.Exercises, exerciseRecord{Name: parts[0], Sets: nums[0], Reps: nums[1], Break: nums[2]})
	}
	return p, nil
}

func (CSVSerializer) Encode(ab *core.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, p := range newBookRecord(ab).Persons {
		height := ""
		if p.Height != 0 {
			height = strconv.FormatFloat(p.Height, 'f', -1, 64)
		}

		dates := make([]string, 0, len(p.Weights))
		for d := range p.Weights {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		weights := make([]string, 0, len(dates))
		for _, d := range dates {
			weights = append(weights, d+"="+strconv.FormatFloat(p.Weights[d], 'f', -1, 64))
		}

		exercises := make([]string, 0, len(p.Exercises))
		for _, e := range p.Exercises {
			exercises = append(exercises, fmt.Sprintf("%s:%d:%d:%d", e.Name, e.Sets, e.Reps, e.Break))
		}

		row := []string{
			p.Name, p.Phone, p.Email, p.Address, height, p.Note,
			strings.Join(p.Tags, ";"), strings.Join(weights, ";"), strings.Join(exercises, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
