package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/datasets/internal/logging"
)

// Separator is the field delimiter of every dataset file.
const Separator = ';'

// Unbounded requests every data row.
const Unbounded = -1

// ContextCheckInterval is how often (in rows) to check for context cancellation.
// Values below 1 disable the periodic check.
var ContextCheckInterval = 100

// maxPrealloc caps the per-column capacity reserved up front for bounded loads.
const maxPrealloc = 1 << 16

// LoadAll reads every row of the file at path.
func LoadAll(ctx context.Context, path string, schema Schema) (*Table, error) {
	return Load(ctx, path, schema, Unbounded)
}

// LoadFirst reads at most the first n data rows of the file at path.
func LoadFirst(ctx context.Context, path string, schema Schema, n int) (*Table, error) {
	if n < 0 {
		return nil, &LoadError{Op: "load", Path: path, Kind: ErrInvalidLimit, Err: fmt.Errorf("n=%d", n)}
	}
	return Load(ctx, path, schema, n)
}

// Load reads a semicolon-delimited file into a Table typed by schema.
//
// limit is the maximum number of data rows, or Unbounded. The file handle is
// released before Load returns on every path.
func Load(ctx context.Context, path string, schema Schema, limit int) (*Table, error) {
	if limit < 0 && limit != Unbounded {
		return nil, &LoadError{Op: "load", Path: path, Kind: ErrInvalidLimit, Err: fmt.Errorf("limit=%d", limit)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Kind: ErrAccess, Err: err}
	}
	defer f.Close()

	return load(ctx, f, path, schema, limit)
}

// LoadReader is Load for an already-open source. name is used in errors and logs.
func LoadReader(ctx context.Context, r io.Reader, name string, schema Schema, limit int) (*Table, error) {
	if limit < 0 && limit != Unbounded {
		return nil, &LoadError{Op: "load", Path: name, Kind: ErrInvalidLimit, Err: fmt.Errorf("limit=%d", limit)}
	}
	return load(ctx, r, name, schema, limit)
}

func load(ctx context.Context, r io.Reader, name string, schema Schema, limit int) (*Table, error) {
	start := time.Now()
	logger := logging.WithFields(ctx,
		"load_id", uuid.NewString(),
		"path", name,
		"schema", schema.Name,
	)
	logger.Debug("load started", "limit", limit)

	counter := &countingReader{reader: r}
	tbl, err := decode(ctx, counter, name, schema, limit)
	if err != nil {
		logger.Warn("load failed", "error", err, "bytes", counter.BytesRead)
		return nil, err
	}

	missing := 0
	for _, c := range tbl.Columns {
		missing += c.Missing()
	}
	logger.Debug("load complete",
		"rows", tbl.Len(),
		"columns", len(tbl.Columns),
		"missing", missing,
		"bytes", counter.BytesRead,
		"duration", time.Since(start),
	)
	return tbl, nil
}

// decode parses the header and up to limit records, coercing each cell as it
// is read so only one record is held in raw form at a time.
func decode(ctx context.Context, r io.Reader, name string, schema Schema, limit int) (*Table, error) {
	br, err := newBOMSkippingReader(r)
	if err != nil {
		return nil, &LoadError{Op: "read", Path: name, Kind: ErrAccess, Err: err}
	}

	cr := csv.NewReader(br)
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Op: "parse", Path: name, Line: 1, Kind: ErrMalformed, Err: errors.New("no header row")}
	}
	if err != nil {
		return nil, readError(name, err)
	}

	names := headerNames(header)
	hint := 0
	if limit > 0 {
		hint = min(limit, maxPrealloc)
	}
	cols := make([]*Column, len(names))
	for i, n := range names {
		typ := FieldRaw
		if spec, ok := schema.Lookup(n); ok {
			typ = spec.Type
		}
		cols[i] = newColumn(n, typ, hint)
	}

	rows := 0
	for limit == Unbounded || rows < limit {
		if ContextCheckInterval > 0 && rows%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, &LoadError{Op: "read", Path: name, Kind: err}
			}
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(name, err)
		}

		if len(rec) > len(cols) {
			line, _ := cr.FieldPos(0)
			return nil, &LoadError{
				Op:   "parse",
				Path: name,
				Line: line,
				Kind: ErrMalformed,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(cols), len(rec)),
			}
		}

		for i, c := range cols {
			if i < len(rec) {
				c.appendCell(sanitizeCell(rec[i]), true)
			} else {
				c.appendCell("", false)
			}
		}
		rows++
	}

	return &Table{Columns: cols, rows: rows}, nil
}

// readError classifies a csv.Reader failure.
// Parse errors are structural; anything else came from the underlying read.
func readError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &LoadError{Op: "parse", Path: name, Line: pe.Line, Kind: ErrMalformed, Err: pe.Err}
	}
	return &LoadError{Op: "read", Path: name, Kind: ErrAccess, Err: err}
}

// headerNames copies the header record, naming blank columns "Unnamed: <i>"
// and suffixing repeated names with ".1", ".2", ... so every name is unique.
func headerNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		h = sanitizeCell(h)
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		if n := seen[h]; n > 0 {
			for {
				name = h + "." + strconv.Itoa(n)
				if seen[name] == 0 {
					break
				}
				n++
			}
		}
		seen[h]++
		if name != h {
			seen[name]++
		}
		names[i] = name
	}
	return names
}
