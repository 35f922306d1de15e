package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

// maxLineSize bounds a single NDJSON line.
const maxLineSize = 4 << 20

var ErrMalformedRecord = errors.New("malformed record")

// input is a decoded NDJSON stream. Lines holds the 1-based source line of each record.
type input struct {
	Records []validator.Record
	Lines   []int
}

// readRecords decodes newline-delimited JSON objects. Blank lines are skipped. Numbers are
// kept as json.Number so integers survive unchanged.
func readRecords(r io.Reader) (input, error) {
	var in input
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var rec validator.Record
		if err := dec.Decode(&rec); err != nil {
			return input{}, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, line, err)
		}
		if rec == nil {
			return input{}, fmt.Errorf("%w: line %d: expected a JSON object", ErrMalformedRecord, line)
		}
		if dec.More() {
			return input{}, fmt.Errorf("%w: line %d: trailing data", ErrMalformedRecord, line)
		}
		in.Records = append(in.Records, rec)
		in.Lines = append(in.Lines, line)
	}
	if err := sc.Err(); err != nil {
		return input{}, fmt.Errorf("read records: %w", err)
	}
	return in, nil
}
