package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordcheck/pkg/batch"
	"github.com/dmitrymomot/recordcheck/pkg/validator"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type jsonResult struct {
	Record int              `json:"record"`
	Line   int              `json:"line"`
	Errors validator.Report `json:"errors"`
}

// writeFailures prints one entry per invalid result. Text output lists paths in sorted
// order; JSON output writes one object per line.
func writeFailures(w io.Writer, format string, in input, results []batch.Result) error {
	failed := batch.Failed(results)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		for _, res := range failed {
			if err := enc.Encode(jsonResult{Record: res.Index, Line: in.Lines[res.Index], Errors: res.Report}); err != nil {
				return err
			}
		}
	default:
		for _, res := range failed {
			if _, err := fmt.Fprintf(w, "record %d (line %d):\n", res.Index, in.Lines[res.Index]); err != nil {
				return err
			}
			for _, field := range res.Report.Fields() {
				for _, msg := range res.Report[field] {
					if _, err := fmt.Fprintf(w, "  %s: %s\n", field, msg); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
