package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Response is the JSON envelope printed under --format json.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type printer struct {
	format string
	w      io.Writer
	errW   io.Writer
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) printer {
	return printer{format: opts.Format, w: cmd.OutOrStdout(), errW: cmd.ErrOrStderr()}
}

// result prints data as JSON, or the text produced by text.
func (p printer) result(data any, text func(w io.Writer)) error {
	if p.format == "json" {
		return p.encode(Response{Status: "ok", Data: data})
	}
	text(p.w)
	return nil
}

// failure returns err so the command exits non-zero. Under --format json it
// also prints the error envelope to stdout.
func (p printer) failure(err error) error {
	if p.format == "json" {
		if encErr := p.encode(Response{Status: "error", Error: err.Error()}); encErr != nil {
			return encErr
		}
	}
	return err
}

// progress writes a diagnostic line to stderr so JSON output stays clean.
func (p printer) progress(format string, args ...any) {
	fmt.Fprintf(p.errW, format+"\n", args...)
}

func (p printer) encode(r Response) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
