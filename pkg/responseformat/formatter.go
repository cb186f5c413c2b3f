// Package responseformat writes command results as plain text, JSON or
// MessagePack.
package responseformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Supported formats
const (
	Text    = "text"
	JSON    = "json"
	MsgPack = "msgpack"
)

// ErrUnsupportedFormat is returned for a format other than text, json or msgpack
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formatter handles encoding and writing responses in the selected format
type Formatter struct {
	format string
}

// NewFormatter creates a new response formatter. An empty format selects text.
func NewFormatter(format string) (*Formatter, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "":
		format = Text
	case Text, JSON, MsgPack:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return &Formatter{format: format}, nil
}

// Format returns the selected format name
func (f *Formatter) Format() string {
	return f.format
}

// WriteResponse writes lines one per line for text output, otherwise it
// encodes data
func (f *Formatter) WriteResponse(w io.Writer, lines []string, data any) error {
	switch f.format {
	case JSON:
		return f.writeJSON(w, data)
	case MsgPack:
		return f.writeMsgPack(w, data)
	default:
		return f.writeText(w, lines)
	}
}

func (f *Formatter) writeText(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
