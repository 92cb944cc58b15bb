package shell

import (
	"encoding/json"
	"io"
	"time"
)

// Outcome classifies what the dispatcher did with one input line.
type Outcome string

const (
	OutcomeBuiltin    Outcome = "builtin"
	OutcomeExec       Outcome = "exec"
	OutcomeNotFound   Outcome = "not_found"
	OutcomeParseError Outcome = "parse_error"
)

// Event is one session log record, encoded as a single JSON line.
type Event struct {
	Time    time.Time `json:"time"`
	Line    string    `json:"line"`
	Outcome Outcome   `json:"outcome"`
	// Path is the resolved executable, set only for OutcomeExec.
	Path string `json:"path,omitempty"`
}

// Recorder receives one event per dispatched line.
type Recorder interface {
	Record(Event) error
}

// NopRecorder discards all events.
type NopRecorder struct{}

func (NopRecorder) Record(Event) error { return nil }

// JSONRecorder appends newline-delimited JSON events to a writer.
type JSONRecorder struct {
	enc *json.Encoder
}

func NewJSONRecorder(w io.Writer) *JSONRecorder {
	return &JSONRecorder{enc: json.NewEncoder(w)}
}

func (r *JSONRecorder) Record(ev Event) error {
	return r.enc.Encode(ev)
}

// ReadLog parses a newline-delimited JSON session log, calling handler
// for each event in order.
func ReadLog(r io.Reader, handler func(Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var ev Event
		if err := decoder.Decode(&ev); err != nil {
			return err
		}
		handler(ev)
	}
	return nil
}
