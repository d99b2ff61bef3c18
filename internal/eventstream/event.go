package eventstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// EventJSONPrefix marks a log line as a structured application event. This is
// the wire convention contracts use to distinguish events from ordinary
// diagnostic output.
const EventJSONPrefix = "EVENT_JSON:"

var (
	// ErrNotAnEvent classifies log lines without the event envelope prefix.
	// These are ordinary contract logs, expected and skipped silently.
	ErrNotAnEvent = errors.New("log line is not an event")

	// ErrInvalidEventFormat classifies envelope payloads that fail
	// structural parsing. The offending log is skipped and reported.
	ErrInvalidEventFormat = errors.New("invalid event format")
)

// MissingFieldError reports an envelope payload that parsed structurally but
// lacks one of the required event fields. Field names the first missing field
// in the fixed check order: standard, version, event, data.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required event field %q", e.Field)
}

// requiredEventFields is the deterministic presence-check order.
var requiredEventFields = [...]string{"standard", "version", "event", "data"}

// EventLog is a parsed application event. Data is kept as the raw JSON value
// the contract emitted: its schema depends on Standard and Event and is not
// interpreted here.
type EventLog struct {
	Standard string          `json:"standard"` // event-schema family, e.g. "nep171"
	Version  string          `json:"version"`  // schema version, e.g. "1.0.0"
	Event    string          `json:"event"`    // event name within the schema, e.g. "nft_mint"
	Data     json.RawMessage `json:"data"`     // opaque event payload
}

// ProcessLog interprets one raw log line as a structured event. It is a total
// function over strings and never panics:
//
//   - lines without the EVENT_JSON: prefix yield ErrNotAnEvent,
//   - payloads that are not a JSON object yield ErrInvalidEventFormat,
//   - payloads missing a required field yield a *MissingFieldError for the
//     first absent field,
//   - payloads whose standard, version, or event is not a JSON string yield
//     ErrInvalidEventFormat.
func ProcessLog(rawLog string) (EventLog, error) {
	payload, ok := strings.CutPrefix(rawLog, EventJSONPrefix)
	if !ok {
		return EventLog{}, ErrNotAnEvent
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &fields); err != nil {
		return EventLog{}, fmt.Errorf("%w: %v", ErrInvalidEventFormat, err)
	}
	if fields == nil {
		return EventLog{}, fmt.Errorf("%w: payload is not a JSON object", ErrInvalidEventFormat)
	}

	for _, name := range requiredEventFields {
		if _, ok := fields[name]; !ok {
			return EventLog{}, &MissingFieldError{Field: name}
		}
	}

	var event EventLog
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return EventLog{}, fmt.Errorf("%w: %v", ErrInvalidEventFormat, err)
	}

	return event, nil
}
