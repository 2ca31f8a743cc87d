package event

import (
	"fmt"
	"time"

	"github.com/pulsekit/jobpulse/id"
)

// Payload field names recognized by FromPayload.
const (
	FieldJob        = "job"
	FieldQueue      = "queue"
	FieldExecutions = "executions"
	FieldEnqueuedAt = "enqueued_at"
	FieldEndedAt    = "ended_at"
	FieldDurationMS = "duration_ms"
	FieldFailure    = "failure"
)

// FromPayload builds a typed JobEvent from a loosely-typed notification
// payload, decoupling the metric mapping from the framework's native
// event representation. Timestamps may arrive as time.Time values or
// RFC 3339 strings; an unparsable timestamp is an error and no event is
// returned. The job and queue fields are required.
func FromPayload(kind Kind, payload map[string]any) (*JobEvent, error) {
	evt := &JobEvent{ID: id.NewEventID(), Kind: kind}

	name, ok := payload[FieldJob].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("event: payload field %q missing or not a string", FieldJob)
	}
	evt.JobName = name

	queue, ok := payload[FieldQueue].(string)
	if !ok || queue == "" {
		return nil, fmt.Errorf("event: payload field %q missing or not a string", FieldQueue)
	}
	evt.Queue = queue

	if v, present := payload[FieldExecutions]; present {
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("event: payload field %q: %w", FieldExecutions, err)
		}
		evt.Executions = n
	}

	if v, present := payload[FieldEnqueuedAt]; present {
		ts, err := toTime(v)
		if err != nil {
			return nil, fmt.Errorf("event: payload field %q: %w", FieldEnqueuedAt, err)
		}
		evt.EnqueuedAt = ts
	}

	if v, present := payload[FieldEndedAt]; present {
		ts, err := toTime(v)
		if err != nil {
			return nil, fmt.Errorf("event: payload field %q: %w", FieldEndedAt, err)
		}
		evt.EndedAt = ts
	}

	if v, present := payload[FieldDurationMS]; present {
		ms, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("event: payload field %q: %w", FieldDurationMS, err)
		}
		evt.Duration = time.Duration(ms * float64(time.Millisecond))
	}

	if v, present := payload[FieldFailure]; present && v != nil {
		descriptor, err := toStrings(v)
		if err != nil {
			return nil, fmt.Errorf("event: payload field %q: %w", FieldFailure, err)
		}
		evt.Failure = descriptor
	}

	return evt, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case time.Duration:
		return float64(n) / float64(time.Millisecond), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", v)
	}
}

func toTime(v any) (time.Time, error) {
	switch ts := v.(type) {
	case time.Time:
		return ts, nil
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return time.Time{}, err
		}
		return parsed, nil
	default:
		return time.Time{}, fmt.Errorf("cannot convert %T to time.Time", v)
	}
}

func toStrings(v any) ([]string, error) {
	switch d := v.(type) {
	case []string:
		return d, nil
	case string:
		return []string{d}, nil
	case error:
		return []string{d.Error()}, nil
	case []any:
		parts := make([]string, 0, len(d))
		for _, item := range d {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("descriptor element %T is not a string", item)
			}
			parts = append(parts, s)
		}
		return parts, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to []string", v)
	}
}
