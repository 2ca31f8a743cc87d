package jobpulse

import (
	"strconv"
	"strings"

	"github.com/pulsekit/jobpulse/event"
)

// Label names used by all jobpulse metric series.
const (
	LabelJob        = "activejob"
	LabelQueue      = "queue"
	LabelExecutions = "executions"
	LabelFailure    = "failure_reason"
)

// Labels is the dimensional tag set attached to a metric observation.
type Labels map[string]string

// baseLabels derives the label set shared by every series from a job
// event. The execution attempt count is stringified so both lifecycle
// paths label consistently.
func baseLabels(evt *event.JobEvent) Labels {
	return Labels{
		LabelJob:        evt.JobName,
		LabelQueue:      evt.Queue,
		LabelExecutions: strconv.Itoa(evt.Executions),
	}
}

// MergeDefaults returns a copy of l with entries from defaults added
// for keys not already present. Existing keys win.
func (l Labels) MergeDefaults(defaults Labels) Labels {
	merged := make(Labels, len(l)+len(defaults))
	for k, v := range l {
		merged[k] = v
	}
	for k, v := range defaults {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return merged
}

// withFailure returns a copy of l with the failure_reason label set to
// the comma-joined failure descriptor.
func (l Labels) withFailure(descriptor []string) Labels {
	merged := make(Labels, len(l)+1)
	for k, v := range l {
		merged[k] = v
	}
	merged[LabelFailure] = strings.Join(descriptor, ",")
	return merged
}
