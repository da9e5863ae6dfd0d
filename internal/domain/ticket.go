package domain

import (
	"encoding/json"
	"fmt"
)

// Status enumerates ticket lifecycle states.
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusClosed:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Label is a closed-set tag applied to a ticket.
type Label string

const (
	LabelFeature    Label = "Feature"
	LabelBug        Label = "Bug"
	LabelWontFix    Label = "WontFix"
	LabelDone       Label = "Done"
	LabelInProgress Label = "InProgress"
)

// ParseLabel validates a label string.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelFeature, LabelBug, LabelWontFix, LabelDone, LabelInProgress:
		return Label(s), nil
	default:
		return "", fmt.Errorf("unknown label %q", s)
	}
}

// ParseLabels validates a slice of label strings.
func ParseLabels(raw []string) ([]Label, error) {
	labels := make([]Label, 0, len(raw))
	for _, s := range raw {
		label, err := ParseLabel(s)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}

// Ticket is the aggregate for tracked work items. Created and LastModified
// hold millisecond epoch timestamps as decimal strings, matching the TEXT
// columns they are persisted in.
type Ticket struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Body         string  `json:"body"`
	Created      string  `json:"created"`
	LastModified string  `json:"last_modified"`
	Labels       []Label `json:"labels"`
	AssignedUser *int64  `json:"assigned_user"`
	Status       Status  `json:"status"`
}

// HasLabel reports whether the ticket carries the given label.
func (t *Ticket) HasLabel(label Label) bool {
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// EncodeLabels renders a label set as the JSON array string stored in the
// labels column. The storage engine treats it as opaque text.
func EncodeLabels(labels []Label) (string, error) {
	if labels == nil {
		labels = []Label{}
	}
	encoded, err := json.Marshal(labels)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// DecodeLabels parses the JSON array string from the labels column.
func DecodeLabels(raw string) ([]Label, error) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("decode labels column: %w", err)
	}
	return ParseLabels(names)
}
