package sharh

import (
	"context"
	"time"
)

// Record is a persisted section of a collection.
type Record struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	Label        string    `json:"label"`
	Number       *int      `json:"number,omitempty"` // nil when the label carries no number
	Body         string    `json:"body"`
	BodyHash     string    `json:"bodyHash"`
	Position     int       `json:"position"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.CollectionID == "" {
		return Errorf(EINVALID, "record collection ID required")
	}
	if r.Label == "" {
		return Errorf(EINVALID, "record label required")
	}
	return nil
}

// RecordService represents a service for managing records.
type RecordService interface {
	// ReplaceRecords atomically replaces all records of a collection.
	ReplaceRecords(ctx context.Context, collectionID string, records []*Record) error

	// FindRecords retrieves records matching the filter, ordered by position.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	CollectionID *string `json:"collectionId"`
	Label        *string `json:"label"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordsFromSections converts a label→text mapping into records ordered by
// section number.
func RecordsFromSections(collectionID string, sections map[string]string, prefix string) []*Record {
	labels := make([]string, 0, len(sections))
	for label := range sections {
		labels = append(labels, label)
	}
	SortLabels(labels, prefix)

	records := make([]*Record, 0, len(labels))
	for i, label := range labels {
		rec := &Record{
			CollectionID: collectionID,
			Label:        label,
			Body:         sections[label],
			Position:     i,
		}
		if n, ok := ParseLabel(label, prefix); ok {
			rec.Number = &n
		}
		records = append(records, rec)
	}
	return records
}
