package dto

import (
	"cowork/shared/constant"
	"cowork/shared/model"
	"cowork/shared/timezone"
	"time"
)

// Metadata is the audit block embedded in every response. Timestamps are rendered
// in the application timezone; an unset timestamp is omitted.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	m.CreatedAt = formatAudit(source.CreatedAt)
	m.CreatedBy = source.CreatedBy
	m.ModifiedAt = formatAudit(source.ModifiedAt)
	m.ModifiedBy = source.ModifiedBy
}

func formatAudit(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
