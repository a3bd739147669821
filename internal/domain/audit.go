package domain

import "time"

// Audited entity names as stored in the change log.
const (
	AuditEntityBike     = "bike"
	AuditEntityContract = "rental_contract"
)

// ChangeEntry is one field-level change notification recorded on the write
// path of a tracked entity.
type ChangeEntry struct {
	ID        string    `json:"id"` // uuid
	Entity    string    `json:"entity"`
	EntityID  int32     `json:"entity_id"`
	Field     string    `json:"field"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	ChangedBy string    `json:"changed_by"`
	ChangedOn time.Time `json:"changed_on"`
}
