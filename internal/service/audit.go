package service

import (
	"strconv"
	"time"

	"bikeshop-backend/internal/domain"

	"github.com/google/uuid"
)

// changeSet accumulates field-level change notifications for one entity
// write, mirroring the tracked-field audit the platform expects.
type changeSet struct {
	entity    string
	entityID  int32
	changedBy string
	entries   []domain.ChangeEntry
}

func newChangeSet(entity string, entityID int32, changedBy string) *changeSet {
	return &changeSet{entity: entity, entityID: entityID, changedBy: changedBy}
}

func (cs *changeSet) add(field, oldValue, newValue string) {
	if oldValue == newValue {
		return
	}
	cs.entries = append(cs.entries, domain.ChangeEntry{
		ID:        uuid.NewString(),
		Entity:    cs.entity,
		EntityID:  cs.entityID,
		Field:     field,
		OldValue:  oldValue,
		NewValue:  newValue,
		ChangedBy: cs.changedBy,
		ChangedOn: time.Now(),
	})
}

func (cs *changeSet) addFloat(field string, oldValue, newValue float64) {
	cs.add(field, formatFloat(oldValue), formatFloat(newValue))
}

func (cs *changeSet) addInt(field string, oldValue, newValue int32) {
	cs.add(field, strconv.FormatInt(int64(oldValue), 10), strconv.FormatInt(int64(newValue), 10))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
