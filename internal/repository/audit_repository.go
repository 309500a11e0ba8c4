package repository

import (
	"context"
	"encoding/json"
	"log"

	"pulse-events/backend/internal/domain"
)

// KeyAuditLogs is the storage key holding the full audit log collection.
const KeyAuditLogs = "pulse_events_audit_logs"

// AuditRepository persists the audit log as one JSON document. Every write
// replaces the entire collection; there is no differential append.
type AuditRepository interface {
	Load(ctx context.Context) ([]domain.AuditLogEntry, error)
	Store(ctx context.Context, entries []domain.AuditLogEntry) error
	Clear(ctx context.Context) error
}

type auditRepo struct {
	store KVStore
}

func NewAuditRepository(store KVStore) AuditRepository {
	return &auditRepo{store: store}
}

// Load returns the persisted entries oldest-first. A missing key or
// unparseable document reads as an empty log, never as an error: corrupt
// state must degrade to an empty dashboard.
func (r *auditRepo) Load(ctx context.Context) ([]domain.AuditLogEntry, error) {
	raw, ok, err := r.store.Get(ctx, KeyAuditLogs)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []domain.AuditLogEntry{}, nil
	}
	var entries []domain.AuditLogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("audit: discarding corrupt log document: %v", err)
		return []domain.AuditLogEntry{}, nil
	}
	return entries, nil
}

func (r *auditRepo) Store(ctx context.Context, entries []domain.AuditLogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyAuditLogs, string(raw))
}

func (r *auditRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAuditLogs)
}
