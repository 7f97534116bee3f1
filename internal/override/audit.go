package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// AuditStore is the append-only justification and correction history. The
// ledger writes every override and identification correction here; rows are
// never updated or deleted.
type AuditStore interface {
	AppendOverride(ctx context.Context, rec OverrideRecord) error
	AppendIdentification(ctx context.Context, rec IdentificationRecord) error
	ListOverrides(ctx context.Context, answerID uuid.UUID) ([]OverrideRecord, error)
	Close() error
}

// OverrideRecord is one override invocation.
type OverrideRecord struct {
	AnswerID      uuid.UUID
	ScriptID      uuid.UUID
	ActorID       uuid.UUID
	PreviousGrade *float64
	ManualGrade   float64
	Justification string
	CreatedAt     time.Time
}

// IdentificationRecord is one post-grading identification correction.
type IdentificationRecord struct {
	ScriptID          uuid.UUID
	PreviousStudentID *uuid.UUID
	NewStudentID      uuid.UUID
	ActorID           uuid.UUID
	Reason            string
	CreatedAt         time.Time
}

type sqliteAudit struct {
	db *sql.DB
}

// OpenAuditStore opens (and if needed initializes) the sqlite audit log.
func OpenAuditStore(path string) (AuditStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS override_audit (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		answer_id      TEXT NOT NULL,
		script_id      TEXT NOT NULL,
		actor_id       TEXT NOT NULL,
		previous_grade REAL,
		manual_grade   REAL NOT NULL,
		justification  TEXT NOT NULL,
		created_at     DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_override_audit_answer ON override_audit(answer_id);
	CREATE INDEX IF NOT EXISTS idx_override_audit_script ON override_audit(script_id);

	CREATE TABLE IF NOT EXISTS identification_audit (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		script_id           TEXT NOT NULL,
		previous_student_id TEXT,
		new_student_id      TEXT NOT NULL,
		actor_id            TEXT NOT NULL,
		reason              TEXT DEFAULT '',
		created_at          DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_identification_audit_script ON identification_audit(script_id);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit schema: %w", err)
	}
	return &sqliteAudit{db: db}, nil
}

func (s *sqliteAudit) AppendOverride(ctx context.Context, rec OverrideRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	var prev any
	if rec.PreviousGrade != nil {
		prev = *rec.PreviousGrade
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO override_audit (answer_id, script_id, actor_id, previous_grade, manual_grade, justification, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.AnswerID.String(), rec.ScriptID.String(), rec.ActorID.String(),
		prev, rec.ManualGrade, rec.Justification, rec.CreatedAt,
	)
	return err
}

func (s *sqliteAudit) AppendIdentification(ctx context.Context, rec IdentificationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	var prev any
	if rec.PreviousStudentID != nil {
		prev = rec.PreviousStudentID.String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO identification_audit (script_id, previous_student_id, new_student_id, actor_id, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ScriptID.String(), prev, rec.NewStudentID.String(), rec.ActorID.String(),
		rec.Reason, rec.CreatedAt,
	)
	return err
}

func (s *sqliteAudit) ListOverrides(ctx context.Context, answerID uuid.UUID) ([]OverrideRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT answer_id, script_id, actor_id, previous_grade, manual_grade, justification, created_at
		 FROM override_audit WHERE answer_id = ? ORDER BY id ASC`,
		answerID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OverrideRecord
	for rows.Next() {
		var rec OverrideRecord
		var aid, sid, actor string
		var prev sql.NullFloat64
		if err := rows.Scan(&aid, &sid, &actor, &prev, &rec.ManualGrade, &rec.Justification, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.AnswerID, _ = uuid.Parse(aid)
		rec.ScriptID, _ = uuid.Parse(sid)
		rec.ActorID, _ = uuid.Parse(actor)
		if prev.Valid {
			v := prev.Float64
			rec.PreviousGrade = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *sqliteAudit) Close() error {
	return s.db.Close()
}
