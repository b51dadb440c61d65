package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

const medicationColumns = `id, name, dosage, frequency, times, days, status, date, idempotency_key, created_at`

// MedicationRepository stores dose records in SQLite. The AUTOINCREMENT seq
// column preserves insertion order; times and days are JSON encoded.
type MedicationRepository struct {
	db *sql.DB
}

func NewMedicationRepository(db *sql.DB) *MedicationRepository {
	return &MedicationRepository{db: db}
}

func (r *MedicationRepository) Create(ctx context.Context, m domain.Medication) error {
	return insertMedication(ctx, r.db, m)
}

func (r *MedicationRepository) FindByID(ctx context.Context, id string) (domain.Medication, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE id = ?`, id)
	return scanMedication(row)
}

func (r *MedicationRepository) FindByIdempotencyKey(ctx context.Context, key string) (domain.Medication, error) {
	if key == "" {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+medicationColumns+` FROM medications WHERE idempotency_key = ?`, key)
	return scanMedication(row)
}

func (r *MedicationRepository) List(ctx context.Context) ([]domain.Medication, error) {
	return r.query(ctx, `SELECT `+medicationColumns+` FROM medications ORDER BY seq`)
}

func (r *MedicationRepository) ListByDate(ctx context.Context, date string) ([]domain.Medication, error) {
	return r.query(ctx, `SELECT `+medicationColumns+` FROM medications WHERE date = ? ORDER BY seq`, date)
}

func (r *MedicationRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Medication, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE medications SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return domain.Medication{}, fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MedicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrMedicationNotFound
	}
	return nil
}

// ReplaceAll swaps the table contents in one transaction.
func (r *MedicationRepository) ReplaceAll(ctx context.Context, meds []domain.Medication) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM medications`); err != nil {
		return fmt.Errorf("clear medications: %w", err)
	}
	for _, m := range meds {
		if err := insertMedication(ctx, tx, m); err != nil {
			return err
		}
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertMedication(ctx context.Context, db execer, m domain.Medication) error {
	times, err := json.Marshal(m.Times)
	if err != nil {
		return fmt.Errorf("encode times: %w", err)
	}
	days, err := json.Marshal(m.Days)
	if err != nil {
		return fmt.Errorf("encode days: %w", err)
	}

	var key sql.NullString
	if m.IdempotencyKey != "" {
		key = sql.NullString{String: m.IdempotencyKey, Valid: true}
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO medications (`+medicationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Dosage, m.Frequency, string(times), string(days), string(m.Status), m.Date, key,
		m.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

func (r *MedicationRepository) query(ctx context.Context, q string, args ...any) ([]domain.Medication, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query medications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMedication(s scanner) (domain.Medication, error) {
	var (
		m             domain.Medication
		times, days   string
		status, stamp string
		key           sql.NullString
	)
	err := s.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &times, &days, &status, &m.Date, &key, &stamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Medication{}, domain.ErrMedicationNotFound
		}
		return domain.Medication{}, fmt.Errorf("scan medication: %w", err)
	}
	if err := json.Unmarshal([]byte(times), &m.Times); err != nil {
		return domain.Medication{}, fmt.Errorf("decode times: %w", err)
	}
	if err := json.Unmarshal([]byte(days), &m.Days); err != nil {
		return domain.Medication{}, fmt.Errorf("decode days: %w", err)
	}
	m.Status = domain.Status(status)
	m.IdempotencyKey = key.String
	m.CreatedAt, _ = time.Parse(time.RFC3339Nano, stamp)
	return m, nil
}
