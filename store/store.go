// Package store persists generation runs, their tables and their
// co-occurrence reports in SQLite through gorm.
//
// Writes run inside transactions and are retried with exponential backoff
// while SQLite reports the database as locked or busy; any other failure
// is returned at once. The connection pool is limited to one connection.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/cooccur"
	"github.com/cosminiq/Random-Number-Generator-and-Analyzer/table"
)

var (
	// ErrRunNotFound is returned for an unknown run ID.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrReportNotFound is returned by LoadReport before SaveReport ran.
	ErrReportNotFound = errors.New("store: report not saved")
)

// cellBatch bounds the rows per INSERT statement.
const cellBatch = 500

// maxRetries bounds lock retries per write.
const maxRetries = 8

// Store is a handle on one SQLite database.
type Store struct {
	db *gorm.DB
}

// FileDSN returns the DSN for an on-disk database file.
func FileDSN(filename string) string {
	return fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", filename)
}

// MemoryDSN returns the DSN of a named in-memory database; equal names
// within one process share the database.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// Open connects to dsn and migrates the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	dst := []interface{}{
		&Run{},
		&RunColumn{},
		&Cell{},
		&ReportRow{},
	}
	if err := s.db.WithContext(ctx).AutoMigrate(dst...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// SaveRun stores t with the parameters in run. ID, Fingerprint, ReportRows
// and CreatedAt are assigned by the store; the stored Run is returned.
func (s *Store) SaveRun(ctx context.Context, run Run, t *table.Table) (Run, error) {
	run.ID = 0
	run.Fingerprint = strconv.FormatUint(t.Fingerprint(), 16)
	run.ReportRows = -1
	run.CreatedAt = time.Now().UTC()

	names := t.Names()
	columns := make([]RunColumn, len(names))
	cells := make([]Cell, 0, t.Len())
	t.Each(func(c int, _ string, r int, v int) bool {
		cells = append(cells, Cell{ColIdx: c, RowIdx: r, Value: v})
		return true
	})
	for c, name := range names {
		columns[c] = RunColumn{Idx: c, Name: name}
	}

	err := s.write(ctx, func(tx *gorm.DB) error {
		saved := run
		if res := tx.Create(&saved); res.Error != nil {
			return res.Error
		}
		for i := range columns {
			columns[i].ID, columns[i].RunID = 0, saved.ID
		}
		for i := range cells {
			cells[i].ID, cells[i].RunID = 0, saved.ID
		}
		if len(columns) > 0 {
			if res := tx.Create(&columns); res.Error != nil {
				return res.Error
			}
		}
		if len(cells) > 0 {
			if res := tx.CreateInBatches(&cells, cellBatch); res.Error != nil {
				return res.Error
			}
		}
		run = saved
		return nil
	})
	if err != nil {
		return Run{}, fmt.Errorf("failed to save run: %w", err)
	}

	return run, nil
}

// GetRun returns the run with the given ID.
func (s *Store) GetRun(ctx context.Context, id int64) (Run, error) {
	var run Run
	res := s.db.WithContext(ctx).Where("id = ?", id).Take(&run)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return Run{}, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
		}
		return Run{}, fmt.Errorf("failed to read run %d: %w", id, res.Error)
	}

	return run, nil
}

// ListRuns returns every run, oldest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	var runs []Run
	if res := s.db.WithContext(ctx).Order("id").Find(&runs); res.Error != nil {
		return nil, fmt.Errorf("failed to list runs: %w", res.Error)
	}

	return runs, nil
}

// LoadTable rebuilds the table of run id.
func (s *Store) LoadTable(ctx context.Context, id int64) (*table.Table, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	var columns []RunColumn
	if res := s.db.WithContext(ctx).Where("run_id = ?", id).Order("idx").Find(&columns); res.Error != nil {
		return nil, fmt.Errorf("failed to load columns of run %d: %w", id, res.Error)
	}
	var cells []Cell
	if res := s.db.WithContext(ctx).Where("run_id = ?", id).Order("col_idx, row_idx").Find(&cells); res.Error != nil {
		return nil, fmt.Errorf("failed to load cells of run %d: %w", id, res.Error)
	}

	names := make([]string, len(columns))
	cols := make([][]int, len(columns))
	for i, c := range columns {
		if c.Idx != i {
			return nil, fmt.Errorf("run %d: column %d missing: %w", id, i, table.ErrSchemaMismatch)
		}
		names[i] = c.Name
		cols[i] = make([]int, 0, run.Count)
	}
	for _, c := range cells {
		if c.ColIdx < 0 || c.ColIdx >= len(cols) || c.RowIdx != len(cols[c.ColIdx]) {
			return nil, fmt.Errorf("run %d: cell (%d,%d) out of place: %w", id, c.RowIdx, c.ColIdx, table.ErrSchemaMismatch)
		}
		cols[c.ColIdx] = append(cols[c.ColIdx], c.Value)
	}

	t, err := table.NewNamed(names, cols)
	if err != nil {
		return nil, fmt.Errorf("run %d: %w", id, err)
	}

	return t, nil
}

// SaveReport replaces the stored report of run id with rep.
func (s *Store) SaveReport(ctx context.Context, id int64, rep cooccur.Report) error {
	rows := make([]ReportRow, len(rep))
	for i, r := range rep {
		rows[i] = ReportRow{RunID: id, Seq: i, Value: r.Value, Columns: r.Label()}
	}

	err := s.write(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&Run{}).Where("id = ?", id).Update("report_rows", len(rows))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return backoff.Permanent(fmt.Errorf("run %d: %w", id, ErrRunNotFound))
		}
		if res := tx.Where("run_id = ?", id).Delete(&ReportRow{}); res.Error != nil {
			return res.Error
		}
		if len(rows) > 0 {
			if res := tx.CreateInBatches(&rows, cellBatch); res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// LoadReport returns the stored report of run id.
// Returns ErrReportNotFound if SaveReport never ran for it.
func (s *Store) LoadReport(ctx context.Context, id int64) (cooccur.Report, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	if !run.HasReport() {
		return nil, fmt.Errorf("run %d: %w", id, ErrReportNotFound)
	}

	var rows []ReportRow
	if res := s.db.WithContext(ctx).Where("run_id = ?", id).Order("seq").Find(&rows); res.Error != nil {
		return nil, fmt.Errorf("failed to load report of run %d: %w", id, res.Error)
	}
	rep := make(cooccur.Report, len(rows))
	for i, r := range rows {
		rep[i] = cooccur.Row{Value: r.Value, Columns: strings.Split(r.Columns, cooccur.LabelSeparator)}
	}

	return rep, nil
}

// DeleteRun removes run id with its columns, cells and report.
func (s *Store) DeleteRun(ctx context.Context, id int64) error {
	err := s.write(ctx, func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Run{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return backoff.Permanent(fmt.Errorf("run %d: %w", id, ErrRunNotFound))
		}
		for _, model := range []interface{}{&RunColumn{}, &Cell{}, &ReportRow{}} {
			if res := tx.Where("run_id = ?", id).Delete(model); res.Error != nil {
				return res.Error
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	return nil
}

// write runs fn in a transaction, retrying while SQLite is locked.
func (s *Store) write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	op := func() error {
		err := s.db.WithContext(ctx).Transaction(fn)
		if err == nil || isLocked(err) {
			return err
		}
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return err
		}
		return backoff.Permanent(err)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)

	return backoff.Retry(op, policy)
}

func isLocked(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}
