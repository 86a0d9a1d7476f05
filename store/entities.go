package store

import "time"

// Run is one persisted generation run and its parameters.
type Run struct {
	ID                int64     `json:"id"`
	Fingerprint       string    `gorm:"not null;index" json:"fingerprint"`
	Count             int       `gorm:"not null" json:"count"`
	RangeStart        int       `gorm:"not null" json:"start"`
	RangeEnd          int       `gorm:"not null" json:"end"`
	Columns           int       `gorm:"not null" json:"columns"`
	MaxRepeatFraction float64   `gorm:"not null" json:"max_repeat_fraction"`
	Seed              int64     `gorm:"not null" json:"seed"`
	Budget            int       `gorm:"not null" json:"budget"`
	Replacements      int       `gorm:"not null" json:"replacements"`
	ReportRows        int       `gorm:"not null;default:-1" json:"report_rows"`
	CreatedAt         time.Time `json:"created_at"`
}

// HasReport reports whether a report was saved for the run.
func (r Run) HasReport() bool { return r.ReportRows >= 0 }

// RunColumn is the name of column Idx of a run.
type RunColumn struct {
	ID    int64
	RunID int64  `gorm:"not null;uniqueIndex:idx_run_columns"`
	Idx   int    `gorm:"not null;uniqueIndex:idx_run_columns"`
	Name  string `gorm:"not null"`
}

// Cell is one table value.
type Cell struct {
	ID     int64
	RunID  int64 `gorm:"not null;uniqueIndex:idx_cells"`
	ColIdx int   `gorm:"not null;uniqueIndex:idx_cells"`
	RowIdx int   `gorm:"not null;uniqueIndex:idx_cells"`
	Value  int   `gorm:"not null"`
}

// ReportRow is one (value, column combination) row, Seq preserving order.
type ReportRow struct {
	ID      int64
	RunID   int64  `gorm:"not null;uniqueIndex:idx_report_rows"`
	Seq     int    `gorm:"not null;uniqueIndex:idx_report_rows"`
	Value   int    `gorm:"not null"`
	Columns string `gorm:"not null"`
}
