package db

import (
	"fmt"

	"github.com/swinglab-data/swing.report/internal/swing"
)

// DrillRecord is one row of the prescription table. Empty motor_profile or
// weakest_category means the drill applies to any value of that dimension.
type DrillRecord struct {
	DrillID         int                `json:"drill_id"`
	LeakType        swing.LeakType     `json:"leak_type"`
	MotorProfile    swing.MotorProfile `json:"motor_profile"`
	WeakestCategory swing.Category     `json:"weakest_category"`
	Name            string             `json:"name"`
	Instruction     string             `json:"instruction"`
	Priority        int                `json:"priority"`
}

// CreateDrill inserts a prescription row.
func (db *DB) CreateDrill(d *DrillRecord) error {
	result, err := db.Exec(`
		INSERT INTO drills (leak_type, motor_profile, weakest_category, name, instruction, priority)
		VALUES (?, ?, ?, ?, ?, ?)
	`, string(d.LeakType), string(d.MotorProfile), string(d.WeakestCategory),
		d.Name, d.Instruction, d.Priority)
	if err != nil {
		return fmt.Errorf("failed to create drill: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	d.DrillID = int(id)
	return nil
}

// DrillTable adapts the drills table to swing.DrillSource.
type DrillTable struct {
	db *DB
}

// Drills returns prescriptions for the exact (leak, profile, weakest) key,
// ordered by priority. Relaxation across keys is the mapper's job, not the
// table's.
func (dt *DrillTable) Drills(leak swing.LeakType, profile swing.MotorProfile, weakest swing.Category) ([]swing.Drill, error) {
	rows, err := dt.db.Query(`
		SELECT name, instruction, priority
		FROM drills
		WHERE leak_type = ? AND motor_profile = ? AND weakest_category = ?
		ORDER BY priority ASC, drill_id ASC
	`, string(leak), string(profile), string(weakest))
	if err != nil {
		return nil, fmt.Errorf("failed to query drills: %w", err)
	}
	defer rows.Close()

	var out []swing.Drill
	for rows.Next() {
		var d swing.Drill
		if err := rows.Scan(&d.Name, &d.Instruction, &d.Priority); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DrillSource returns the database-backed prescription table.
func (db *DB) DrillSource() *DrillTable {
	return &DrillTable{db: db}
}
