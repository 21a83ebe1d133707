package swing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column roles recognized in export headers after normalization. Field names
// drift between capture-provider export versions, so matching is by
// substring, not exact name.
const (
	energyMarker = "kinetic_energy"
	timeMarker   = "time_from"
)

// columnMap resolves which CSV column feeds which MotionRow field.
type columnMap struct {
	swingID int
	timeCol int

	segment map[Segment]int

	// Older exports split arm energy into left/right columns instead of a
	// combined arms column. The parser sums them when no combined column
	// exists so the extractor never sees format differences.
	leftArm  int
	rightArm int

	extra map[string]int
}

// normalizeHeader lower-cases a header cell and collapses whitespace runs to
// single underscores, so "Swing ID" and "swing_id" resolve identically.
func normalizeHeader(h string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(h)))
	return strings.Join(fields, "_")
}

func buildColumnMap(header []string) columnMap {
	cm := columnMap{
		swingID:  -1,
		timeCol:  -1,
		leftArm:  -1,
		rightArm: -1,
		segment:  make(map[Segment]int),
		extra:    make(map[string]int),
	}

	for i, raw := range header {
		h := normalizeHeader(raw)
		switch {
		case strings.Contains(h, energyMarker):
			switch {
			case strings.Contains(h, "total"):
				cm.mapSegment(SegmentTotal, i)
			case strings.Contains(h, "bat"):
				cm.mapSegment(SegmentBat, i)
			case strings.Contains(h, "left_arm"):
				if cm.leftArm < 0 {
					cm.leftArm = i
				}
			case strings.Contains(h, "right_arm"):
				if cm.rightArm < 0 {
					cm.rightArm = i
				}
			case strings.Contains(h, "arms") || strings.Contains(h, "upper"):
				cm.mapSegment(SegmentArms, i)
			case strings.Contains(h, "torso") || strings.Contains(h, "trunk") || strings.Contains(h, "core"):
				cm.mapSegment(SegmentTorso, i)
			case strings.Contains(h, "legs") || strings.Contains(h, "lower"):
				cm.mapSegment(SegmentLegs, i)
			default:
				cm.extra[h] = i
			}
		case strings.Contains(h, timeMarker):
			if cm.timeCol < 0 {
				cm.timeCol = i
			}
		case strings.Contains(h, "swing"):
			if cm.swingID < 0 {
				cm.swingID = i
			}
		default:
			cm.extra[h] = i
		}
	}
	return cm
}

func (cm *columnMap) mapSegment(seg Segment, col int) {
	if _, ok := cm.segment[seg]; !ok {
		cm.segment[seg] = col
	}
}

// parseFloat parses an energy or time value, defaulting to 0 on failure.
// Malformed telemetry is common and non-fatal.
func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

// ParseCSV reads a motion-capture export with a header line and returns one
// MotionRow per usable data row. Quoted fields are handled by encoding/csv.
// Energy values are clamped at 0 (negative readings are sensor noise). Rows
// lacking both a swing key and a time offset are dropped silently. Empty
// input yields an empty slice, not an error.
func ParseCSV(r io.Reader) ([]MotionRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports pad or truncate trailing columns
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return []MotionRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cm := buildColumnMap(header)

	var rows []MotionRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A single corrupt line should not sink the session.
			continue
		}

		row, ok := buildRow(cm, record)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = []MotionRow{}
	}
	return rows, nil
}

func buildRow(cm columnMap, record []string) (MotionRow, bool) {
	swingID := strings.TrimSpace(cell(record, cm.swingID))
	timeRaw := strings.TrimSpace(cell(record, cm.timeCol))
	timeVal, hasTime := parseFloat(timeRaw)
	if timeRaw == "" {
		hasTime = false
	}

	// Drop rows that lack both the grouping key and the time offset; they
	// cannot contribute to any swing.
	if swingID == "" && !hasTime {
		return MotionRow{}, false
	}

	row := MotionRow{
		SwingID:    swingID,
		TimeOffset: timeVal,
		HasTime:    hasTime,
		Energy:     make(map[Segment]float64, len(Segments)),
	}

	for seg, col := range cm.segment {
		v, _ := parseFloat(cell(record, col))
		if v < 0 {
			v = 0
		}
		row.Energy[seg] = v
	}

	// Arms fallback chain: combined column wins, else left+right sum.
	if _, ok := cm.segment[SegmentArms]; !ok && (cm.leftArm >= 0 || cm.rightArm >= 0) {
		left, _ := parseFloat(cell(record, cm.leftArm))
		right, _ := parseFloat(cell(record, cm.rightArm))
		if left < 0 {
			left = 0
		}
		if right < 0 {
			right = 0
		}
		row.Energy[SegmentArms] = left + right
	}

	for name, col := range cm.extra {
		v := strings.TrimSpace(cell(record, col))
		if v == "" {
			continue
		}
		if row.Extra == nil {
			row.Extra = make(map[string]string)
		}
		row.Extra[name] = v
	}

	return row, true
}
