package swing

import "sort"

// SwingRows is one swing's rows inside the action window, sorted by time
// offset. The sort makes peak tie-breaking independent of input row order.
type SwingRows struct {
	SwingID string
	Rows    []MotionRow
}

// SegmentSwings groups rows by swing id, trims each group to the configured
// action window, and discards groups with fewer than MinRowsPerSwing samples
// inside it. Too-thin swings make peak detection unreliable and contribute
// nothing downstream; dropping them is expected behavior, not an error.
//
// Output is ordered by swing id so the pipeline is deterministic regardless
// of input row order.
func SegmentSwings(rows []MotionRow, cfg Config) []SwingRows {
	groups := make(map[string][]MotionRow)
	for _, row := range rows {
		if row.SwingID == "" || !row.HasTime {
			continue
		}
		if row.TimeOffset < cfg.WindowStart || row.TimeOffset > cfg.WindowEnd {
			continue
		}
		groups[row.SwingID] = append(groups[row.SwingID], row)
	}

	ids := make([]string, 0, len(groups))
	for id, g := range groups {
		if len(g) < cfg.MinRowsPerSwing {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	swings := make([]SwingRows, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		sort.SliceStable(g, func(i, j int) bool { return g[i].TimeOffset < g[j].TimeOffset })
		swings = append(swings, SwingRows{SwingID: id, Rows: g})
	}
	return swings
}
