package schedule

// VisibleDays computes how many date columns fit in the available width,
// given a fixed room-label column and fixed-width date columns. The result is
// clamped to [MinVisibleDays, MaxVisibleDays]; degenerate widths (including a
// non-positive column width) clamp to the floor rather than erroring.
//
// Recomputed on container resize and once on initial mount after layout
// settles.
func VisibleDays(availableWidth, roomColumnWidth, dateColumnWidth int) int {
	if dateColumnWidth <= 0 {
		return MinVisibleDays
	}
	return clampDays((availableWidth - roomColumnWidth) / dateColumnWidth)
}
