package curtail

// Stats counts what a Writer has done since it was created.
type Stats struct {
	Writes         int64 `json:"writes"`
	BytesWritten   int64 `json:"bytes_written"`
	Collapses      int64 `json:"collapses"`
	BytesCollapsed int64 `json:"bytes_collapsed"`
	// Resets counts chunks that forced the whole previous file to be dropped.
	Resets int64 `json:"resets"`
	// Size is the file length after the last operation.
	Size int64 `json:"size"`
}
