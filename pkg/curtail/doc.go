// Package curtail writes an unbounded byte stream into a single file whose
// size never exceeds a fixed capacity.
//
// When an incoming write would push the file past its capacity, the oldest
// data is dropped by collapsing a block-aligned prefix of the file. On Linux
// this is fallocate(2) with FALLOC_FL_COLLAPSE_RANGE, a metadata-only
// operation on extent based filesystems such as ext4 and XFS. Elsewhere, or
// when requested, a read-copy-truncate fallback with the same contract is
// used.
//
// # Usage
//
//	w, err := curtail.Open("/var/log/app.log", 16*size.KiB)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	_, err = io.Copy(w, os.Stdin)
//
// io.Copy hands the writer arbitrarily sized chunks; the capacity check is
// performed for each one.
//
// # Capacity
//
// The requested capacity is rounded down to a multiple of the filesystem
// block size and raised to at least two blocks, see [EffectiveCapacity].
//
// A Writer is not safe for concurrent use.
package curtail
