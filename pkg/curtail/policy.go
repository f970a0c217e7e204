package curtail

// MinBlocks is the smallest capacity, in blocks, a Writer enforces. With a
// single block any write would immediately trigger another collapse.
const MinBlocks = 2

// EffectiveCapacity returns the capacity actually enforced for a requested
// capacity: rounded down to a multiple of blockSize, never below MinBlocks
// blocks.
func EffectiveCapacity(requested, blockSize int64) int64 {
	return max(MinBlocks, requested/blockSize) * blockSize
}

// Decide returns how many bytes must be collapsed from the head of a file
// of length position before chunkLen more bytes can be appended without
// exceeding capacity. The result is zero or the smallest multiple of
// blockSize that makes room.
//
// Decide does not clamp the result to position; callers handle a result
// that is not smaller than the file.
func Decide(position, chunkLen, capacity, blockSize int64) int64 {
	end := position + chunkLen
	if end <= capacity {
		return 0
	}
	overflow := end - capacity
	blocks := (overflow + blockSize - 1) / blockSize
	return blocks * blockSize
}
