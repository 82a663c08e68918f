package parallel

// Chunk is the half-open index range [Start, End) of one unit of parallel work.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Split partitions n elements into min(parts, n) contiguous chunks.
//
// Every chunk holds n/parts elements, and the first n%parts chunks hold one
// more, so sizes differ by at most one. The chunks cover [0, n) in order with
// no gaps. Split returns nil when n or parts is not positive.
func Split(n, parts int) []Chunk {
	if n <= 0 || parts <= 0 {
		return nil
	}

	base, extra := n/parts, n%parts
	count := min(parts, n)

	chunks := make([]Chunk, count)
	start := 0
	for i := range count {
		size := base
		if i < extra {
			size++
		}
		chunks[i] = Chunk{Start: start, End: start + size}
		start += size
	}
	return chunks
}

// partition returns the sub-slices of elements described by chunks. The
// sub-slices alias elements.
func partition[T any](elements []T, chunks []Chunk) [][]T {
	out := make([][]T, len(chunks))
	for i, c := range chunks {
		out[i] = elements[c.Start:c.End:c.End]
	}
	return out
}
