package buffer

// Stats summarizes a buffer's size.
type Stats struct {
	Lines int
	Units int
	// Bytes counts every line boundary as one code unit.
	Bytes int
}

func statsFor(lines, units int) Stats {
	return Stats{
		Lines: lines,
		Units: units,
		Bytes: (units + lines - 1) * UnitSize,
	}
}

// Inspector is read-only introspection for debug views. Both backends
// implement it.
type Inspector interface {
	Backend() Backend
	Stats() Stats
}

var (
	_ Inspector = (*ContiguousBuffer)(nil)
	_ Inspector = (*SegmentedBuffer)(nil)
)
