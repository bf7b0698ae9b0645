package container

// directoryEntry records where one appended day's encoded bytes begin in
// the container's payload buffer.
//
// ContentHash is not part of the serialized directory (on disk the
// directory is N x u64 offsets only); it is in-memory-only bookkeeping,
// recomputed during Deserialize's validation pass.
type directoryEntry struct {
	// Offset is the byte offset of this day's encoded (and, if enabled,
	// compressed) bytes within the payload buffer.
	Offset uint64
	// ContentHash is the xxHash64 of this day's encoded bytes prior to
	// compression, populated at append time.
	ContentHash uint64
}

// dayBounds returns the byte range [start, end) of day i's stored bytes
// in the payload buffer. end is the next entry's offset (or the
// payload's total length, for the last day); the directory stores no
// per-day length.
func (c *Container) dayBounds(i int) (start, end int) {
	start = int(c.directory[i].Offset)
	if i+1 < len(c.directory) {
		end = int(c.directory[i+1].Offset)
	} else {
		end = len(c.payload)
	}

	return start, end
}
