package memutils

import "sync/atomic"

// Statistics is a point-in-time view of the buffers a backend is tracking
type Statistics struct {
	// BufferCount is the number of live buffers, created or imported
	BufferCount int
	// BufferBytes is the total size of all live buffers
	BufferBytes int
	// ImportCount is the number of live buffers that were imported
	ImportCount int
	// MappingCount is the number of CPU mappings that have not been unmapped
	MappingCount int
}

// Counters accumulates Statistics from buffer operations that may run on
// several goroutines at once
type Counters struct {
	bufferCount  atomic.Int64
	bufferBytes  atomic.Int64
	importCount  atomic.Int64
	mappingCount atomic.Int64
}

func (c *Counters) AddBuffer(size int, imported bool) {
	c.bufferCount.Add(1)
	c.bufferBytes.Add(int64(size))
	if imported {
		c.importCount.Add(1)
	}
}

func (c *Counters) RemoveBuffer(size int, imported bool) {
	c.bufferCount.Add(-1)
	c.bufferBytes.Add(int64(-size))
	if imported {
		c.importCount.Add(-1)
	}
}

func (c *Counters) AddMapping() {
	c.mappingCount.Add(1)
}

func (c *Counters) RemoveMapping() {
	c.mappingCount.Add(-1)
}

func (c *Counters) Snapshot(out *Statistics) {
	out.BufferCount = int(c.bufferCount.Load())
	out.BufferBytes = int(c.bufferBytes.Load())
	out.ImportCount = int(c.importCount.Load())
	out.MappingCount = int(c.mappingCount.Load())
}
