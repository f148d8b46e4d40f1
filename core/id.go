package core

// EntityID encodes a 32-bit slot index in the lower bits and a 32-bit
// generation in the upper bits. The generation increments every time a pooled
// instance is reissued, so a stale handle never aliases a recycled entity.
type EntityID uint64

func NewEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

func (id EntityID) Index() uint32      { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }
func (id EntityID) IsZero() bool       { return id == 0 }

// NextGeneration returns the same slot with the generation bumped by one.
// Used when an instance leaves the pool for a new in-game life.
func (id EntityID) NextGeneration() EntityID {
	return NewEntityID(id.Index(), id.Generation()+1)
}
