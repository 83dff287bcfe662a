package model

// Iterator is a fully-resolved opaque iterator handle: a unique name, the
// Struct it yields, and the native "next" function that advances it. Next
// takes the iterator handle and returns a pointer to the next item, or null
// once exhausted — the model records only the function name and the item
// type; the null-pointer-means-exhausted convention is enforced by every
// backend's emitted adapter, not by the model itself.
type Iterator struct {
	Name string
	Doc  string
	Item StructID
	Next string // name of the native NativeFunction that advances the iterator
}

func (i Iterator) ID() IteratorID { return IteratorID(i.Name) }
