package model

// StructField is one named, typed, documented member of a Struct.
type StructField struct {
	Name string
	Type Type
	Doc  string
}

// Struct is a fully-resolved structure definition: a unique name and an
// ordered list of fields with unique names. Recursive containment (a struct
// transitively containing itself by value) is rejected by the builder
// before the Struct is ever constructed, so any Struct observed through a
// Library is already acyclic.
type Struct struct {
	Name   string
	Doc    string
	Fields []StructField
}

func (s Struct) ID() StructID { return StructID(s.Name) }
