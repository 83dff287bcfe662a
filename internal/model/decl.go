package model

// ClassDecl is the opaque handle produced by declaring a class before it is
// defined. It carries only a name; the body is attached later by a ClassDef
// statement that references this same ClassID.
type ClassDecl struct {
	Name string
}

// ID returns the ClassID that a later ClassDef must reference to complete
// this declaration.
func (d ClassDecl) ID() ClassID { return ClassID(d.Name) }
