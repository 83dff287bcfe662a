package model

// StatementKind discriminates the seven kinds of top-level item a Library
// can carry.
type StatementKind int

const (
	StmtEnumDef StatementKind = iota
	StmtStructDef
	StmtInterfaceDef
	StmtIteratorDef
	StmtClassDecl
	StmtClassDef
	StmtNativeFunctionDef
)

// Statement is one ordered top-level item of a Library. Only the field
// matching Kind is meaningful; it is never mutated once appended to a
// Library's Statements slice.
type Statement struct {
	Kind      StatementKind
	Enum      Enum
	Struct    Struct
	Interface Interface
	Iterator  Iterator
	ClassDecl ClassDecl
	Class     Class
	Function  NativeFunction
}
