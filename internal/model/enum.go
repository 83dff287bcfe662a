package model

// EnumVariant is one named, documented member of an Enum. Its integer value
// is its position in Enum.Variants, not a stored field — this is what makes
// "variant values equal their positional index" a structural guarantee
// rather than something callers could get wrong.
type EnumVariant struct {
	Name string
	Doc  string
}

// Enum is a fully-resolved enum definition: a unique name and an ordered,
// non-empty list of variants with unique names.
type Enum struct {
	Name     string
	Doc      string
	Variants []EnumVariant
}

func (e Enum) ID() EnumID { return EnumID(e.Name) }

// ValueOf returns the positional integer value of the named variant and
// true, or (0, false) if no such variant exists.
func (e Enum) ValueOf(variant string) (int, bool) {
	for i, v := range e.Variants {
		if v.Name == variant {
			return i, true
		}
	}
	return 0, false
}
