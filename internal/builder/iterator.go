package builder

import "github.com/cwbudde/go-oobind/internal/model"

// DefineIterator registers an opaque iterator over a previously-defined
// struct. The native "next" function is synthesized here rather than
// supplied by the caller, which makes its contract (takes the iterator
// handle, returns a pointer to the next item or null on exhaustion)
// impossible to get wrong at the schema level. Both the iterator name and
// the next-function name are reserved globally.
func (b *LibraryBuilder) DefineIterator(name, nextName string, item model.StructID) (model.IteratorID, error) {
	if b.built {
		return "", &BindingError{Kind: BuilderAlreadyConsumed, Name: name}
	}
	if !b.definedStructs[item] {
		return "", errUnknownRef(string(item), "iterator item struct")
	}
	if b.names[name] {
		return "", errNameUsed(name)
	}
	if b.names[nextName] {
		return "", errNameUsed(nextName)
	}
	b.names[name] = true
	b.names[nextName] = true
	iter := model.Iterator{Name: name, Item: item, Next: nextName}
	b.definedIters[iter.ID()] = true
	b.statements = append(b.statements, model.Statement{Kind: model.StmtIteratorDef, Iterator: iter})
	return iter.ID(), nil
}
