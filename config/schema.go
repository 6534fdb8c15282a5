package config

// Kind identifies what a schema field holds.
type Kind int

const (
	// KindString is a nullable string leaf.
	KindString Kind = iota

	// KindObject is a structural node containing child fields.
	KindObject
)

// Field describes one node in the config schema tree. Leaves carry typed
// accessors over Document, so path operations compile down to ordinary
// field access instead of reflection or string-indexed maps.
type Field struct {
	// Name is the field's key in the document (one path segment).
	Name string

	// Kind distinguishes leaves from nested objects.
	Kind Kind

	// Children holds the nested fields of a KindObject node.
	Children []Field

	// structural fields (the schema version marker) are part of the
	// document but never addressable through a path.
	structural bool

	get   func(d *Document) (string, bool)
	set   func(d *Document, v string)
	unset func(d *Document)
}

// schema is the authoritative shape of the config document. Every
// addressable setting must appear here; the path vocabulary and the CLI's
// key completion are both derived from this tree.
var schema = []Field{
	{Name: "version", Kind: KindString, structural: true},
	{
		Name:  "team",
		Kind:  KindString,
		get:   func(d *Document) (string, bool) { return deref(d.Team) },
		set:   func(d *Document, v string) { d.Team = &v },
		unset: func(d *Document) { d.Team = nil },
	},
	{
		Name: "defaults",
		Kind: KindObject,
		Children: []Field{
			{
				Name:  "project",
				Kind:  KindString,
				get:   func(d *Document) (string, bool) { return deref(d.Defaults.Project) },
				set:   func(d *Document, v string) { d.Defaults.Project = &v },
				unset: func(d *Document) { d.Defaults.Project = nil },
			},
		},
	},
}

// Paths returns the dotted path of every addressable leaf, in schema order.
// Structural fields and intermediate object nodes are excluded. The result
// is stable for a fixed schema, so it is safe to use for enum validation
// and displayed menus.
func Paths() []string {
	var paths []string
	walk(schema, "", func(path string, f Field) {
		paths = append(paths, path)
	})
	return paths
}

// walk performs a depth-first traversal over the schema, invoking visit for
// each addressable leaf with its accumulated dotted path.
func walk(fields []Field, prefix string, visit func(path string, f Field)) {
	for _, f := range fields {
		if f.structural {
			continue
		}
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		if f.Kind == KindObject {
			walk(f.Children, path, visit)
			continue
		}
		visit(path, f)
	}
}

var leafIndex = buildLeafIndex()

func buildLeafIndex() map[string]Field {
	idx := make(map[string]Field)
	walk(schema, "", func(path string, f Field) { idx[path] = f })
	return idx
}

// lookup resolves a dotted path to its leaf descriptor.
func lookup(path string) (Field, bool) {
	f, ok := leafIndex[path]
	return f, ok
}

// GetPath returns the value at path in an already-loaded document. Callers
// that need validation and fresh state should use Store.Get instead; this
// exists for iterating over a single Read, e.g. 'vessel config list'.
func GetPath(doc *Document, path string) (string, bool) {
	f, ok := lookup(path)
	if !ok {
		return "", false
	}
	return f.get(doc)
}

func deref(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	return *p, true
}
