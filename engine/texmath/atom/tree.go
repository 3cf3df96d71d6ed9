package atom

// Tree is the atom tree of a parsed source text. It numbers all atoms in
// pre-order, starting at 1, and records each atom's parent by ID.
type Tree struct {
	Root   []Atom
	nodes  []Atom // nodes[id-1] is the atom with ID id
	parent []ID   // parent[id-1] is the parent's ID, 0 for top-level atoms
}

// NewTree numbers the atoms of a sequence and creates a tree from it.
// Atoms must not be shared between trees.
func NewTree(root []Atom) *Tree {
	t := &Tree{Root: root}
	for _, a := range root {
		t.register(a, 0)
	}
	tracer().Debugf("atom tree with %d atoms", len(t.nodes))
	return t
}

func (t *Tree) register(a Atom, parent ID) {
	if a == nil {
		return
	}
	t.nodes = append(t.nodes, a)
	t.parent = append(t.parent, parent)
	id := ID(len(t.nodes))
	a.setIdent(id)
	for _, ch := range Children(a) {
		t.register(ch, id)
	}
}

// Len returns the number of atoms in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Atom returns the atom with a given ID, or nil.
func (t *Tree) Atom(id ID) Atom {
	if id <= 0 || int(id) > len(t.nodes) {
		return nil
	}
	return t.nodes[id-1]
}

// Parent returns the parent of an atom. Top-level atoms have no parent.
func (t *Tree) Parent(id ID) (Atom, bool) {
	if id <= 0 || int(id) > len(t.parent) || t.parent[id-1] == 0 {
		return nil, false
	}
	return t.nodes[t.parent[id-1]-1], true
}

// Walk visits all atoms in pre-order, together with their nesting depth.
// If f returns false, the children of an atom are skipped.
func (t *Tree) Walk(f func(a Atom, depth int) bool) {
	var walk func(atoms []Atom, depth int)
	walk = func(atoms []Atom, depth int) {
		for _, a := range atoms {
			if a != nil && f(a, depth) {
				walk(Children(a), depth+1)
			}
		}
	}
	walk(t.Root, 0)
}

// String serializes the tree to source text.
func (t *Tree) String() string {
	return Serialize(t.Root)
}
