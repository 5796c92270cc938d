package document

// Visitor has one method per component variant. Writers that need per-variant
// behaviour implement it instead of type-switching, so adding a variant breaks
// every visitor at compile time.
type Visitor interface {
	VisitNosecone(n *Nosecone) error
	VisitBodytube(b *Bodytube) error
	VisitMass(m *Mass) error
	VisitFin(f *Fin) error
	VisitFinset(fs *Finset) error
}

// Visit walks c depth first and dispatches every node to v.
func Visit(c Component, v Visitor) error {
	return Walk(c, func(c Component, _ int) error {
		return c.Accept(v)
	})
}
