package glowsphere

// Model represents a renderable object in a Scene: a Node carrying a Mesh and the Material it's drawn with.
type Model struct {
	*Node
	Mesh     *Mesh
	Material *Material
	Visible  bool
}

// NewModel creates a new, visible Model with the given name, mesh, and material.
func NewModel(name string, mesh *Mesh, material *Material) *Model {
	return &Model{
		Node:     NewNode(name),
		Mesh:     mesh,
		Material: material,
		Visible:  true,
	}
}
