package glowsphere

// Node represents an object that exists in 3D space: a name plus a local transform. Position, Rotation and Scale are plain
// exported fields so that control panels and animation code can bind to (and overwrite) individual components directly.
type Node struct {
	Name     string
	Position Vector // Position in world units.
	Rotation Vector // Rotation as Euler angles in radians, applied in XYZ order (see NewMatrix4RotateFromEuler).
	Scale    Vector // Scale; 1, 1, 1 is the default.
}

// NewNode returns a new Node with the given name, positioned at the origin with no rotation and a scale of 1.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: NewVector(1, 1, 1),
	}
}

// SetLocalPosition sets the Node's position to the x, y, and z values provided.
func (node *Node) SetLocalPosition(x, y, z float64) {
	node.Position = node.Position.Set(x, y, z)
}

// Transform returns the Node's transform, combining its scale, rotation and position (in that order).
func (node *Node) Transform() Matrix4 {
	// S * R * T
	transform := NewMatrix4Scale(node.Scale.X, node.Scale.Y, node.Scale.Z)
	transform = transform.Mult(NewMatrix4RotateFromEuler(node.Rotation))
	transform = transform.Mult(NewMatrix4Translate(node.Position.X, node.Position.Y, node.Position.Z))
	return transform
}

// RotationMatrix returns just the rotational part of the Node's transform.
func (node *Node) RotationMatrix() Matrix4 {
	return NewMatrix4RotateFromEuler(node.Rotation)
}
