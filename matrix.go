package glowsphere

import (
	"math"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 is row-major (i.e. the X axis is matrix[0]),
// and Vectors are multiplied as row vectors, so transforms combine left-to-right in the order they apply.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	vector := Vector{X: x, Y: y, Z: z}.Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*vector.X*vector.X + c
	mat[0][1] = m*vector.X*vector.Y + vector.Z*s
	mat[0][2] = m*vector.Z*vector.X - vector.Y*s

	mat[1][0] = m*vector.X*vector.Y - vector.Z*s
	mat[1][1] = m*vector.Y*vector.Y + c
	mat[1][2] = m*vector.Y*vector.Z + vector.X*s

	mat[2][0] = m*vector.Z*vector.X + vector.Y*s
	mat[2][1] = m*vector.Y*vector.Z - vector.X*s
	mat[2][2] = m*vector.Z*vector.Z + c

	return mat

}

// NewMatrix4RotateFromEuler creates a rotation Matrix4 from the Euler angles (in radians) contained within the Vector.
// The rotation order is XYZ, intrinsic: Z is applied first, then Y, then X, matching the usual web 3D convention.
func NewMatrix4RotateFromEuler(euler Vector) Matrix4 {
	return NewMatrix4Rotate(0, 0, 1, euler.Z).Mult(NewMatrix4Rotate(0, 1, 0, euler.Y)).Mult(NewMatrix4Rotate(1, 0, 0, euler.X))
}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, aspect is the
// width of the view divided by its height, and near and far are the near and far clipping planes.
// The resulting W component of a projected Vector is the view-space depth (-Z).
func NewProjectionPerspective(fovy, aspect, near, far float64) Matrix4 {

	f := 1 / math.Tan(fovy*math.Pi/360)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(far + near) / (far - near), -1},
		{0, 0, -(2 * far * near) / (far - near), 0},
	}

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
func (matrix Matrix4) MultVec(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, giving a vector in homogeneous space.
func (matrix Matrix4) MultVecW(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}

}

// MultDir multiplies the direction provided by the Matrix4, ignoring translation.
func (matrix Matrix4) MultDir(vect Vector) Vector {

	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z,
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z,
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z,
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	newMat := Matrix4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[row][0]*other[0][col] + matrix[row][1]*other[1][col] + matrix[row][2]*other[2][col] + matrix[row][3]*other[3][col]
		}
	}

	return newMat

}

// Equals returns true if the two matrices are equal within a small tolerance.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := 1e-8
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(matrix[row][col]-other[row][col]) > eps {
				return false
			}
		}
	}
	return true
}

// Transposed returns a transposed copy of the Matrix4. For a pure rotation this is also its inverse.
func (matrix Matrix4) Transposed() Matrix4 {
	newMat := Matrix4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			newMat[row][col] = matrix[col][row]
		}
	}
	return newMat
}
