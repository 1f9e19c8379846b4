package glowsphere

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Mesh represents indexed triangle geometry. Vertex data is stored as parallel slices; Normals are the normals used for
// lighting and may be perturbed by a normal map, while BaseNormals always hold the geometric normals.
type Mesh struct {
	Name        string
	Positions   []Vector
	BaseNormals []Vector
	Normals     []Vector
	Tangents    []Vector
	UVs         []Vector // U is stored in X, V in Y. V = 1 is the top of a texture.
	Indices     []uint16

	// GridWidth and GridHeight are the number of vertex columns and rows when the mesh was generated from a UV grid
	// (as spheres are); they're 0 otherwise.
	GridWidth, GridHeight int
}

// VertexCount returns the number of vertices in the Mesh.
func (mesh *Mesh) VertexCount() int {
	return len(mesh.Positions)
}

// TriangleCount returns the number of triangles in the Mesh.
func (mesh *Mesh) TriangleCount() int {
	return len(mesh.Indices) / 3
}

// MaxMeshVertices is the most vertices a Mesh can index with its 16-bit indices.
const MaxMeshVertices = math.MaxUint16 + 1

// fitSphereSegments shrinks the segment counts, keeping roughly their ratio, until the sphere's vertex grid fits in MaxMeshVertices.
func fitSphereSegments(widthSegments, heightSegments int) (int, int) {

	if (widthSegments+1)*(heightSegments+1) <= MaxMeshVertices {
		return widthSegments, heightSegments
	}

	ow, oh := widthSegments, heightSegments
	scale := math.Sqrt(MaxMeshVertices / (float64(widthSegments+1) * float64(heightSegments+1)))
	widthSegments = max(3, int(float64(widthSegments)*scale))
	heightSegments = max(2, int(float64(heightSegments)*scale))

	for (widthSegments+1)*(heightSegments+1) > MaxMeshVertices {
		if widthSegments*oh >= heightSegments*ow && widthSegments > 3 {
			widthSegments--
		} else {
			heightSegments--
		}
	}

	return widthSegments, heightSegments

}

// NewSphereMesh creates a UV sphere of the given radius, with widthSegments around the equator and heightSegments from pole to pole.
// The topology (vertex order, UV layout, and the skipped degenerate triangles at the poles) matches the common web 3D sphere layout,
// so normal maps authored for it line up. Segment counts too large for 16-bit indices are scaled down to fit.
func NewSphereMesh(radius float64, widthSegments, heightSegments int) *Mesh {

	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)
	widthSegments, heightSegments = fitSphereSegments(widthSegments, heightSegments)

	mesh := &Mesh{
		Name:       "Sphere",
		GridWidth:  widthSegments + 1,
		GridHeight: heightSegments + 1,
	}

	grid := make([][]uint16, 0, heightSegments+1)
	index := uint16(0)

	for iy := 0; iy <= heightSegments; iy++ {

		row := make([]uint16, 0, widthSegments+1)

		v := float64(iy) / float64(heightSegments)

		// Pole vertices are shared by a fan of triangles, so their U is nudged to the middle of each segment
		uOffset := 0.0
		if iy == 0 {
			uOffset = 0.5 / float64(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float64(widthSegments)
		}

		theta := v * math.Pi
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)

		for ix := 0; ix <= widthSegments; ix++ {

			u := float64(ix) / float64(widthSegments)

			phi := u * math.Pi * 2
			sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

			pos := NewVector(-radius*cosPhi*sinTheta, radius*cosTheta, radius*sinPhi*sinTheta)

			mesh.Positions = append(mesh.Positions, pos)
			mesh.BaseNormals = append(mesh.BaseNormals, pos.Unit())
			mesh.Tangents = append(mesh.Tangents, NewVector(sinPhi, 0, cosPhi))
			mesh.UVs = append(mesh.UVs, NewVector(u+uOffset, 1-v, 0))

			row = append(row, index)
			index++

		}

		grid = append(grid, row)

	}

	for iy := 0; iy < heightSegments; iy++ {

		for ix := 0; ix < widthSegments; ix++ {

			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				mesh.Indices = append(mesh.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				mesh.Indices = append(mesh.Indices, b, c, d)
			}

		}

	}

	mesh.Normals = append([]Vector(nil), mesh.BaseNormals...)

	return mesh

}

// ApplyNormalMap perturbs the Mesh's lighting normals using the tangent-space normal map provided. The map is resampled to the mesh's
// UV grid first, so each vertex takes the average of the texels around it rather than a single texel. Calling it again replaces the
// previous perturbation; a nil map restores the geometric normals. Meshes that weren't built on a UV grid are sampled at full resolution.
func (mesh *Mesh) ApplyNormalMap(normalMap image.Image, strength float64) {

	copy(mesh.Normals, mesh.BaseNormals)

	if normalMap == nil {
		return
	}

	sampled := normalMap
	if mesh.GridWidth > 0 && mesh.GridHeight > 0 {
		resampled := image.NewNRGBA(image.Rect(0, 0, mesh.GridWidth, mesh.GridHeight))
		draw.BiLinear.Scale(resampled, resampled.Bounds(), normalMap, normalMap.Bounds(), draw.Src, nil)
		sampled = resampled
	}

	bounds := sampled.Bounds()
	w, h := float64(bounds.Dx()-1), float64(bounds.Dy()-1)

	for i, uv := range mesh.UVs {

		u := math.Max(0, math.Min(1, uv.X))
		v := math.Max(0, math.Min(1, uv.Y))

		px := bounds.Min.X + int(math.Round(u*w))
		py := bounds.Min.Y + int(math.Round((1-v)*h))

		tangentSpace := decodeNormal(sampled.At(px, py))
		tangentSpace.X *= strength
		tangentSpace.Y *= strength

		normal := mesh.BaseNormals[i]
		tangent := mesh.Tangents[i]
		bitangent := normal.Cross(tangent)

		mesh.Normals[i] = tangent.Scale(tangentSpace.X).Add(bitangent.Scale(tangentSpace.Y)).Add(normal.Scale(tangentSpace.Z)).Unit()

	}

}

// decodeNormal converts a normal map texel into a tangent-space direction (X right, Y up, Z out of the surface).
func decodeNormal(c color.Color) Vector {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewVector(
		float64(n.R)/255*2-1,
		float64(n.G)/255*2-1,
		float64(n.B)/255*2-1,
	)
}
