package glowsphere

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/qmuntal/gltf/modeler"
)

const lightsPunctual = "KHR_lights_punctual"

// gltfRotation converts XYZ Euler angles to the [x, y, z, w] quaternion glTF expects.
func gltfRotation(euler Vector) [4]float64 {
	c1, s1 := math.Cos(euler.X/2), math.Sin(euler.X/2)
	c2, s2 := math.Cos(euler.Y/2), math.Sin(euler.Y/2)
	c3, s3 := math.Cos(euler.Z/2), math.Sin(euler.Z/2)
	return [4]float64{
		s1*c2*c3 + c1*s2*s3,
		c1*s2*c3 - s1*c2*s3,
		c1*c2*s3 + s1*s2*c3,
		c1*c2*c3 - s1*s2*s3,
	}
}

func gltfNode(node *Node) *gltf.Node {
	return &gltf.Node{
		Name:        node.Name,
		Translation: [3]float64{node.Position.X, node.Position.Y, node.Position.Z},
		Rotation:    gltfRotation(node.Rotation),
		Scale:       [3]float64{node.Scale.X, node.Scale.Y, node.Scale.Z},
	}
}

func writeModel(doc *gltf.Document, model *Model) (*gltf.Node, error) {

	mesh := model.Mesh

	positions := make([][3]float32, len(mesh.Positions))
	normals := make([][3]float32, len(mesh.BaseNormals))
	tangents := make([][4]float32, len(mesh.Tangents))
	uvs := make([][2]float32, len(mesh.UVs))

	for i, p := range mesh.Positions {
		positions[i] = [3]float32{float32(p.X), float32(p.Y), float32(p.Z)}
	}
	for i, n := range mesh.BaseNormals {
		normals[i] = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
	}
	for i, t := range mesh.Tangents {
		tangents[i] = [4]float32{float32(t.X), float32(t.Y), float32(t.Z), 1}
	}
	for i, uv := range mesh.UVs {
		// glTF puts V = 0 at the top of a texture.
		uvs[i] = [2]float32{float32(uv.X), float32(1 - uv.Y)}
	}

	attributes := gltf.PrimitiveAttributes{
		gltf.POSITION:   modeler.WritePosition(doc, positions),
		gltf.NORMAL:     modeler.WriteNormal(doc, normals),
		gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
	}
	if len(tangents) > 0 {
		attributes[gltf.TANGENT] = modeler.WriteTangent(doc, tangents)
	}

	primitive := &gltf.Primitive{
		Attributes: attributes,
		Indices:    gltf.Index(modeler.WriteIndices(doc, mesh.Indices)),
		Mode:       gltf.PrimitiveTriangles,
	}

	if mat := model.Material; mat != nil {

		c := mat.Color
		gltfMat := &gltf.Material{
			Name: mat.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
				MetallicFactor:  gltf.Float(mat.Metalness),
				RoughnessFactor: gltf.Float(mat.Roughness),
			},
		}

		if mat.NormalMap != nil {

			encoded := bytes.Buffer{}
			if err := png.Encode(&encoded, mat.NormalMap); err != nil {
				return nil, fmt.Errorf("encoding normal map: %w", err)
			}

			imageIndex, err := modeler.WriteImage(doc, mat.Name+" normal map", "image/png", &encoded)
			if err != nil {
				return nil, fmt.Errorf("writing normal map: %w", err)
			}

			doc.Textures = append(doc.Textures, &gltf.Texture{Source: gltf.Index(imageIndex)})
			gltfMat.NormalTexture = &gltf.NormalTexture{
				Index: gltf.Index(len(doc.Textures) - 1),
				Scale: gltf.Float(mat.NormalScale),
			}

		}

		doc.Materials = append(doc.Materials, gltfMat)
		primitive.Material = gltf.Index(len(doc.Materials) - 1)

	}

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       mesh.Name,
		Primitives: []*gltf.Primitive{primitive},
	})

	node := gltfNode(model.Node)
	node.Mesh = gltf.Index(len(doc.Meshes) - 1)
	return node, nil

}

// NewGLTFDocument converts the DemoScene's current state (sphere, lights, and camera) into a glTF document. The lights are written
// using the KHR_lights_punctual extension.
func NewGLTFDocument(ds *DemoScene) (*gltf.Document, error) {

	doc := gltf.NewDocument()
	if len(doc.Scenes) == 0 {
		doc.Scenes = append(doc.Scenes, &gltf.Scene{})
		doc.Scene = gltf.Index(0)
	}
	doc.Scenes[0].Name = ds.Scene.Name

	addNode := func(node *gltf.Node) {
		doc.Nodes = append(doc.Nodes, node)
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	for _, model := range ds.Scene.Models {
		node, err := writeModel(doc, model)
		if err != nil {
			return nil, fmt.Errorf("exporting %s: %w", model.Name, err)
		}
		addNode(node)
	}

	lights := lightspunctual.Lights{}

	for _, point := range ds.Scene.PointLights() {
		light := &lightspunctual.Light{
			Name:      point.Name,
			Type:      lightspunctual.TypePoint,
			Color:     &[3]float64{float64(point.Color.R), float64(point.Color.G), float64(point.Color.B)},
			Intensity: gltf.Float(point.Energy),
		}
		if point.Distance > 0 {
			light.Range = gltf.Float(point.Distance)
		}
		lights = append(lights, light)

		node := gltfNode(point.Node)
		node.Extensions = gltf.Extensions{lightsPunctual: lightspunctual.LightIndex(len(lights) - 1)}
		addNode(node)
	}

	if len(lights) > 0 {
		doc.Extensions = gltf.Extensions{lightsPunctual: lights}
		doc.ExtensionsUsed = append(doc.ExtensionsUsed, lightsPunctual)
	}

	if camera := ds.Camera; camera != nil {
		far := camera.Far()
		aspect := camera.Aspect()
		doc.Cameras = append(doc.Cameras, &gltf.Camera{
			Name: camera.Name,
			Perspective: &gltf.Perspective{
				AspectRatio: &aspect,
				Yfov:        camera.FieldOfView() * math.Pi / 180,
				Znear:       camera.Near(),
				Zfar:        &far,
			},
		})
		node := gltfNode(camera.Node)
		node.Camera = gltf.Index(len(doc.Cameras) - 1)
		addNode(node)
	}

	return doc, nil

}

// ExportGLB writes the DemoScene to w as a binary glTF (.glb) file.
func ExportGLB(w io.Writer, ds *DemoScene) error {
	doc, err := NewGLTFDocument(ds)
	if err != nil {
		return err
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding glb: %w", err)
	}
	return nil
}

// ExportGLBFile writes the DemoScene to a binary glTF file at the given path, replacing any file already there.
func ExportGLBFile(path string, ds *DemoScene) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()
	return ExportGLB(file, ds)
}
