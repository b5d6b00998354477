// Package river generates ribbon meshes from editable control points.
//
// A river is a Path of ControlPoints, each with a position, a half-width
// and a direction. Generation runs in two steps:
//
//   - Refine inserts SmoothingLevel points between each pair of control
//     points, sampled on a cubic Bezier whose handles follow the points'
//     directions.
//   - BuildMesh walks the refined points and emits a quad strip: a left and
//     a right vertex per point, upward normals, UVs that run along each
//     edge, and two triangles per consecutive pair.
//
// River wraps a Path with the editing operations (Add, Insert, Remove,
// SetPoint) and regenerates the whole mesh after each one:
//
//	r := river.New(vec3.Zero, river.WithSmoothingLevel(3))
//	r.Add(vec3.T{10, 0, 0})
//	r.Add(vec3.T{20, 0, 5})
//	mesh := r.Mesh()
//
// # Coordinate System
//
// Y is up. A control point with the identity direction faces +Z, its right
// axis is +X. The strip is wound so that the right-handed normal of every
// face is +Y.
//
// Sub-packages: intersect picks the strip with rays, riverfile stores
// rivers as TOML, wavefront writes meshes as OBJ and preview draws them
// top-down into a PNG.
package river
