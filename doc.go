// Package tube extrudes circular tubes along piecewise cubic Bézier curves in
// 3D, producing triangle meshes. It was designed for interactive modeling
// tools, where a user edits a curve's knots and the tube is rebuilt after
// every edit.
//
// # Knots and splines
//
// A [Knot] is a control point of the curve. It carries a position, an incoming
// and an outgoing tangent handle (stored as absolute points) and a twist
// [Rotation]. Consecutive knots are connected by cubic Béziers; see [Segment]
// and [CubicPosition]. A [Spline] is an ordered list of knots that is either
// open or closed.
//
// Editing one of a knot's tangents can update the other one according to a
// [TangentMode]: [Free] tangents are independent, [Aligned] tangents share a
// length and [Mirrored] tangents are exact reflections of each other. See
// [Enforce].
//
// # Extrusion
//
// [Extrude] samples a spline at a fixed number of columns per segment,
// orients a ring of vertices at every sample and connects consecutive rings
// with quads. The steps are available individually:
//
//   - [Spline.Sample] produces positions and interpolated twists.
//   - [RingRotation] orients a ring along the polyline of samples. It averages
//     the incoming and outgoing directions rather than transporting a frame
//     along the curve; twist is the caller's to control.
//   - [Assemble] builds the [Mesh].
//
// Subdivision counts are always supplied by the caller, not derived from the
// curve's shape.
//
// # Meshes
//
// A [Mesh] is a position buffer plus a list of [Face] values, each a quad
// split into two triangles. Every segment of the tube has rings of its own and
// every side of a ring has its own pair of vertices, so faces never share
// vertices. Computing normals from smoothing groups, texture coordinates and
// uploading to a GPU are left to the consumer of the mesh. [Mesh.WriteOBJ]
// exports meshes for inspection.
//
// # Degenerate input
//
// No function in this package fails on geometric input. Fewer than two knots
// produce an empty mesh, out-of-range parameters are clamped (see [Params])
// and rings whose direction is undefined or parallel to [Up] use the identity
// rotation. Clamping and degenerate frames are reported at debug level to
// the logger configured with [SetLogger].
//
// # Concurrency
//
// All functions are safe for concurrent use, as long as the knots passed to
// them are not modified concurrently.
package tube
