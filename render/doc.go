// Package render is a small, predictable software 3D core for shaderplay.
//
// It owns the pieces of the demo that do not need a display: camera math,
// procedural images, plane meshes, vertex projection and a textured
// rasterizer that draws into a caller-provided Target.
//
// Pipeline (fixed):
//
//	Mesh → Model/View/Projection → Clip → Rasterization → Target.
//
// GPU backends reuse Project and let the hardware rasterize; the headless
// backend uses Renderer directly.
package render
