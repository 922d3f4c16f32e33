// Package quarkgl is a small software 3D engine used to draw the runner.
//
// A Scene holds a fixed number of mesh slots and a camera. Meshes are
// placed with a transform and drawn by a Renderer into any Target; the
// RGB565Target writes straight into a hal framebuffer.
//
// Pipeline:
//
//	Scene → Transform → Projection → Near cull → Rasterization → Target.
//
// Math is float32 throughout. The render path does not allocate once the
// renderer has sized its depth buffer.
package quarkgl
