// Package quarkgl provides a minimal, predictable software 3D engine.
//
// It draws the placed model, the placement reticle and the simulated floor
// into a caller-provided Target. It is not a game engine and does not provide
// a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Rasterization → Frame output.
//
// Matrices are column-major float32, the same layout tracked device poses
// use, so a pose can be copied into a Mat4 without conversion.
package quarkgl
