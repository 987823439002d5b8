package core

import "github.com/go-gl/mathgl/mgl64"

// Mat4 is a 4x4 matrix, used for camera projection (C10). Defined as its
// own named type rather than importing mgl64 at every call site, so
// pkg/camera is the only package that needs to know the matrix library.
type Mat4 = mgl64.Mat4

// LookAt builds a view matrix from eye toward center with the given up
// vector, delegating to mathgl's implementation.
func LookAt(eye, center, up Vec3) Mat4 {
	return mgl64.LookAtV(
		mgl64.Vec3{eye.X, eye.Y, eye.Z},
		mgl64.Vec3{center.X, center.Y, center.Z},
		mgl64.Vec3{up.X, up.Y, up.Z},
	)
}

// Perspective builds a projection matrix from a vertical field of view
// (radians), aspect ratio, and near/far clip planes.
func Perspective(vfov, aspect, near, far float64) Mat4 {
	return mgl64.Perspective(vfov, aspect, near, far)
}
