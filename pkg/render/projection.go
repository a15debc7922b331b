package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"interstellar/pkg/shader"
	"interstellar/pkg/vecmath"
)

// minTilt keeps the disk from collapsing to a line when seen edge-on
const minTilt float32 = 0.05

var (
	viewDir   = vecmath.NewVec3(0, 0, -1)
	keyLight  = vecmath.NewVec3(0, 0.15, 1).Normalized()
	backLight = vecmath.NewVec3(0, 0.15, -1).Normalized()
	diskUp    = vecmath.NewVec3(0, 1, 0)
)

// View is the projection state shared by every pixel of one frame
type View struct {
	Width, Height int
	Aspect        float32

	CenterX, CenterY float32
	Zoom             float32

	T    float32
	Seed float32

	// Sphere mode, already in the body's frame
	rot       mgl32.Mat3
	v, l0, l1 vecmath.Vec3

	// Disk mode
	diskRot    mgl32.Mat3
	sinTilt    float32
	cosTilt    float32
	diskV      vecmath.Vec3
	diskExtent float32
	holeRadius float32
}

// ViewSettings carries the scene-level inputs a View needs beyond the camera
type ViewSettings struct {
	Width, Height int
	T, Seed       float32
	DiskTilt      float32
	DiskExtent    float32
	HoleRadius    float32
}

// NewView snapshots the camera and settings for one frame
func NewView(cam *Camera, s ViewSettings) *View {
	v := &View{
		Width:      s.Width,
		Height:     s.Height,
		Aspect:     float32(s.Width) / float32(max(s.Height, 1)),
		CenterX:    cam.CenterX,
		CenterY:    cam.CenterY,
		Zoom:       cam.Zoom,
		T:          s.T,
		Seed:       s.Seed,
		rot:        cam.Rotation(),
		diskRot:    mgl32.Rotate3DY(cam.Yaw),
		diskExtent: s.DiskExtent,
		holeRadius: s.HoleRadius,
	}

	v.v = rotate(v.rot, viewDir)
	v.l0 = rotate(v.rot, keyLight)
	v.l1 = rotate(v.rot, backLight)

	tilt := clampf(s.DiskTilt+cam.Pitch, minTilt, math32.Pi/2)
	v.sinTilt, v.cosTilt = math32.Sincos(tilt)
	v.diskV = vecmath.NewVec3(0, -v.sinTilt, v.cosTilt)

	return v
}

// Screen maps a pixel to view coordinates after pan and zoom. y grows upward.
func (v *View) Screen(x, y int) (nx, ny float32) {
	sx := (float32(x)/float32(v.Width)*2 - 1) * v.Aspect
	sy := 1 - float32(y)/float32(v.Height)*2
	return (sx - v.CenterX) / v.Zoom, (sy - v.CenterY) / v.Zoom
}

// SphereCtx builds the sample for a unit sphere facing the viewer. ok is
// false outside the silhouette.
func (v *View) SphereCtx(nx, ny float32) (ctx shader.ShadingCtx, ok bool) {
	r2 := nx*nx + ny*ny
	if r2 > 1 {
		return ctx, false
	}

	n := rotate(v.rot, vecmath.NewVec3(nx, ny, math32.Sqrt(1-r2)).Normalized())
	return shader.ShadingCtx{
		P:    n,
		N:    n,
		V:    v.v,
		L0:   v.l0,
		L1:   v.l1,
		T:    v.T,
		Seed: v.Seed,
	}, true
}

// DiskCtx builds the sample on the XZ disk plane under (nx, ny)
func (v *View) DiskCtx(nx, ny float32) shader.ShadingCtx {
	p := vecmath.NewVec3(nx*v.diskExtent, 0, ny*v.diskExtent/v.sinTilt)
	return shader.ShadingCtx{
		P:    rotate(v.diskRot, p),
		N:    diskUp,
		V:    v.diskV,
		L0:   keyLight,
		L1:   backLight,
		T:    v.T,
		Seed: v.Seed,
	}
}

// HoleCtx builds the sample on the horizon sphere drawn over the disk.
// inFront reports whether the disk plane is nearer to the viewer than the
// sphere surface at this pixel. ok is false outside the horizon.
func (v *View) HoleCtx(nx, ny float32) (ctx shader.ShadingCtx, inFront, ok bool) {
	if v.holeRadius <= 0 {
		return ctx, false, false
	}

	// Disk units, then horizon units
	dx, dy := nx*v.diskExtent, ny*v.diskExtent
	hx, hy := dx/v.holeRadius, dy/v.holeRadius
	r2 := hx*hx + hy*hy
	if r2 > 1 {
		return ctx, false, false
	}

	// Depth along the view ray, negative toward the viewer
	sphereDepth := -v.holeRadius * math32.Sqrt(1-r2)
	diskDepth := dy * v.cosTilt / v.sinTilt

	n := vecmath.NewVec3(hx, hy, math32.Sqrt(1-r2)).Normalized()
	return shader.ShadingCtx{
		P:    n,
		N:    n,
		V:    viewDir,
		L0:   keyLight,
		L1:   backLight,
		T:    v.T,
		Seed: v.Seed,
	}, diskDepth < sphereDepth, true
}

func rotate(m mgl32.Mat3, p vecmath.Vec3) vecmath.Vec3 {
	r := m.Mul3x1(mgl32.Vec3{p.X, p.Y, p.Z})
	return vecmath.NewVec3(r[0], r[1], r[2])
}
