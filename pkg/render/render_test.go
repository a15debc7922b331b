package render

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"interstellar/pkg/config"
	"interstellar/pkg/shader"
	"interstellar/pkg/vecmath"
)

func testConfig(width, height int) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Render.Width = width
	cfg.Render.Height = height
	return cfg
}

func setPixel(f *Frame, x, y int, c vecmath.Color) {
	putPixel(f.Row(y)[4*x:], c)
}

func pixelAt(f *Frame, x, y int) [4]uint8 {
	i := 4 * (y*f.Width + x)
	return [4]uint8{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestCamera_PanZoomSpin(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera)

	cam.Pan(1, -1)
	if !near(cam.CenterX, 0.05, 1e-6) || !near(cam.CenterY, -0.05, 1e-6) {
		t.Errorf("Expected pan by one step, got (%v, %v)", cam.CenterX, cam.CenterY)
	}

	// Pan step shrinks with magnification
	cam.Reset()
	cam.Zoom = 2
	cam.Pan(1, 0)
	if !near(cam.CenterX, 0.025, 1e-6) {
		t.Errorf("Expected half step at zoom 2, got %v", cam.CenterX)
	}

	for i := 0; i < 100; i++ {
		cam.ZoomBy(1.1)
	}
	if cam.Zoom != 5 {
		t.Errorf("Expected zoom clamped to 5, got %v", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomBy(1 / 1.1)
	}
	if cam.Zoom != 0.3 {
		t.Errorf("Expected zoom clamped to 0.3, got %v", cam.Zoom)
	}

	for i := 0; i < 1000; i++ {
		cam.Spin(1, 1)
	}
	if cam.Pitch > maxPitch || cam.Yaw < -math.Pi || cam.Yaw >= math.Pi {
		t.Errorf("Spin out of range: yaw %v pitch %v", cam.Yaw, cam.Pitch)
	}

	cam.Reset()
	if cam.Zoom != 1 || cam.CenterX != 0 || cam.Yaw != 0 || cam.Pitch != 0 {
		t.Errorf("Reset left state behind: %+v", cam)
	}
	if !cam.Rotation().ApproxEqual(mgl32.Ident3()) {
		t.Errorf("Expected identity rotation after reset, got %v", cam.Rotation())
	}
}

func TestView_Screen(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera)

	tests := []struct {
		name           string
		width, height  int
		zoom           float32
		x, y           int
		wantNX, wantNY float32
	}{
		{"center", 64, 64, 1, 32, 32, 0, 0},
		{"top left", 64, 64, 1, 0, 0, -1, 1},
		{"zoomed", 64, 64, 2, 0, 0, -0.5, 0.5},
		{"wide", 128, 64, 1, 0, 32, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam.Zoom = tt.zoom
			view := NewView(cam, ViewSettings{Width: tt.width, Height: tt.height, DiskTilt: 0.35})
			nx, ny := view.Screen(tt.x, tt.y)
			if !near(nx, tt.wantNX, 1e-6) || !near(ny, tt.wantNY, 1e-6) {
				t.Errorf("Screen(%d, %d) = (%v, %v), expected (%v, %v)", tt.x, tt.y, nx, ny, tt.wantNX, tt.wantNY)
			}
		})
	}
}

func TestView_SphereCtx(t *testing.T) {
	settings := ViewSettings{Width: 64, Height: 64, T: 1.5, Seed: 0.5, DiskTilt: 0.35}
	cam := NewCamera(config.DefaultConfig().Camera)
	view := NewView(cam, settings)

	if _, ok := view.SphereCtx(0.8, 0.8); ok {
		t.Error("Expected miss outside the silhouette")
	}

	ctx, ok := view.SphereCtx(0, 0)
	if !ok {
		t.Fatal("Expected hit at the center")
	}
	if ctx.N != vecmath.NewVec3(0, 0, 1) || ctx.P != ctx.N {
		t.Errorf("Expected facing normal at center, got N=%v P=%v", ctx.N, ctx.P)
	}
	if ctx.V != vecmath.NewVec3(0, 0, -1) {
		t.Errorf("Expected view direction (0,0,-1), got %v", ctx.V)
	}
	if ctx.T != 1.5 || ctx.Seed != 0.5 {
		t.Errorf("Expected t and seed to pass through, got %v, %v", ctx.T, ctx.Seed)
	}

	// Spinning moves the surface under the pixel but keeps the geometry
	plain, _ := view.SphereCtx(0.3, -0.2)
	cam.Yaw = 1.1
	cam.Pitch = 0.4
	spun, _ := NewView(cam, settings).SphereCtx(0.3, -0.2)

	if near(plain.N.X, spun.N.X, 1e-3) && near(plain.N.Z, spun.N.Z, 1e-3) {
		t.Errorf("Expected spin to change the normal, got %v", spun.N)
	}
	if !near(spun.N.Length(), 1, 1e-5) {
		t.Errorf("Expected unit normal, got length %v", spun.N.Length())
	}
	if !near(plain.N.Dot(plain.V.Neg()), spun.N.Dot(spun.V.Neg()), 1e-5) {
		t.Error("Expected rim geometry to be unchanged by spin")
	}
	if !near(plain.N.Dot(plain.L0), spun.N.Dot(spun.L0), 1e-5) {
		t.Error("Expected lighting to be unchanged by spin")
	}
}

func TestView_DiskCtx(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera)
	view := NewView(cam, ViewSettings{Width: 64, Height: 64, DiskTilt: 0.35, DiskExtent: 6})

	ctx := view.DiskCtx(0.25, 0.5)
	sinTilt := float32(math.Sin(0.35))

	if !near(ctx.P.X, 1.5, 1e-5) || ctx.P.Y != 0 || !near(ctx.P.Z, 3/sinTilt, 1e-4) {
		t.Errorf("Unexpected disk position %v", ctx.P)
	}
	if ctx.N != vecmath.NewVec3(0, 1, 0) {
		t.Errorf("Expected disk normal +Y, got %v", ctx.N)
	}
	if ndv := ctx.N.Dot(ctx.V.Neg()); !near(ndv, sinTilt, 1e-5) {
		t.Errorf("Expected n.(-v) = sin(tilt), got %v", ndv)
	}
}

func TestView_HoleCtx(t *testing.T) {
	cam := NewCamera(config.DefaultConfig().Camera)
	view := NewView(cam, ViewSettings{Width: 64, Height: 64, DiskTilt: 0.35, DiskExtent: 6, HoleRadius: 1})

	tests := []struct {
		name        string
		nx, ny      float32
		wantOK      bool
		wantInFront bool
	}{
		{"center", 0, 0, true, false},
		{"outside", 0.5, 0, false, false},
		{"near side", 0, -0.9 / 6, true, true},
		{"far side", 0, 0.9 / 6, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, inFront, ok := view.HoleCtx(tt.nx, tt.ny)
			if ok != tt.wantOK || inFront != tt.wantInFront {
				t.Errorf("HoleCtx(%v, %v) = (inFront %v, ok %v), expected (%v, %v)",
					tt.nx, tt.ny, inFront, ok, tt.wantInFront, tt.wantOK)
			}
		})
	}

	noHole := NewView(cam, ViewSettings{Width: 64, Height: 64, DiskTilt: 0.35, DiskExtent: 6})
	if _, _, ok := noHole.HoleCtx(0, 0); ok {
		t.Error("Expected no horizon with zero radius")
	}
}

func TestFrame_Packing(t *testing.T) {
	f := NewFrame(4, 3)

	if got := pixelAt(f, 3, 2); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("Expected opaque black, got %v", got)
	}

	setPixel(f, 1, 2, vecmath.RGB(1, 0.5, 2))
	if got := pixelAt(f, 1, 2); got != [4]uint8{255, 127, 255, 255} {
		t.Errorf("Expected truncated packing, got %v", got)
	}

	img := f.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("Unexpected image bounds %v", img.Bounds())
	}
	if c := img.RGBAAt(1, 2); c.R != 255 || c.G != 127 || c.A != 255 {
		t.Errorf("Image does not share the frame buffer: %v", c)
	}
}

func TestTracer_SphereFrame(t *testing.T) {
	cfg := testConfig(64, 64)
	tracer := NewTracer(cfg, NewCamera(cfg.Camera))

	for _, body := range []shader.Body{shader.Rocky, shader.GasGiant, shader.Ice} {
		t.Run(body.String(), func(t *testing.T) {
			frame := tracer.RenderFrame(body, 0.5)

			if got := pixelAt(frame, 0, 0); got != [4]uint8{0, 0, 0, 255} {
				t.Errorf("Expected black background in the corner, got %v", got)
			}
			if got := pixelAt(frame, 32, 32); got[0] == 0 && got[1] == 0 && got[2] == 0 {
				t.Errorf("Expected a lit body at the center, got %v", got)
			}

			first := append([]uint8(nil), frame.Pix...)
			again := tracer.RenderFrame(body, 0.5)
			if !bytes.Equal(first, again.Pix) {
				t.Error("Expected identical frames for identical inputs")
			}
		})
	}
}

func TestTracer_DiskScene(t *testing.T) {
	cfg := testConfig(64, 64)
	tracer := NewTracer(cfg, NewCamera(cfg.Camera))
	frame := tracer.RenderFrame(shader.AccretionDisk, 0)

	if got := pixelAt(frame, 32, 32); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("Expected the horizon to be black at the center, got %v", got)
	}
	// x=45 lands at r ~ 2.4 on the disk axis
	if got := pixelAt(frame, 45, 32); got[0] == 0 {
		t.Errorf("Expected the disk to glow between rin and rout, got %v", got)
	}
}

func TestTracer_UpdateResolution(t *testing.T) {
	cfg := testConfig(16, 8)
	tracer := NewTracer(cfg, NewCamera(cfg.Camera))

	tracer.UpdateResolution(0, 10)
	if w, h := tracer.Resolution(); w != 16 || h != 8 {
		t.Errorf("Expected invalid size to be ignored, got %dx%d", w, h)
	}

	tracer.UpdateResolution(20, 10)
	frame := tracer.RenderFrame(shader.Ice, 0)
	if frame.Width != 20 || frame.Height != 10 || len(frame.Pix) != 4*20*10 {
		t.Errorf("Unexpected frame %dx%d with %d bytes", frame.Width, frame.Height, len(frame.Pix))
	}
}

func TestTracer_SetParams(t *testing.T) {
	cfg := testConfig(32, 32)
	tracer := NewTracer(cfg, NewCamera(cfg.Camera))

	params := shader.DefaultParams()
	black := vecmath.Color{}
	params.Common.Cool = black
	params.Ice.Ice, params.Ice.Snow, params.Ice.Crack = black, black, black
	tracer.SetParams(params)

	frame := tracer.RenderFrame(shader.Ice, 0)
	for i := 0; i < len(frame.Pix); i += 4 {
		if frame.Pix[i] != 0 || frame.Pix[i+1] != 0 || frame.Pix[i+2] != 0 {
			t.Fatalf("Expected an all-black ice world, pixel %d is %v", i/4, frame.Pix[i:i+4])
		}
	}
}

func TestSnapshot_SavePNG(t *testing.T) {
	cfg := testConfig(32, 24)
	img := RenderSnapshot(cfg, shader.GasGiant, 2)

	dir := filepath.Join(t.TempDir(), "shots")
	path, err := SavePNG(img, dir, shader.GasGiant)
	if err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "gas-giant_") || filepath.Ext(path) != ".png" {
		t.Errorf("Unexpected snapshot name %q", path)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Opening snapshot: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding snapshot: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}
