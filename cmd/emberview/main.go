// Package main is the demo viewer: it loads a baked lighting bundle and
// renders a grid of PBR spheres under it.
package main

import (
	"fmt"
	gomath "math"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/ember3d/ember/internal/config"
	"github.com/ember3d/ember/internal/engine/camera"
	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/debug"
	"github.com/ember3d/ember/internal/engine/ibl"
	"github.com/ember3d/ember/internal/engine/input"
	"github.com/ember3d/ember/internal/engine/lighting"
	"github.com/ember3d/ember/internal/engine/material"
	"github.com/ember3d/ember/internal/engine/model"
	"github.com/ember3d/ember/internal/engine/render"
	"github.com/ember3d/ember/internal/engine/skybox"
	"github.com/ember3d/ember/internal/engine/window"
	"github.com/ember3d/ember/internal/logger"
	"github.com/ember3d/ember/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	win, err := window.New(window.Config{
		Title:      "ember",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if err := run(cfg, win); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, win *window.Window) error {
	ext := cfg.IBL.Extension
	bundleDir := cfg.IBL.BundleDir

	env, err := cubemap.LoadDir(filepath.Join(bundleDir, "cubemap"), ext, false)
	if err != nil {
		return fmt.Errorf("environment cubemap: %w", err)
	}

	sky, err := skybox.New(env)
	if err != nil {
		return err
	}
	defer sky.Destroy()

	bundle, err := ibl.LoadDir(bundleDir, ext)
	if err != nil {
		// No baked maps on disk; regenerate them from the environment
		// cubemap without the file round-trip.
		logger.Warn("lighting bundle missing, regenerating on GPU", zap.Error(err))
		bundle, err = ibl.GenerateGPU(env, ibl.Options{
			PrefilterSize:   int32(cfg.IBL.PrefilterSize),
			PrefilterLevels: int32(cfg.IBL.PrefilterLevels),
		})
		if err != nil {
			return fmt.Errorf("lighting bundle: %w", err)
		}
	}
	sky.ApplyIBL(bundle)

	spheres, err := sphereGrid()
	if err != nil {
		return err
	}
	defer func() {
		for _, s := range spheres {
			s.Destroy()
		}
	}()

	lights := lighting.NewLights()
	lights.Add(math.Vec3{X: -10, Y: 10, Z: 10}, math.Vec3{X: 300, Y: 300, Z: 300})

	fovy := float32(float64(cfg.Graphics.FOV) * gomath.Pi / 180)
	cam := camera.New(fovy, float32(cfg.Graphics.Width), float32(cfg.Graphics.Height))

	renderer := render.NewRenderer()
	in := input.New()
	shots := debug.NewScreenshotCapture("screenshots", "ember")

	var angle float32
	last := sdl.GetTicks64()

	for {
		if in.Update() || in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			break
		}

		now := sdl.GetTicks64()
		dt := float32(now-last) / 1000
		last = now

		switch {
		case in.IsKeyDown(sdl.SCANCODE_LEFT):
			angle -= dt
		case in.IsKeyDown(sdl.SCANCODE_RIGHT):
			angle += dt
		default:
			angle += dt * 0.2
		}

		w, h := win.Size()
		if r := in.Resized(); r != nil {
			w, h = r.Width, r.Height
		}
		cam.SetSize(float32(w), float32(h))

		screen := render.Screen{Width: int32(w), Height: int32(h)}
		screen.Bind()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		q := renderer.BeginScene()
		q.SetCamera(cam)
		q.SetCameraPos(math.Vec3{Z: -18})
		q.SetCameraRot(math.Vec3{Y: angle})
		q.SetLights(lights)

		if err := q.SetSkybox(sky); err != nil {
			return err
		}
		for _, s := range spheres {
			if err := s.Render(q); err != nil {
				return err
			}
		}

		triangles, err := q.Finish(screen)
		if err != nil {
			return err
		}
		renderer.EndScene(triangles)

		if in.IsKeyPressed(sdl.SCANCODE_F12) {
			takeScreenshot(shots, w, h)
		}

		win.SwapBuffers()
	}

	logger.Info("viewer closed", zap.Int32("last_frame_triangles", renderer.Polygons()))
	return nil
}

func takeScreenshot(shots *debug.ScreenshotCapture, w, h int) {
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := shots.Capture(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// sphereGrid builds a 5x5 grid sweeping metallic down and roughness
// across, the classic material ball chart. The PBR program is compiled
// once; each sphere gets a clone with its own textures.
func sphereGrid() ([]*model.PbrModel, error) {
	const rows, cols = 5, 5
	verts, indices := render.UVSphere(1, 32, 32)

	proto, err := material.NewPBR(nil)
	if err != nil {
		return nil, err
	}

	var spheres []*model.PbrModel
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			roughness := float32(col) / float32(cols-1)
			if roughness < 0.05 {
				roughness = 0.05
			}
			mat := proto.Clone().(*material.PBR)
			mat.Textures = material.TexturesFromParams(material.PBRParams{
				Albedo:    math.Vec3{X: 0.5, Y: 0, Z: 0},
				Metallic:  float32(row) / float32(rows-1),
				Roughness: roughness,
				AO:        1,
			})

			m := model.FromMesh(render.NewMesh(verts, indices), mat)
			m.SetPosition(math.Vec3{
				X: float32(col-cols/2) * 2.5,
				Y: float32(row-rows/2) * 2.5,
			})
			spheres = append(spheres, m)
		}
	}
	return spheres, nil
}
