// Package main is the offline bake tool: it converts an equirectangular
// panorama into an environment cubemap and precomputes its image-based
// lighting bundle.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ember3d/ember/internal/config"
	"github.com/ember3d/ember/internal/engine/cubemap"
	"github.com/ember3d/ember/internal/engine/ibl"
	"github.com/ember3d/ember/internal/engine/window"
	"github.com/ember3d/ember/internal/logger"
)

var (
	flagPanorama = flag.String("panorama", "", "Equirectangular panorama to bake (.hdr, .png, .jpg)")
	flagOut      = flag.String("out", "", "Output bundle directory (defaults to the configured bundle dir)")
	flagVerify   = flag.Bool("verify", false, "Load an existing bundle instead of baking")
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

	out := *flagOut
	if out == "" {
		out = cfg.IBL.BundleDir
	}

	// The bake needs a GL context but no visible surface.
	win, err := window.New(window.Config{
		Title:  "embertool",
		Width:  64,
		Height: 64,
		Hidden: true,
	})
	if err != nil {
		logger.Error("failed to create GL context", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	if *flagVerify {
		if err := verify(out, cfg.IBL.Extension); err != nil {
			logger.Error("bundle verification failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if *flagPanorama == "" {
		fmt.Fprintln(os.Stderr, "usage: embertool -panorama <file> [-out <dir>]")
		os.Exit(2)
	}
	if err := bake(cfg, *flagPanorama, out); err != nil {
		logger.Error("bake failed", zap.Error(err))
		os.Exit(1)
	}
}

func bake(cfg *config.Config, panorama, out string) error {
	ext := cfg.IBL.Extension
	cubemapDir := filepath.Join(out, "cubemap")

	logger.Info("baking environment",
		zap.String("panorama", panorama),
		zap.String("out", out),
		zap.Int("cubemap_size", cfg.IBL.CubemapSize),
		zap.Int("prefilter_size", cfg.IBL.PrefilterSize),
		zap.Int("prefilter_levels", cfg.IBL.PrefilterLevels),
	)

	r := ibl.NewCubeRenderer()
	defer r.Destroy()

	eq, err := ibl.NewEquirect()
	if err != nil {
		return err
	}
	defer eq.Destroy()
	eq.Size = int32(cfg.IBL.CubemapSize)

	if err := eq.ComputeFromFile(panorama, cubemapDir, ext, r); err != nil {
		return fmt.Errorf("equirect conversion: %w", err)
	}
	logger.Info("environment cubemap written", zap.String("dir", cubemapDir))

	env, err := cubemap.LoadDir(cubemapDir, ext, false)
	if err != nil {
		return fmt.Errorf("reload environment: %w", err)
	}
	defer env.Destroy()

	opts := ibl.Options{
		PrefilterSize:   int32(cfg.IBL.PrefilterSize),
		PrefilterLevels: int32(cfg.IBL.PrefilterLevels),
	}
	if err := ibl.Generate(env, out, ext, opts); err != nil {
		return err
	}
	logger.Info("bundle complete", zap.String("dir", out))
	return nil
}

func verify(dir, ext string) error {
	bundle, err := ibl.LoadDir(dir, ext)
	if err != nil {
		return err
	}
	defer bundle.Destroy()

	logger.Info("bundle loaded",
		zap.String("dir", dir),
		zap.Int32("irradiance_size", bundle.Irradiance.Size()),
		zap.Int32("prefilter_size", bundle.Prefilter.Size()),
		zap.Int32("prefilter_levels", bundle.Prefilter.MipLevels()),
	)
	return nil
}
