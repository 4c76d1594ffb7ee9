// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Command slated runs a slate display server.
//
// In server mode it listens for JSON-RPC clients that push display lists.
// With -demo it renders a system-status scene locally instead and writes
// the presented surface to a PNG, which is handy for checking a setup
// without a client.
//
// Usage:
//
//	slated [-config slated.yaml] [-demo] [-o out.png]
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"gopkg.in/yaml.v3"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/display"
	"github.com/go-slate/slate/font"
	"github.com/go-slate/slate/scene"
	"github.com/go-slate/slate/server"
)

type config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Listen string `yaml:"listen"`

	// Serial, when set, presents frames to a serial LCD instead of the
	// in-memory surface.
	Serial struct {
		Device string `yaml:"device"`
		Baud   int    `yaml:"baud"`
	} `yaml:"serial"`

	Verbose bool `yaml:"verbose"`
}

func defaultConfig() config {
	c := config{
		Width:  320,
		Height: 240,
		Scale:  1,
		Listen: "localhost:7878",
	}
	c.Serial.Baud = 115200
	return c
}

func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func main() {
	configPath := flag.String("config", "", "path to YAML configuration")
	demo := flag.Bool("demo", false, "render a system-status demo scene and exit")
	out := flag.String("o", "slated.png", "output PNG for -demo")
	flag.Parse()

	if err := run(*configPath, *demo, *out); err != nil {
		fmt.Fprintln(os.Stderr, "slated:", err)
		os.Exit(1)
	}
}

func run(configPath string, demo bool, out string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		slate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if s := display.ScaleFromEnv(); s > 1 {
		cfg.Scale = s
	}

	var (
		presenter display.Presenter
		surface   *display.ImagePresenter
	)
	if cfg.Serial.Device != "" {
		p, port, err := display.OpenSerialPresenter(cfg.Serial.Device, cfg.Serial.Baud)
		if err != nil {
			return err
		}
		defer port.Close()
		presenter = p
	} else {
		surface, err = display.NewImagePresenter(cfg.Width, cfg.Height, cfg.Scale)
		if err != nil {
			return err
		}
		presenter = surface
	}

	session, err := display.New(cfg.Width, cfg.Height, display.WithPresenter(presenter))
	if err != nil {
		return err
	}
	defer session.Close()

	if demo {
		return runDemo(session, surface, out)
	}

	l, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	slate.Logger().Info("listening", "addr", cfg.Listen)
	return server.New(session).Serve(l)
}

// runDemo paints a status scene in the style of a small dashboard LCD.
func runDemo(session *display.Session, surface *display.ImagePresenter, out string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	list := statusScene(session)
	if _, err := session.Update(ctx, list); err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	if surface != nil {
		return png.Encode(f, surface.Image())
	}
	img, err := session.Snapshot(ctx)
	if err != nil {
		return err
	}
	return png.Encode(f, img)
}

func statusScene(session *display.Session) *scene.List {
	width, height := session.Size()
	face := font.Default()

	var (
		white = slate.RGB(0xFF, 0xFF, 0xFF)
		blue  = slate.RGB(0x20, 0x40, 0x80)
		dark  = slate.RGB(0x10, 0x10, 0x18)
	)

	lines := []string{"slate display"}
	if info, err := host.Info(); err == nil {
		lines = append(lines, fmt.Sprintf("host: %s", info.Hostname))
		lines = append(lines, fmt.Sprintf("up: %s", (time.Duration(info.Uptime)*time.Second).String()))
	}
	if pcts, err := cpu.Percent(200*time.Millisecond, false); err == nil && len(pcts) > 0 {
		lines = append(lines, fmt.Sprintf("cpu: %5.1f%%", pcts[0]))
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		lines = append(lines, fmt.Sprintf("mem: %5.1f%% of %d MiB", vm.UsedPercent, vm.Total>>20))
	}

	cellH := face.CellHeight()
	prims := make([]scene.Primitive, 0, len(lines)+2)
	for i, line := range lines {
		prims = append(prims, scene.NewText(8, 6+i*(cellH+2), line, face, white, slate.Transparent))
	}
	// Header band behind the first line, backdrop behind everything.
	prims = append(prims,
		scene.NewRect(0, 0, width, cellH+10, blue),
		scene.NewRect(0, 0, width, height, dark),
	)
	return scene.NewList(prims...)
}
