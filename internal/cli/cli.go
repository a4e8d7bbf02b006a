// Package cli is the shaderplay command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/signal"

	"shaderplay/app"
	"shaderplay/hal"
	"shaderplay/internal/buildinfo"
)

// WindowRunner opens a window and drives the program built on its device
// until the window closes.
type WindowRunner func(newProgram func(hal.Device) (hal.Program, error)) error

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer, runWindow WindowRunner) int {
	var (
		cfgPath string
		hcfg    hal.HeadlessConfig
		out     string
		version bool
	)
	fs := flag.NewFlagSet("shaderplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgPath, "config", "", "TOML file overriding the built-in settings.")
	fs.BoolVar(&hcfg.Enabled, "headless", false, "Render in software without a window.")
	fs.Uint64Var(&hcfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = until interrupted).")
	fs.BoolVar(&hcfg.Wireframe, "wireframe", false, "Rasterize mesh edges only in headless mode.")
	fs.BoolVar(&hcfg.Unpaced, "unpaced", false, "Ignore the FPS ceiling in headless mode.")
	fs.StringVar(&out, "out", "", "Write the last headless frame to this PNG file.")
	fs.BoolVar(&version, "version", false, "Print the build version and exit.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if version {
		fmt.Fprintln(stdout, buildinfo.Long())
		return 0
	}

	if err := start(cfgPath, hcfg, out, stdout, runWindow); err != nil {
		fmt.Fprintln(stderr, "shaderplay:", err)
		return 1
	}
	return 0
}

func start(cfgPath string, hcfg hal.HeadlessConfig, out string, stdout io.Writer, runWindow WindowRunner) error {
	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := hal.NewLogger(stdout)
	log.WriteLineString("shaderplay " + buildinfo.Short())

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		dev := hal.NewHeadless(ctx, hcfg)
		if err := app.Run(dev, cfg, log); err != nil {
			return err
		}
		if out != "" {
			return writePNG(out, dev.Screen())
		}
		return nil
	}

	if runWindow == nil {
		return errors.New("no window support in this build")
	}
	return runWindow(func(d hal.Device) (hal.Program, error) {
		return app.New(d, cfg, log)
	})
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
