// Command orbitshot runs the orbit-and-shoot game in a window.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/phanxgames/orbitshot"
	"github.com/phanxgames/orbitshot/game"
)

type flags struct {
	seed        uint64
	targets     int
	scale       float64
	fps         bool
	debug       bool
	mute        bool
	script      string
	assets      string
	screenshots string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "orbitshot",
		Short: "Shoot the targets orbiting the turret",
		Long: "orbitshot opens a portrait window with a spinning turret. Click or tap to fire;\n" +
			"every shot speeds the turret up and every revolution slows it down again.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed for target layout (0 = time based)")
	cmd.Flags().IntVar(&f.targets, "targets", game.DefaultOptions().Targets, "number of targets on the track")
	cmd.Flags().Float64Var(&f.scale, "scale", 0.5, "window scale relative to the 750x1334 screen")
	cmd.Flags().BoolVar(&f.fps, "fps", false, "show the FPS overlay")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log frame stats to stderr")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "disable sound")
	cmd.Flags().StringVar(&f.assets, "assets", "", "directory with target.png, turret.png and fireline.png (default: generated images)")
	cmd.Flags().StringVar(&f.script, "script", "", "JSON run script to play, exiting when it ends")
	cmd.Flags().StringVar(&f.screenshots, "screenshots", orbitshot.DefaultScreenshotDir, "directory for script screenshots")
	return cmd
}

func run(f flags) error {
	opts := game.DefaultOptions()
	opts.Seed = f.seed
	opts.Targets = f.targets
	opts.AssetDir = f.assets

	scene := orbitshot.NewScene()
	scene.ScreenshotDir = f.screenshots

	g, err := game.New(scene, opts)
	if err != nil {
		return err
	}
	if !f.mute {
		g.SetSoundBank(orbitshot.NewSoundBank(audio.NewContext(int(orbitshot.DefaultSampleRate))))
	}

	if f.script != "" {
		data, err := os.ReadFile(f.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := orbitshot.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
		scene.ExitOnScriptEnd = true
	}

	err = orbitshot.Run(scene, orbitshot.RunConfig{
		Title:       "orbitshot",
		Width:       int(opts.ScreenWidth),
		Height:      int(opts.ScreenHeight),
		WindowScale: f.scale,
		ShowFPS:     f.fps,
		Debug:       f.debug,
	})
	if err != nil {
		return err
	}
	log.Printf("final score: %s", g)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
