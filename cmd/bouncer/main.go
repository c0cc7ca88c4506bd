package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/bradbev/bouncer/src/asset"
	"github.com/bradbev/bouncer/src/bounce"
	"github.com/bradbev/bouncer/src/host/pnghost"
	"github.com/bradbev/bouncer/src/host/termhost"
	"github.com/bradbev/bouncer/src/host/windowhost"
)

var (
	hostFlag      = flag.String("host", "window", "where to animate: window, term or png")
	contentFlag   = flag.String("content", "./content", "directory scene and font assets are read from")
	sceneFlag     = flag.String("scene", "", "scene asset to load from the content directory (default: built in)")
	debugFlag     = flag.Bool("debug", false, "show the state overlay (window host)")
	framesFlag    = flag.Int("frames", 0, "frames to render (png host, 0 renders one period)")
	outFlag       = flag.String("out", "frames", "output directory (png host)")
	widthFlag     = flag.Int("width", 0, "canvas width (window and png hosts, 0 picks a default)")
	heightFlag    = flag.Int("height", 0, "canvas height (window and png hosts, 0 picks a default)")
	saveSceneFlag = flag.String("save-scene", "", "write the built in scene to this asset path under -content and exit")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bounce.RegisterTypes()
	if err := asset.RegisterFileSystem(os.DirFS(*contentFlag), 0); err != nil {
		return err
	}

	if *saveSceneFlag != "" {
		if err := asset.RegisterWritableFileSystem(asset.NewWritableFS(asset.Path(*contentFlag))); err != nil {
			return err
		}
		return asset.Save(asset.Path(*saveSceneFlag), bounce.DefaultScene())
	}

	scene, err := loadScene()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *hostFlag {
	case "window":
		return windowhost.Run(windowhost.Options{
			Scene:  scene,
			Debug:  *debugFlag,
			Width:  *widthFlag,
			Height: *heightFlag,
		})
	case "term":
		if scene == nil {
			scene = termhost.TerminalScene()
		}
		return termhost.Run(ctx, termhost.Options{Scene: scene})
	case "png":
		n, err := pnghost.Export(ctx, pnghost.Options{
			Scene:  scene,
			Width:  *widthFlag,
			Height: *heightFlag,
			Frames: *framesFlag,
			Output: asset.NewWritableFS(asset.Path(*outFlag)),
		})
		fmt.Printf("wrote %d frames to %s\n", n, *outFlag)
		return err
	}
	return fmt.Errorf("unknown host %q", *hostFlag)
}

// loadScene returns nil when no scene was asked for, leaving each host to
// pick its own default.
func loadScene() (*bounce.Scene, error) {
	if *sceneFlag == "" {
		return nil, nil
	}
	return bounce.LoadScene(asset.Path(*sceneFlag))
}
