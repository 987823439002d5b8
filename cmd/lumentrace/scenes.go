package main

import (
	"fmt"

	"github.com/rjstrand/lumentrace/pkg/scene"
	"github.com/urfave/cli"
)

// sceneNames lists the built-in scenes in a fixed order.
var sceneNames = []string{"cornell", "default"}

// buildScene constructs one of the built-in demo scenes by name.
func buildScene(name string) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene()
	case "default":
		return scene.NewDefaultScene()
	default:
		return nil, fmt.Errorf("lumentrace: unknown scene %q", name)
	}
}

func listScenesAction(ctx *cli.Context) error {
	for _, name := range sceneNames {
		fmt.Println(name)
	}
	return nil
}
