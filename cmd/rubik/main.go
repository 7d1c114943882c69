// rubik - CLI application for scrambling, turning and inspecting a Rubik's cube.
package main

import (
	"github.com/SeamusWaldron/rubik_engine/internal/cli"
)

func main() {
	cli.Execute()
}
