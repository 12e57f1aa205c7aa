//go:build !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The SDL viewer requires the sdl build tag and the SDL2 development libraries.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags sdl ./cmd/life-sdl`.")
	os.Exit(2)
}
