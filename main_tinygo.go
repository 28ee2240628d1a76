//go:build tinygo

package main

import (
	"lumen/app"
	"lumen/hal"
)

func main() {
	app.New(hal.New(), app.Config{
		Pin:  hal.StripPin,
		Text: "lumen",
		Snow: true,
	}).Run()
}
