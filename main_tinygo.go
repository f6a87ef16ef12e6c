//go:build tinygo

package main

import (
	"cpboy/app"
	"cpboy/hal"
)

func main() {
	app.Run(hal.New())
}
