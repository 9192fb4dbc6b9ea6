package main

import (
	"shopvid_backend/internal/app"
)

func main() {
	app.Run()
}
