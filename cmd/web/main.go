package main

import "villa_backend/internal/app"

func main() {
	app.Run()
}
