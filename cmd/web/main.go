package main

import "talentlink/internal/app"

func main() {
	app.Run()
}
