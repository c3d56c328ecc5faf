package main

import "github.com/MarinVandelet/qr-game-backend/internal/cli"

func main() {
	cli.Execute()
}
