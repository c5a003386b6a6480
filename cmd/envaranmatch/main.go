package main

import (
	"fmt"
	"log"

	"github.com/envaran/EnvaranMatch/internal/pkg/env"
	"github.com/envaran/EnvaranMatch/internal/pkg/server"
)

func main() {
	app := server.NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}
