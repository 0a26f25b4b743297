package main

import (
	"log"

	"github.com/mcosta/folio"
)

func main() {
	cfg, err := folio.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	app := folio.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
