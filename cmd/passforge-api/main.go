package main

import (
	"flag"
	"log"
	"net/http"

	"passforge/internal/api"
	"passforge/internal/services/harden"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	srv := api.NewServer(harden.New())

	log.Println("passforge api listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, srv.Routes()))
}
