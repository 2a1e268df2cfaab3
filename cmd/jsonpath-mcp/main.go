package main

import (
	"context"
	"log"
)

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		log.Fatalf("jsonpath-mcp: %v", err)
	}
}

func run(ctx context.Context) (err error) {
	srv := newServer()
	err = srv.serveStdio(ctx)
	return err
}
