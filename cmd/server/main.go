// Command server runs a standalone bplustree instance behind the
// internal/netproto TCP protocol, grounded in the teacher project's
// cmd/server/main.go (flag parsing, os/signal-driven graceful shutdown),
// with the gRPC/badger backend it used replaced by a single in-memory
// *bptree.Tree spoken over netproto instead.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bplustree/internal/bptree"
	"bplustree/internal/netproto"
)

func main() {
	addr := flag.String("addr", ":9090", "TCP address to listen on")
	order := flag.Int("order", bptree.DefaultOrder, "tree branching order")
	keyLength := flag.Int("key-length", bptree.DefaultKeyLength, "nominal key width in bytes")
	flag.Parse()

	tree := bptree.New(bptree.Config{Order: *order, KeyLength: *keyLength})
	srv := netproto.NewServer(*addr, tree)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server: %v", err)
		}
	case sig := <-sigCh:
		log.Printf("server: received %s, shutting down", sig)
		if err := srv.Stop(); err != nil {
			log.Printf("server: stop: %v", err)
		}
	}
}
