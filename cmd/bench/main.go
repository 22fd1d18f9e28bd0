// Command bench is a throughput harness modeled on
// original_source/demo/speedtest.cpp: insert N random keys, then find them
// all back, reporting elapsed time and throughput for each phase. The
// distilled spec dropped this demo; SPEC_FULL.md §6 reinstates it since the
// original source clearly exercised it and no Non-goal excludes it.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"bplustree/internal/bptree"
)

func main() {
	order := flag.Int("order", bptree.DefaultOrder, "tree branching order")
	keyLength := flag.Int("key-length", bptree.DefaultKeyLength, "nominal key width in bytes")
	count := flag.Int("n", 1_000_000, "number of keys to insert and then find")
	seed := flag.Int64("seed", 1, "PRNG seed for the key permutation")
	flag.Parse()

	tree := bptree.New(bptree.Config{Order: *order, KeyLength: *keyLength})

	keys := make([]int, *count)
	for i := range keys {
		keys[i] = i
	}
	rng := rand.New(rand.NewSource(*seed))
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	fmt.Printf("inserting %s keys (order=%d, key-length=%d)...\n", humanize.Comma(int64(*count)), *order, *keyLength)
	start := time.Now()
	for _, k := range keys {
		tree.InsertInt(k, k)
	}
	insertElapsed := time.Since(start)
	fmt.Printf("insert: %s in %s (%s keys/sec)\n",
		humanize.Comma(int64(*count)), insertElapsed, humanize.Comma(throughput(*count, insertElapsed)))

	fmt.Println("finding every inserted key...")
	start = time.Now()
	missing := 0
	for _, k := range keys {
		if _, ok := tree.FindInt(k); !ok {
			missing++
		}
	}
	findElapsed := time.Since(start)
	fmt.Printf("find: %s in %s (%s keys/sec)\n",
		humanize.Comma(int64(*count)), findElapsed, humanize.Comma(throughput(*count, findElapsed)))

	if missing > 0 {
		fmt.Printf("WARNING: %s keys were not found after insertion\n", humanize.Comma(int64(missing)))
	}
	fmt.Printf("tree height: %d\n", tree.Height())
}

func throughput(count int, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(float64(count) / elapsed.Seconds())
}
