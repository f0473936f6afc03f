package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/relptr"
	"github.com/rawbytedev/relptr/pkg/arena"
)

type node struct {
	payload [32]byte
	next    relptr.SlicePtr[byte, relptr.I32]
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	a := arena.New(1<<16, arena.Options{CheckAlignment: true})
	var offs []int
	for i := 0; i < 10000; i++ {
		off, err := arena.Place[node](a)
		if err != nil {
			log.Fatal(err)
		}
		offs = append(offs, off)
	}
	for _, off := range offs {
		n := arena.View[node](a, off)
		if err := n.next.Set(n.payload[8:24]); err != nil {
			log.Fatal(err)
		}
	}
	snap, err := a.Snapshot()
	if err != nil {
		log.Fatal(err)
	}
	b, err := arena.Restore(snap, arena.Options{})
	if err != nil {
		log.Fatal(err)
	}
	var sum int
	for _, off := range offs {
		sum += len(arena.View[node](b, off).next.RawUnchecked())
	}
	log.Printf("arena=%d bytes snapshot=%d bytes checked=%d", a.Len(), len(snap), sum)

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
