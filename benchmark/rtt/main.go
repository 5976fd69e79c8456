// Measures application-level round-trip latency over a loopback or real
// link. Run one side with -listen (echo) and the other without.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/felixge/fgprof"

	"github.com/lumastream/srt"
	"github.com/lumastream/srt/srtopts"
)

var (
	addr    = flag.String("addr", "localhost:6001", "address")
	listen  = flag.Bool("listen", false, "run the echo side")
	samples = flag.Int("samples", 10_000, "round trips to measure")
	size    = flag.Int("size", 512, "message size in bytes")
	pprof   = flag.String("pprof", "", "address for fgprof; if empty, no profiling")
)

func main() {
	flag.Parse()

	if *pprof != "" {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				log.Fatal(err)
			}
		}()
	}

	if err := srt.Startup(); err != nil {
		log.Fatal(err)
	}
	defer srt.Cleanup()

	if *listen {
		echo()
	} else {
		measure()
	}
}

func echo() {
	ln, err := srt.Listen(*addr, 1, srtopts.MessageAPI(true))
	if err != nil {
		log.Fatal(err)
	}
	defer ln.Close()
	log.Printf("echoing on %s", *addr)

	for {
		peer, peerAddr, err := ln.Accept()
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("accepted %s", peerAddr)

		b := make([]byte, 64*1024)
		for {
			n, err := peer.ReadMessage(b)
			if err != nil {
				log.Printf("peer gone: %v", err)
				break
			}
			if _, err := peer.WriteMessage(b[:n]); err != nil {
				log.Printf("peer gone: %v", err)
				break
			}
		}
		peer.Close()
	}
}

func measure() {
	sock, err := srt.Dial(*addr, srtopts.MessageAPI(true))
	if err != nil {
		log.Fatal(err)
	}
	defer sock.Close()

	hist := hdrhistogram.New(1, 10_000_000_000, 3)
	msg := make([]byte, *size)
	b := make([]byte, 64*1024)

	for i := 0; i < *samples; i++ {
		start := time.Now()
		if _, err := sock.WriteMessage(msg); err != nil {
			log.Fatal(err)
		}
		if _, err := sock.ReadMessage(b); err != nil {
			log.Fatal(err)
		}
		hist.RecordValue(time.Since(start).Nanoseconds())
	}

	log.Printf(
		"%d round trips of %d bytes: min/avg/max = %s/%s/%s",
		*samples, *size,
		time.Duration(hist.Min()),
		time.Duration(int64(hist.Mean())),
		time.Duration(hist.Max()),
	)
	for _, p := range []float64{50, 90, 99, 99.9} {
		log.Printf("%6.1fth percentile: %s", p, time.Duration(hist.ValueAtPercentile(p)))
	}

	stats, err := sock.Stats(false)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("link rtt=%.2fms retrans=%d", stats.MsRTT, stats.PktRetransTotal)
}
