// Command ais-decode decodes AIVDM/AIVDO sentences from a file, a
// TCP/UDP socket, or command-line arguments, following a grep-like
// decode/socket/single subcommand shape with flag-based option parsing
// and signal-based shutdown.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"aisdeck/aiserr"
	"aisdeck/assembler"
	"aisdeck/decode"
	"aisdeck/nmea"
	"aisdeck/stream"
	"aisdeck/tracker"
)

func main() {
	socketType := flag.String("t", "", "socket type when reading from a socket: tcp or udp")
	file := flag.String("f", "", "file to decode; defaults to stdin when unset and no socket/single args given")
	strict := flag.Bool("strict", false, "reject sentences with an invalid checksum")
	bbox := flag.String("bbox", "", "swLat,swLon,neLat,neLon: track positions and report MMSIs in this box on exit")
	flag.Parse()

	args := flag.Args()

	var tr *tracker.Tracker
	var sw, ne [2]float64
	if *bbox != "" {
		var err error
		sw, ne, err = parseBBox(*bbox)
		if err != nil {
			log.Fatalf("invalid -bbox: %s", err)
		}
		tr = tracker.New()
	}

	var src stream.Source
	var err error

	switch {
	case len(args) >= 2 && (args[0] == "socket"):
		if len(args) < 3 {
			log.Fatal("usage: ais-decode socket HOST PORT -t tcp|udp")
		}
		host, port := args[1], args[2]
		t := *socketType
		if t == "" {
			t = "udp"
		}
		switch t {
		case "tcp":
			src, err = stream.NewTCPSource(host + ":" + port)
		case "udp":
			src, err = stream.NewUDPSource(host + ":" + port)
		default:
			log.Fatalf("unknown socket type %q, want tcp or udp", t)
		}
		if err != nil {
			log.Fatalf("could not open socket: %s", err)
		}
	case len(args) >= 1 && args[0] == "single":
		if err := decodeSingle(args[1:], *strict); err != nil {
			log.Fatal(err)
		}
		return
	case *file != "":
		src, err = stream.NewFileSource(*file)
		if err != nil {
			log.Fatalf("could not open file: %s", err)
		}
	default:
		src = stream.NewReaderSource(os.Stdin)
	}
	defer src.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	asm := assembler.New()
	opts := nmea.Options{ErrorIfChecksumInvalid: *strict}

loop:
	for {
		select {
		case <-stop:
			break loop
		default:
		}

		line, err := src.Next()
		if err == io.EOF {
			break loop
		}
		if err != nil {
			log.Printf("read error: %s", err)
			break loop
		}
		if err := decodeLine(line, asm, opts, tr); err != nil {
			log.Printf("decode error: %s", err)
		}
	}

	reportBBox(tr, sw, ne)
}

func decodeLine(line []byte, asm *assembler.Assembler, opts nmea.Options, tr *tracker.Tracker) error {
	if nmea.IsGatehouse(line) {
		g, err := nmea.ParseGatehouse(line, opts)
		if err != nil {
			return err
		}
		asm.NotifyGatehouse(g)
		return nil
	}

	s, err := nmea.Parse(line, opts)
	if err != nil {
		return err
	}
	assembled, complete, err := asm.Add(s)
	if err != nil {
		return err
	}
	if !complete {
		return nil
	}
	msg, err := decode.Decode(assembled.Payload, assembled.FillBits)
	if err != nil {
		return err
	}
	if tr != nil {
		tr.Update(msg, time.Now().Unix())
	}
	return printJSON(msg)
}

// parseBBox parses "swLat,swLon,neLat,neLon" into corner points.
func parseBBox(s string) (sw, ne [2]float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return sw, ne, fmt.Errorf("want 4 comma-separated values, got %d", len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return sw, ne, fmt.Errorf("value %d: %w", i, err)
		}
	}
	return [2]float64{vals[0], vals[1]}, [2]float64{vals[2], vals[3]}, nil
}

// reportBBox reindexes tr and prints the MMSIs whose last known position
// falls within sw/ne. No-op when tr is nil (no -bbox flag given).
func reportBBox(tr *tracker.Tracker, sw, ne [2]float64) {
	if tr == nil {
		return
	}
	tr.Reindex()
	mmsis, err := tr.InBounds(sw, ne)
	if err != nil {
		log.Printf("bbox query error: %s", err)
		return
	}
	for _, mmsi := range mmsis {
		fmt.Fprintln(os.Stderr, mmsi)
	}
}

func decodeSingle(messages []string, strict bool) error {
	asm := assembler.New()
	opts := nmea.Options{ErrorIfChecksumInvalid: strict}
	for _, m := range messages {
		if err := decodeLine([]byte(m), asm, opts, nil); err != nil {
			var aerr *aiserr.Error
			if errors.As(err, &aerr) {
				fmt.Fprintf(os.Stderr, "WARNING: %s\n", aerr.Message)
				continue
			}
			return err
		}
	}
	return nil
}

func printJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
