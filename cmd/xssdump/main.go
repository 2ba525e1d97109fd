// Command xssdump computes and serializes the PSS/NSS/Lyndon arrays (or the
// PSS tree) of a file's contents, exercising WriteArray/WriteTree against a
// real file instead of an in-memory byte slice.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/nsarray/xss"
)

func main() {
	var (
		mode      = flag.String("mode", "pss", "pss, nss, lyndon, or tree")
		threshold = flag.Uint64("threshold", xss.DefaultThreshold, "fast-path LCE threshold")
		out       = flag.String("out", "", "output path (defaults to input file path + .xss)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: xssdump -mode=pss|nss|lyndon|tree <file>")
	}
	inPath := flag.Arg(0)

	raw, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("xssdump: %v", err)
	}

	text := make([]byte, len(raw)+2)
	copy(text[1:], raw)
	for i, b := range text {
		if b == 0 && i != 0 && i != len(text)-1 {
			text[i] = 1
		}
	}
	if err := xss.Validate(text); err != nil {
		log.Fatalf("xssdump: %v", err)
	}

	outPath := *out
	if outPath == "" {
		outPath = inPath + ".xss"
	}
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("xssdump: %v", err)
	}
	defer f.Close()

	th := uint32(*threshold)
	var n int64
	switch *mode {
	case "pss":
		n, err = xss.WriteArray(f, xss.PSSArray[uint32](text, th))
	case "nss":
		n, err = xss.WriteArray(f, xss.NSSArray[uint32](text, th))
	case "lyndon":
		n, err = xss.WriteArray(f, xss.LyndonArray[uint32](text, th))
	case "tree":
		tree := xss.PSSTree[uint32](text, th)
		n, err = xss.WriteTree(f, tree, uint32(len(text)))
	default:
		log.Fatalf("xssdump: unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("xssdump: write failed after %d bytes: %v", n, err)
	}
	log.Printf("xssdump: wrote %d bytes to %s", n, outPath)
}
