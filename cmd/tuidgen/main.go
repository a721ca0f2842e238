// Command tuidgen generates tuid.Kind implementations from a YAML
// manifest describing closed kind enumerations.
//
// Usage:
//
//	tuidgen -src kinds.yaml -dst kinds.go [-trace]
//
// Source and destination are URLs; plain paths address the local file
// system. With -trace generation spans are written to stdout.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/viant/tuid/gen"
	"github.com/viant/tuid/tracing"
)

const version = "0.1.0"

var (
	src      = flag.String("src", "", "manifest URL (YAML)")
	dst      = flag.String("dst", "", "destination URL for the generated source")
	useTrace = flag.Bool("trace", false, "write generation spans to stdout")
)

func main() {
	flag.Parse()
	if *src == "" || *dst == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *useTrace {
		if err := tracing.Init("tuidgen", version, ""); err != nil {
			log.Fatalf("tuidgen: failed to initialise tracing: %v", err)
		}
	}
	service := gen.New()
	if err := service.GenerateURL(context.Background(), *src, *dst); err != nil {
		log.Fatalf("tuidgen: %v", err)
	}
}
