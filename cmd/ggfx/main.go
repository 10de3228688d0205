// Command ggfx applies a chain of registered filters to an image file.
//
//	ggfx -in photo.jpg -out result.png -filter gaussianBlur:inputRadius=4 -filter sepiaTone
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gogpu/ggfx"
	_ "github.com/gogpu/ggfx/filters"
)

func main() {
	var (
		input      = flag.String("in", "", "input image file")
		output     = flag.String("out", "out.png", "output image file; the extension selects the format")
		workers    = flag.Int("workers", 0, "render goroutines (0 picks a default)")
		permissive = flag.Bool("permissive", false, "pass the input through when no filter is given")
		verbose    = flag.Bool("v", false, "verbose logging")
		list       = flag.Bool("list", false, "list filter names and exit")
		chain      filterList
	)
	flag.Var(&chain, "filter", "filter as name[:key=value,...]; repeatable")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(ggfx.FilterNames(), "\n"))
		return
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggfx.SetLogger(logger)

	policy := ggfx.EmptyChainStrict
	if *permissive {
		policy = ggfx.EmptyChainPermissive
	}
	p := ggfx.New(
		ggfx.WithRenderer(ggfx.NewSoftwareRenderer(ggfx.WithWorkers(*workers))),
		ggfx.WithEmptyChainPolicy(policy),
		ggfx.WithLogger(logger),
	)

	if err := run(p, *input, *output, chain); err != nil {
		log.Fatalf("ggfx: %+v", err)
	}
	logger.Info("saved", "path", *output, "filters", len(chain))
}

// run loads in, applies chain and writes the result to out in the format
// named by its extension.
func run(p *ggfx.Pipeline, in, out string, chain filterList) error {
	src, err := imaging.Open(in, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}
	fs, err := chain.build()
	if err != nil {
		return err
	}
	img, err := p.Resolve(ggfx.NewImageFromStd(src), ggfx.List(fs...))
	if err != nil {
		return err
	}
	bm, err := p.Render(img)
	if err != nil {
		return err
	}
	return imaging.Save(bm.ToImage(), out)
}
