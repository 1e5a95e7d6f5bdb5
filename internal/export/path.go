package export

import (
	"fmt"
	"strconv"

	"github.com/san-kum/orbitplot/internal/config"
)

// DefaultDir is where images go when no directory is configured.
const DefaultDir = "output"

// FileName encodes every parameter that shapes the image, so equal
// configurations share a file and different ones never collide.
func FileName(cfg *config.Config, ext string) string {
	name := fmt.Sprintf("STEP(%d)-t(%s)-x(%s,%s)-v(%s,%s)-G(%s)-M(%s)-buf(%d)-img(%d)",
		cfg.Step, num(cfg.Dt),
		num(cfg.X), num(cfg.Y),
		num(cfg.VX), num(cfg.VY),
		num(cfg.G), num(cfg.M),
		cfg.Buf, cfg.ImgSize,
	)
	if cfg.ScaleGM {
		name += "-gm"
	}
	return name + ext
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
