package render

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/setanarut/rasterconv/features"
)

// ChartOptions configures HistogramImage.
type ChartOptions struct {
	// Width of one bar in pixels.
	BarWidth int
	// Gap between bars in pixels. Negative selects the default.
	Gap int
	// Height of the tallest bar in pixels.
	PlotHeight int
	Background color.Color
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		BarWidth:   24,
		Gap:        6,
		PlotHeight: 160,
		Background: color.White,
	}
}

var channelFill = [3]color.RGBA{
	{R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	{R: 0x30, G: 0xa0, B: 0x40, A: 0xff},
	{R: 0x30, G: 0x50, B: 0xd0, A: 0xff},
}

// HistogramImage renders h as a bar chart with the bucket counts printed
// below the bars. The zero ChartOptions means DefaultChartOptions; otherwise
// unset fields take their default, except Gap where 0 means no gap.
func HistogramImage(h features.Histogram, opt ChartOptions) *image.RGBA {
	def := DefaultChartOptions()
	if opt.BarWidth == 0 && opt.Gap == 0 && opt.PlotHeight == 0 && opt.Background == nil {
		opt = def
	}
	if opt.BarWidth <= 0 {
		opt.BarWidth = def.BarWidth
	}
	if opt.Gap < 0 {
		opt.Gap = def.Gap
	}
	if opt.PlotHeight <= 0 {
		opt.PlotHeight = def.PlotHeight
	}
	if opt.Background == nil {
		opt.Background = def.Background
	}

	face := basicfont.Face7x13
	label := face.Metrics().Height.Ceil() + opt.Gap
	w := len(h)*(opt.BarWidth+opt.Gap) + opt.Gap
	plotTop := opt.Gap
	baseline := plotTop + opt.PlotHeight
	img := image.NewRGBA(image.Rect(0, 0, w, baseline+label+opt.Gap))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	heights := barHeights(h, opt.PlotHeight)
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	for i, height := range heights {
		x0 := opt.Gap + i*(opt.BarWidth+opt.Gap)
		r := image.Rect(x0, baseline-height, x0+opt.BarWidth, baseline)
		fill := channelFill[i/features.BucketsPerChannel]
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)

		s := strconv.FormatUint(uint64(h[i]), 10)
		adv := d.MeasureString(s).Ceil()
		d.Dot = fixed.P(x0+(opt.BarWidth-adv)/2, baseline+label)
		d.DrawString(s)
	}
	return img
}
