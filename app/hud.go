package app

import (
	"fmt"
	"image/color"

	"arplace/hal"
	"arplace/internal/buildinfo"
	"arplace/xr"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0xFF, G: 0xC8, B: 0x2E, A: 0xFF}

const hudLineHeight = 10

type hud struct {
	d fbDisplayer
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{d: fbDisplayer{fb: fb}}
}

func (h *hud) draw(lines []string) {
	y := int16(hudLineHeight)
	for _, line := range lines {
		tinyfont.WriteLine(h.d, &proggy.TinySZ8pt7b, 4, y, line, hudColor)
		y += hudLineHeight
	}
}

// statusLines describes the loop state for the HUD.
func (d *Driver) statusLines() []string {
	st := &d.state
	lines := []string{
		fmt.Sprintf("%s %s", buildinfo.Name, buildinfo.Short()),
		"path: " + st.Path.String(),
	}
	switch d.neg.Affordance {
	case xr.AffordanceEnterAR:
		if st.Presenting {
			lines = append(lines, "Esc: exit AR")
		} else {
			lines = append(lines, "Enter: start AR")
		}
	case xr.AffordanceQuickLook:
		lines = append(lines, "Quick Look available")
	}

	switch {
	case st.Model == nil:
		lines = append(lines, "loading...")
	case !st.Presenting:
		lines = append(lines, "preview: "+st.Model.Name)
	case d.ctl.HasObject() && d.ctl.Object().Visible:
		lines = append(lines, "placed (tap to move)")
	case st.Reticle.Visible:
		lines = append(lines, "tap to place")
	default:
		lines = append(lines, "looking for a surface")
	}
	return lines
}

// fbDisplayer adapts an RGB565 framebuffer to the tinyfont drawing target.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplayer{}

func (d fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d fbDisplayer) Display() error { return nil }
