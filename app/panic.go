package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"arplace/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// guard wraps step so a panic in the frame loop is logged, drawn as a
// panic screen and returned as an error, which stops the host loop.
func guard(h hal.HAL, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			stack := debug.Stack()
			reportPanic(h, v, stack)
			err = fmt.Errorf("panic: %v", v)
		}()
		return step()
	}
}

func reportPanic(h hal.HAL, v any, stack []byte) {
	var stackLines []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			stackLines = append(stackLines, line)
		}
	}

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("panic: %v", v))
		for _, line := range stackLines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	clear(fb.Buffer())

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := fbDisplayer{fb: fb}
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	lines := append([]string{"panic:", fmt.Sprint(v), "stack:"}, stackLines...)

	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := int16(hudLineHeight)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
