package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mkview/mkview/content"
	"github.com/mkview/mkview/document"
	"github.com/mkview/mkview/geom"
	"github.com/mkview/mkview/input"
	"github.com/mkview/mkview/observability"
	"github.com/mkview/mkview/render"
	"github.com/mkview/mkview/viewport"
)

// Nominal pixel size of one terminal cell, used to map the controller's
// pixel space onto the cell grid.
const (
	cellW = 8.0
	cellH = 16.0
)

const frameInterval = 16 * time.Millisecond

type viewer struct {
	screen   tcell.Screen
	ctrl     *viewport.Controller
	doc      *document.Document
	snapshot string
	log      observability.Logger

	// buttons holds the previous mouse button mask so presses and
	// releases can be told apart from motion.
	buttons tcell.ButtonMask
	status  string
}

func newViewer(doc *document.Document, snapshot string, log observability.Logger) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	v := &viewer{
		screen:   screen,
		doc:      doc,
		snapshot: snapshot,
		log:      log,
	}
	v.ctrl = viewport.New(v.size,
		viewport.WithLogger(log),
		viewport.WithSaveFunc(v.save),
	)
	v.ctrl.SetDocument(doc)
	return v, nil
}

// size reports the drawable area in pixels: the full grid minus the
// status bar.
func (v *viewer) size() geom.Size {
	w, h := v.screen.Size()
	if h > 0 {
		h--
	}
	return geom.Size{Width: float64(w) * cellW, Height: float64(h) * cellH}
}

// loop runs the event loop until quit. The screen is released on every
// exit path so no input hooks outlive the viewer.
func (v *viewer) loop() error {
	defer v.screen.Fini()
	defer v.ctrl.Close()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	v.draw()
	for {
		select {
		case now := <-frames.C:
			if v.ctrl.Animating() {
				v.ctrl.Step(now)
				v.draw()
			}
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				v.screen.Sync()
				v.ctrl.Resize()
				v.draw()
			case *tcell.EventKey:
				if v.handleKey(ev) {
					return nil
				}
				v.draw()
			case *tcell.EventMouse:
				v.handleMouse(ev)
				v.draw()
			}
		}
	}
}

// handleKey translates a terminal key into the canonical shortcut
// events. It reports whether the viewer should quit.
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	kev := input.KeyEvent{Modifiers: toModifiers(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlS:
		if err := v.ctrl.Save(); err != nil {
			v.status = fmt.Sprintf("save failed: %v", err)
		} else {
			v.status = "saved " + v.snapshot
		}
		return false
	case tcell.KeyLeft:
		kev.Name = input.KeyLeft
	case tcell.KeyRight:
		kev.Name = input.KeyRight
	case tcell.KeyUp:
		kev.Name = input.KeyUp
	case tcell.KeyDown:
		kev.Name = input.KeyDown
	case tcell.KeyHome:
		kev.Name = input.KeyHome
	case tcell.KeyEnd:
		kev.Name = input.KeyEnd
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		// Terminals rarely deliver ctrl+punctuation, so the bare keys
		// stand in for the primary-modifier zoom shortcuts.
		case '+', '=':
			kev = input.KeyEvent{Name: "=", Modifiers: input.ModCtrl}
		case '-':
			kev = input.KeyEvent{Name: "-", Modifiers: input.ModCtrl}
		case '0', 'f':
			kev = input.KeyEvent{Name: "0", Modifiers: input.ModCtrl}
		default:
			return false
		}
	default:
		return false
	}
	v.ctrl.HandleKey(kev, time.Now())
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := geom.Point{X: (float64(x) + 0.5) * cellW, Y: (float64(y) + 0.5) * cellH}
	mods := toModifiers(ev.Modifiers())
	btns := ev.Buttons()

	var dx, dy float64
	if btns&tcell.WheelUp != 0 {
		dy--
	}
	if btns&tcell.WheelDown != 0 {
		dy++
	}
	if btns&tcell.WheelLeft != 0 {
		dx--
	}
	if btns&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		v.ctrl.HandleWheel(input.WheelEvent{
			DeltaX:    dx,
			DeltaY:    dy,
			Mode:      input.DeltaLine,
			Modifiers: mods,
			Position:  pos,
		}, time.Now())
	}

	held := btns&tcell.Button1 != 0
	was := v.buttons&tcell.Button1 != 0
	switch {
	case held && !was:
		v.ctrl.HandlePointer(input.PointerEvent{Kind: input.PointerDown, Position: pos, Buttons: input.ButtonPrimary})
	case held && was:
		v.ctrl.HandlePointer(input.PointerEvent{Kind: input.PointerMove, Position: pos, Buttons: input.ButtonPrimary})
	case !held && was:
		v.ctrl.HandlePointer(input.PointerEvent{Kind: input.PointerUp, Position: pos})
	}
	v.buttons = btns
}

func toModifiers(m tcell.ModMask) input.Modifiers {
	var out input.Modifiers
	if m&tcell.ModCtrl != 0 {
		out |= input.ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		out |= input.ModCommand
	}
	if m&tcell.ModShift != 0 {
		out |= input.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= input.ModAlt
	}
	return out
}

// save writes a PNG snapshot of the committed view state.
func (v *viewer) save() error {
	var r render.Renderer
	img := r.Render(v.doc, v.ctrl.State(), v.size())
	f, err := os.Create(v.snapshot)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var (
	styleCanvas = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	stylePage   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleBar    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// draw paints the scene: canvas, page sheet, text and the status bar.
func (v *viewer) draw() {
	st := v.ctrl.State()
	w, h := v.screen.Size()
	rows := h - 1

	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, styleCanvas)
		}
	}

	pageSize := v.doc.PageSize().Scale(st.Scale)
	px0 := int(st.Translate.X / cellW)
	py0 := int(st.Translate.Y / cellH)
	px1 := int((st.Translate.X + pageSize.Width) / cellW)
	py1 := int((st.Translate.Y + pageSize.Height) / cellH)
	for y := max(py0, 0); y < min(py1, rows); y++ {
		for x := max(px0, 0); x < min(px1, w); x++ {
			v.screen.SetContent(x, y, ' ', nil, stylePage)
		}
	}

	if st.Page >= 1 && st.Page <= v.doc.NumPages() {
		if cp, ok := v.doc.Pages[st.Page-1].(content.Page); ok {
			v.drawLines(cp, st, px1, rows, w)
		}
	}

	bar := fmt.Sprintf(" %s | page %d/%d | %d%%", v.modeLabel(st), st.Page, v.doc.NumPages(), int(st.Scale*100+0.5))
	if v.status != "" {
		bar += " | " + v.status
	}
	bar += " | wheel: scroll/turn, ctrl+wheel: zoom, +/-/0: zoom/fit, ctrl+s: snapshot, q: quit"
	v.drawString(0, h-1, padRight(bar, w), styleBar)
	v.screen.Show()
}

func (v *viewer) drawLines(cp content.Page, st viewport.State, pageRight, rows, w int) {
	for _, line := range cp.Lines {
		cx := int((st.Translate.X + line.X*st.Scale) / cellW)
		cy := int((st.Translate.Y + line.Y*st.Scale) / cellH)
		if cy < 0 || cy >= rows {
			continue
		}
		text := line.Text
		if line.Bullet {
			text = "• " + text
		}
		x := cx
		for _, r := range text {
			if x >= 0 && x < min(pageRight, w) {
				v.screen.SetContent(x, cy, r, nil, stylePage)
			}
			x++
		}
	}
}

func (v *viewer) modeLabel(st viewport.State) string {
	if st.FitMode {
		return "fit"
	}
	return "free"
}

func (v *viewer) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func padRight(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}
