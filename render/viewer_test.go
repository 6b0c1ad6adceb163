package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/claimgrid/claim"
	"github.com/lixenwraith/claimgrid/report"
)

func newTestViewer(t *testing.T, w, h int, claims ...claim.Claim) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)

	summary, idx := report.Build(claims)
	return NewViewer(screen, idx, summary), screen
}

func exampleClaims() []claim.Claim {
	return []claim.Claim{
		claim.New(1, 1, 3, 4, 4),
		claim.New(2, 3, 1, 4, 4),
		claim.New(3, 5, 5, 2, 2),
	}
}

func screenRow(screen tcell.Screen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestViewerDrawGlyphs(t *testing.T) {
	v, screen := newTestViewer(t, 20, 10, exampleClaims()...)
	defer screen.Fini()

	v.Draw()

	tests := []struct {
		x, y  int
		want  rune
		style tcell.Style
	}{
		{0, 0, RuneEmpty, StyleEmpty},
		{1, 3, RuneSingle, StyleSingle},
		{3, 3, RuneOverlap, StyleOverlap},
		{4, 4, RuneOverlap, StyleOverlap},
		{5, 5, RuneIntact, StyleIntact},
		{6, 6, RuneIntact, StyleIntact},
	}
	for _, tt := range tests {
		mainc, _, style, _ := screen.GetContent(tt.x, tt.y)
		if mainc != tt.want {
			t.Errorf("At (%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, mainc)
		}
		if style != tt.style {
			t.Errorf("At (%d,%d): expected style %v, got %v", tt.x, tt.y, tt.style, style)
		}
	}
}

func TestViewerStatusLine(t *testing.T) {
	v, screen := newTestViewer(t, 80, 5, exampleClaims()...)
	defer screen.Fini()

	v.Draw()

	status := screenRow(screen, 4, 80)
	if !strings.Contains(status, "dupes 4") {
		t.Errorf("Expected status to contain dupes count, got %q", status)
	}
	if !strings.Contains(status, "#3 @ 5,5: 2x2") {
		t.Errorf("Expected status to contain intact claim, got %q", status)
	}
}

func TestViewerPanClamped(t *testing.T) {
	// 10x10 bounds, 4 columns and 3 map rows visible
	v, screen := newTestViewer(t, 4, 4, claim.New(1, 0, 0, 10, 10))
	defer screen.Fini()

	v.Pan(-5, -5)
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("Expected offset clamped to 0,0, got %d,%d", x, y)
	}

	v.Pan(100, 100)
	if x, y := v.Offset(); x != 6 || y != 7 {
		t.Errorf("Expected offset clamped to 6,7, got %d,%d", x, y)
	}
}

func TestViewerHandleEvent(t *testing.T) {
	v, screen := newTestViewer(t, 4, 4, claim.New(1, 0, 0, 10, 10))
	defer screen.Fini()

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone)) {
		t.Error("Expected 'l' to keep running")
	}
	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Error("Expected Down to keep running")
	}
	if x, y := v.Offset(); x != 1 || y != 1 {
		t.Errorf("Expected offset 1,1, got %d,%d", x, y)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if x, y := v.Offset(); x != 0 || y != 0 {
		t.Errorf("Expected Home to reset offset, got %d,%d", x, y)
	}

	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected 'q' to quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Escape to quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

func TestViewerPannedDraw(t *testing.T) {
	v, screen := newTestViewer(t, 4, 4, exampleClaims()...)
	defer screen.Fini()

	v.Pan(3, 3)
	v.Draw()

	// Screen (0,0) now shows grid cell (3,3), an overlap
	mainc, _, _, _ := screen.GetContent(0, 0)
	if mainc != RuneOverlap {
		t.Errorf("Expected overlap glyph after pan, got %q", mainc)
	}
}

func TestViewerRunQuits(t *testing.T) {
	v, screen := newTestViewer(t, 20, 10, exampleClaims()...)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan struct{})
	go func() {
		v.Run()
		close(done)
	}()
	<-done

	if x, _ := v.Offset(); x != 0 {
		t.Errorf("Expected no horizontal pan room for 7-wide bounds on 20 columns, got %d", x)
	}
}
