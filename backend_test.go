package tuicore

import (
	"bytes"
	"testing"
)

func TestBackendFirstDrawIsFull(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 3, 1), ProfileTrueColor)
	out, err := b.Draw(NewRect(0, 0, 3, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "abc", StyleEmpty)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty bytes on first (full) draw")
	}
}

func TestBackendIdenticalFramesEmitNoCellUpdates(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 3, 1), ProfileTrueColor)
	draw := func(f Frame) { f.Buf.SetString(0, 0, "abc", StyleEmpty) }

	if _, err := b.Draw(NewRect(0, 0, 3, 1), draw); err != nil {
		t.Fatal(err)
	}
	out, err := b.Draw(NewRect(0, 0, 3, 1), draw)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected zero-byte diff for an unchanged frame, got %q", out)
	}
}

func TestBackendSingleCellChangeEmitsMinimalUpdate(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 3, 1), ProfileTrueColor)
	if _, err := b.Draw(NewRect(0, 0, 3, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "abc", StyleEmpty)
	}); err != nil {
		t.Fatal(err)
	}

	out, err := b.Draw(NewRect(0, 0, 3, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "axc", StyleEmpty)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("x")) {
		t.Fatalf("expected the changed symbol in output, got %q", out)
	}
	if bytes.Contains(out, []byte("a")) || bytes.Contains(out, []byte("c")) {
		t.Fatalf("unchanged cells should not be re-emitted, got %q", out)
	}
}

func TestBackendCJKCellPlacement(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 4, 1), ProfileTrueColor)
	out, err := b.Draw(NewRect(0, 0, 4, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "世界", StyleEmpty)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("世")) || !bytes.Contains(out, []byte("界")) {
		t.Fatalf("expected both CJK glyphs in output, got %q", out)
	}
}

func TestBackendHyperlinkRunIsBracketed(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 3, 1), ProfileTrueColor)
	style := StyleEmpty.WithLink(Hyperlink{URL: "https://x"})
	out, err := b.Draw(NewRect(0, 0, 3, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "go", style)
	})
	if err != nil {
		t.Fatal(err)
	}
	start := bytes.Index(out, []byte("\x1b]8;;https://x\x1b\\"))
	end := bytes.Index(out, []byte("\x1b]8;;\x1b\\"))
	if start == -1 {
		t.Fatalf("expected hyperlink start sequence, got %q", out)
	}
	if end <= start {
		t.Fatalf("expected hyperlink end sequence after start, got %q", out)
	}
}

func TestBackendResizeForcesFullNextDraw(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 3, 1), ProfileTrueColor)
	draw := func(f Frame) { f.Buf.SetString(0, 0, "abc", StyleEmpty) }
	if _, err := b.Draw(NewRect(0, 0, 3, 1), draw); err != nil {
		t.Fatal(err)
	}

	out, err := b.Draw(NewRect(0, 0, 5, 1), draw)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("expected a full redraw after a resize")
	}
}

func TestBackendModifierResetForcesColorReemission(t *testing.T) {
	b := NewBackend(NewRect(0, 0, 2, 1), ProfileTrueColor)
	redBold := StyleEmpty.WithFG(RGB(255, 0, 0)).WithModifier(ModBold)
	if _, err := b.Draw(NewRect(0, 0, 2, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "a", redBold)
	}); err != nil {
		t.Fatal(err)
	}

	redOnly := StyleEmpty.WithFG(RGB(255, 0, 0))
	out, err := b.Draw(NewRect(0, 0, 2, 1), func(f Frame) {
		f.Buf.SetString(0, 0, "a", redOnly)
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(out, []byte("\x1b[0m")) {
		t.Fatalf("expected a reset when a modifier bit cleared, got %q", out)
	}
	if !bytes.Contains(out, []byte("38;2;255;0;0")) {
		t.Fatalf("expected foreground re-emitted after reset, got %q", out)
	}
}
