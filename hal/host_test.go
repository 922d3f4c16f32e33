package hal

import (
	"bytes"
	"testing"
)

func TestFramebufferResize(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	if fb.resize(4, 3) {
		t.Fatal("resize to same size reported a change")
	}
	if !fb.resize(10, 5) {
		t.Fatal("resize did not report a change")
	}
	if fb.Width() != 10 || fb.Height() != 5 || len(fb.Buffer()) != 100 {
		t.Fatalf("after resize: %dx%d len=%d", fb.Width(), fb.Height(), len(fb.Buffer()))
	}
	fb.resize(0, -3)
	if fb.Width() != 1 || fb.Height() != 1 {
		t.Fatalf("degenerate resize gave %dx%d", fb.Width(), fb.Height())
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	snap := make([]byte, 8)
	fb.snapshotRGB565(snap)
	for i, b := range snap {
		if b != 0xFF {
			t.Fatalf("byte %d = %#x", i, b)
		}
	}
	rgba := make([]byte, 16)
	expandRGB565(rgba, snap)
	for i, b := range rgba {
		if b != 0xFF {
			t.Fatalf("rgba byte %d = %#x", i, b)
		}
	}
}

func TestPixelRoundTrip(t *testing.T) {
	r, g, b := rgb888From565(rgb565(0xFF, 0x00, 0xFF))
	if r != 0xFF || g != 0 || b != 0xFF {
		t.Fatalf("got %d,%d,%d", r, g, b)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(1, 1, &buf)
	h.Logger().WriteLineString("a")
	h.Logger().WriteLineBytes([]byte("b"))
	if buf.String() != "a\nb\n" {
		t.Fatalf("log = %q", buf.String())
	}
}

func TestKeyboardDropsWhenFull(t *testing.T) {
	k := newHostKeyboard()
	for i := 0; i < 100; i++ {
		k.emit(KeyEvent{Code: KeyA, Press: true})
	}
	if n := len(k.ch); n != cap(k.ch) {
		t.Fatalf("queued = %d, want %d", n, cap(k.ch))
	}
}
