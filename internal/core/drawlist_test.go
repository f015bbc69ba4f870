package core

import "testing"

func TestDrawListRecordsOneFrame(t *testing.T) {
	d := NewDrawList()

	d.Clear()
	d.FillRect(NewRect(1, 2, 3, 4), ColorRed)
	d.DrawText("Score: 0", 10, 30, TextStyle{Size: 20})

	if n := len(d.Commands()); n != 3 {
		t.Fatalf("expected 3 commands, got %d", n)
	}
	if d.Commands()[0].Kind != CmdClear {
		t.Error("first command should be a clear")
	}

	// A new frame drops the previous one
	d.Clear()
	d.DrawText("Game Over", 0, 0, TextStyle{Align: AlignCenter})

	texts := d.Texts()
	if len(texts) != 1 || texts[0] != "Game Over" {
		t.Errorf("Texts() = %v, expected [Game Over]", texts)
	}
	if len(d.Rects()) != 0 {
		t.Errorf("Rects() should be empty after Clear, got %v", d.Rects())
	}
}
