package engine

import "testing"

func fakeWord(width float64) Word {
	return Word{Box: Box{MinX: 0, MaxX: width}}
}

// TestWrapScenario 折行基准算例：最大行宽 260，三个宽 100 的词、
// 词距 10，前两词 210 ≤ 260 成行，第三词落到次行。
func TestWrapScenario(t *testing.T) {
	words := []Word{fakeWord(100), fakeWord(100), fakeWord(100)}
	lines := Wrap(words, 260, 10)
	if len(lines) != 2 {
		t.Fatalf("行数错误: got=%d want=2", len(lines))
	}
	if len(lines[0].Words) != 2 || len(lines[1].Words) != 1 {
		t.Fatalf("分行错误: %d/%d", len(lines[0].Words), len(lines[1].Words))
	}
	if !eq(lines[0].Width, 210) {
		t.Fatalf("首行宽度错误: got=%g want=210", lines[0].Width)
	}
}

// TestWrapOversizedWord 超宽词独占一行，绝不拆分。
func TestWrapOversizedWord(t *testing.T) {
	words := []Word{fakeWord(50), fakeWord(400), fakeWord(50)}
	lines := Wrap(words, 260, 10)
	if len(lines) != 3 {
		t.Fatalf("行数错误: got=%d want=3", len(lines))
	}
	if len(lines[1].Words) != 1 || !eq(lines[1].Width, 400) {
		t.Fatalf("超宽词应独占一行: %+v", lines[1])
	}
}

// TestWrapExactFit 恰好填满的行不触发换行。
func TestWrapExactFit(t *testing.T) {
	words := []Word{fakeWord(125), fakeWord(125)}
	lines := Wrap(words, 260, 10)
	if len(lines) != 1 || !eq(lines[0].Width, 260) {
		t.Fatalf("恰好填满应成一行: %+v", lines)
	}
}

// TestWrapEmpty 空词列表产出零行。
func TestWrapEmpty(t *testing.T) {
	if lines := Wrap(nil, 260, 10); len(lines) != 0 {
		t.Fatalf("空输入应得零行: %+v", lines)
	}
}

// TestWrapWidthBoundProperty 随机宽度序列下的两条性质：
// 词一个不丢、顺序不变；除独占行外任何一行都不超出最大行宽。
func TestWrapWidthBoundProperty(t *testing.T) {
	widths := []float64{80, 30, 120, 260, 300, 15, 90, 90, 90, 5, 200, 60}
	words := make([]Word, len(widths))
	for i, w := range widths {
		words[i] = fakeWord(w)
	}
	const maxWidth, spacing = 260.0, 10.0
	lines := Wrap(words, maxWidth, spacing)

	var total int
	for li, line := range lines {
		total += len(line.Words)
		if len(line.Words) > 1 && line.Width > maxWidth+1e-9 {
			t.Fatalf("第 %d 行超宽: %g > %g", li, line.Width, maxWidth)
		}
	}
	if total != len(words) {
		t.Fatalf("词数不守恒: got=%d want=%d", total, len(words))
	}
	// 顺序校验：逐行展开后宽度序列必须与输入一致。
	i := 0
	for _, line := range lines {
		for _, w := range line.Words {
			if !eq(w.Box.Width(), widths[i]) {
				t.Fatalf("第 %d 个词顺序错乱: got=%g want=%g", i, w.Box.Width(), widths[i])
			}
			i++
		}
	}
}
