package engine

import "testing"

func testConfig() Config {
	return Config{
		MaxWrapWidth:     260,
		LineSpacing:      20,
		ParagraphSpacing: 30,
		WordSpacing:      10,
		VerticalScale:    0.5,
		ShearAngle:       -30,
		StrokeWidth:      1,
		Margin:           Margin{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}
}

func boxWord(minY, maxY, width float64) Word {
	return Word{Chain: &Chain{}, Box: Box{MinY: minY, MaxY: maxY, MaxX: width}}
}

// TestComposeFixedWidthDerivedHeight 画布宽度固定为边距加折行宽度上限，
// 与内容多少无关；高度随内容推导。
func TestComposeFixedWidthDerivedHeight(t *testing.T) {
	cfg := testConfig()
	narrow := Compose([][]Line{{{Words: []Word{boxWord(-5, 0, 30)}, Width: 30, Spacing: 10}}}, cfg)
	wide := Compose([][]Line{{{Words: []Word{boxWord(-5, 5, 250)}, Width: 250, Spacing: 10}}}, cfg)
	if !eq(narrow.Width, 280) || !eq(wide.Width, 280) {
		t.Fatalf("画布宽度应恒为 280: %g / %g", narrow.Width, wide.Width)
	}
	// 高度 = 上边距 + 行高 + 段间距 + 下边距。
	if !eq(narrow.Height, 10+5+30+10) {
		t.Fatalf("高度推导错误: got=%g want=55", narrow.Height)
	}
	if !eq(wide.Height, 10+10+30+10) {
		t.Fatalf("高度推导错误: got=%g want=60", wide.Height)
	}
}

// TestComposeBaselines 基线 = 游标 + 行内最大上延；
// 行内所有词共享同一条基线，自上而下严格递增。
func TestComposeBaselines(t *testing.T) {
	cfg := testConfig()
	lines := [][]Line{{
		{Words: []Word{boxWord(-8, 2, 40), boxWord(-3, 6, 40)}, Width: 90, Spacing: 10},
		{Words: []Word{boxWord(-4, 4, 40)}, Width: 40, Spacing: 10},
	}}
	canvas := Compose(lines, cfg)
	got := canvas.Paragraphs[0].Lines
	// 首行上延 8：基线 = 10 + 8 = 18，行高 = 8 + 6 = 14。
	if !eq(got[0].Baseline, 18) || !eq(got[0].Height, 14) {
		t.Fatalf("首行排布错误: baseline=%g height=%g", got[0].Baseline, got[0].Height)
	}
	// 次行：游标 = 10 + 14 + 行间距 20 = 44，基线 = 44 + 4。
	if !eq(got[1].Baseline, 48) {
		t.Fatalf("次行基线错误: got=%g want=48", got[1].Baseline)
	}
	if got[1].Baseline <= got[0].Baseline {
		t.Fatalf("基线应自上而下递增")
	}
}

// TestComposeWordAnchors 词从左边距起按词间距排开，
// 锚点补偿包围盒的 MinX 偏移。
func TestComposeWordAnchors(t *testing.T) {
	cfg := testConfig()
	w1 := boxWord(-5, 0, 40)
	w2 := boxWord(-5, 0, 60)
	canvas := Compose([][]Line{{{Words: []Word{w1, w2}, Width: 110, Spacing: 10}}}, cfg)
	words := canvas.Paragraphs[0].Lines[0].Words
	if !eq(words[0].X, 10) {
		t.Fatalf("首词锚点错误: got=%g want=10", words[0].X)
	}
	if !eq(words[1].X, 10+40+10) {
		t.Fatalf("次词锚点错误: got=%g want=60", words[1].X)
	}
}

// TestComposeMonotonicHeight 追加段落只会让画布更高，宽度不变。
func TestComposeMonotonicHeight(t *testing.T) {
	cfg := testConfig()
	para := []Line{{Words: []Word{boxWord(-6, 2, 80)}, Width: 80, Spacing: 10}}
	one := Compose([][]Line{para}, cfg)
	two := Compose([][]Line{para, para}, cfg)
	if two.Height <= one.Height {
		t.Fatalf("追加段落后高度应增加: %g vs %g", two.Height, one.Height)
	}
	if !eq(two.Width, one.Width) {
		t.Fatalf("追加段落不应改变宽度: %g vs %g", two.Width, one.Width)
	}
}

// TestComposeEmpty 零段落输入产出仅含边距的最小画布，不报错。
func TestComposeEmpty(t *testing.T) {
	cfg := testConfig()
	canvas := Compose(nil, cfg)
	if len(canvas.Paragraphs) != 0 {
		t.Fatalf("空输入不应有段落: %+v", canvas.Paragraphs)
	}
	if !eq(canvas.Width, 280) || !eq(canvas.Height, 20) {
		t.Fatalf("最小画布尺寸错误: %gx%g", canvas.Width, canvas.Height)
	}
}
