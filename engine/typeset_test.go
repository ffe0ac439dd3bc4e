package engine

import (
	"errors"
	"testing"

	"github.com/cbogart/AutoGrafoni/catalog"
)

// TestTypesetSkipPolicy 策略放行坏词时，坏词被整词丢弃，
// 文档其余部分照常排版。
func TestTypesetSkipPolicy(t *testing.T) {
	cat := catalog.Default()
	cfg := testConfig()
	paragraphs := [][][]string{{
		{"b", "uv3", "t"},
		{"b", "???", "t"}, // 含未知符号
		{"k", "uv1", "t"},
	}}

	var skipped int
	policy := func(err error, _, _ int) error {
		var unknown *UnknownSymbolError
		if errors.As(err, &unknown) {
			skipped++
			return nil
		}
		return err
	}
	d, canvas, err := Typeset(cat, paragraphs, cfg, policy)
	if err != nil {
		t.Fatalf("排版失败: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("应跳过 1 个词，实际 %d", skipped)
	}
	if got := len(canvas.Paragraphs[0].Lines[0].Words); got != 2 {
		t.Fatalf("行内词数错误: got=%d want=2", got)
	}
	if len(d.Primitives) == 0 {
		t.Fatalf("其余词应照常发射")
	}
}

// TestTypesetDefaultPolicyAborts 未提供策略时，首个坏词即终止整篇。
func TestTypesetDefaultPolicyAborts(t *testing.T) {
	cat := catalog.Default()
	_, _, err := Typeset(cat, [][][]string{{{"???"}}}, testConfig(), nil)
	var unknown *UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("应透传 UnknownSymbolError，实际: %v", err)
	}
}

// TestTypesetEmptyInput 空文档产出仅含边距的最小画布，没有任何路径命令。
func TestTypesetEmptyInput(t *testing.T) {
	cfg := testConfig()
	d, canvas, err := Typeset(catalog.Default(), nil, cfg, nil)
	if err != nil {
		t.Fatalf("空输入不应报错: %v", err)
	}
	if len(d.Primitives) != 0 {
		t.Fatalf("空输入不应发射命令: %d", len(d.Primitives))
	}
	if !eq(canvas.Width, 280) || !eq(canvas.Height, 20) {
		t.Fatalf("最小画布尺寸错误: %gx%g", canvas.Width, canvas.Height)
	}
}

// TestTypesetInvalidConfig 非法配置直接报错，不做静默兜底。
func TestTypesetInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.MaxWrapWidth = 0
	if _, _, err := Typeset(catalog.Default(), nil, cfg, nil); err == nil {
		t.Fatalf("折行宽度为零应报错")
	}

	// ±90° 错切角使 tan 发散，必须在校验层拦下。
	for _, angle := range []float64{90, -90, 135} {
		cfg = testConfig()
		cfg.ShearAngle = angle
		if _, _, err := Typeset(catalog.Default(), nil, cfg, nil); err == nil {
			t.Fatalf("错切角 %g 应报错", angle)
		}
	}
}
