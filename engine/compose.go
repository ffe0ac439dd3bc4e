package engine

import "math"

// Compose 把折好的行自上而下排布成画布。
//
// 纵向游标从上边距出发；每行的基线 = 游标 + 该行最大上延（词包围盒在
// 基线上方的部分），行内的词从左边距起按固定词间距从左到右排开，共享基线；
// 排完一行游标前进“行高 + 行间距”，段落最后一行之后改为前进段间距。
//
// 画布宽度固定为 左边距 + 折行宽度上限 + 右边距；
// 高度等于最终游标位置加下边距 —— 高度是推导出来的，从不预先设定。
// 零段落输入不是错误，产出仅含边距的最小画布。
func Compose(paragraphs [][]Line, cfg Config) Canvas {
	canvas := Canvas{
		Width: cfg.Margin.Left + cfg.MaxWrapWidth + cfg.Margin.Right,
	}
	cursor := cfg.Margin.Top

	for _, lines := range paragraphs {
		para := ComposedParagraph{}
		for li, line := range lines {
			ascent, descent := line.Extent()
			composed := ComposedLine{
				Baseline: cursor + ascent,
				Height:   ascent + descent,
			}
			x := cfg.Margin.Left
			for wi, w := range line.Words {
				if wi > 0 {
					x += line.Spacing
				}
				// 链不复制，只记录锚点；锚点为词首连接点在基线上的位置。
				composed.Words = append(composed.Words, PlacedWord{Chain: w.Chain, X: x - w.Box.MinX})
				x += w.Box.Width()
			}
			para.Lines = append(para.Lines, composed)
			cursor += composed.Height
			if li < len(lines)-1 {
				cursor += cfg.LineSpacing
			} else {
				cursor += cfg.ParagraphSpacing
			}
		}
		canvas.Paragraphs = append(canvas.Paragraphs, para)
	}

	canvas.Height = cursor + cfg.Margin.Bottom
	return canvas
}

// Extent 返回一行相对基线的最大上延与下延。
// 注意 y 轴向下：包围盒 MinY 为负表示基线上方。
func (line Line) Extent() (ascent, descent float64) {
	for _, w := range line.Words {
		ascent = math.Max(ascent, -w.Box.MinY)
		descent = math.Max(descent, w.Box.MaxY)
	}
	return ascent, descent
}
