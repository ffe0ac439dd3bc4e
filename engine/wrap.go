package engine

// Wrap 把一段话的词序列贪心地划分为若干行，只在词边界断行。
//
// 对每个词计算“若追加则行宽为多少”（现有行宽 + 词间距 + 该词量得的宽度），
// 放得下就追加，放不下就收行另起。单个词自身已超过 maxWidth 时独占一行
// （允许超宽，绝不从词中间拆开 —— 拆开即破坏连接不变式）。
// 输入耗尽时收掉末行，即使未满。
//
// 结果行数只由词宽与 maxWidth 决定：段落越长行越多、画布越高；
// 任何时候都不做横向拉伸来凑宽度。
func Wrap(words []Word, maxWidth, wordSpacing float64) []Line {
	var lines []Line
	current := Line{Spacing: wordSpacing}

	flush := func() {
		if len(current.Words) == 0 {
			return
		}
		lines = append(lines, current)
		current = Line{Spacing: wordSpacing}
	}

	for _, w := range words {
		width := w.Box.Width()
		if len(current.Words) == 0 {
			// 行首的词无条件放入：超宽词独占一行。
			current.Words = append(current.Words, w)
			current.Width = width
			continue
		}
		if current.Width+wordSpacing+width <= maxWidth {
			current.Words = append(current.Words, w)
			current.Width += wordSpacing + width
			continue
		}
		flush()
		current.Words = append(current.Words, w)
		current.Width = width
	}
	flush()
	return lines
}
