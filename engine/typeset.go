package engine

import (
	"fmt"

	"github.com/cbogart/AutoGrafoni/catalog"
)

// ErrorPolicy 决定单个词排版失败（UnknownSymbol / InvalidJoin）后的去留：
// 返回 nil 表示丢弃该词继续，返回非 nil 则中止整篇。
// 引擎自身从不因一个坏词放弃整篇文档 —— 策略永远在调用方手里。
type ErrorPolicy func(err error, paragraph, word int) error

// Typeset 串联全部纯变换：连笔 → 量宽 → 折行 → 纵向排布 → 发射。
// 输入为段落的词序列，每个词是一串音标符号。空输入产出最小尺寸的空画布。
// 返回排布画布与发射结果，画布供调试 JSON 输出使用。
func Typeset(cat *catalog.Catalog, paragraphs [][][]string, cfg Config, policy ErrorPolicy) (*Drawing, *Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("引擎配置非法: %w", err)
	}
	if policy == nil {
		policy = func(err error, _, _ int) error { return err }
	}

	wrapped := make([][]Line, 0, len(paragraphs))
	for pi, words := range paragraphs {
		measured := make([]Word, 0, len(words))
		for wi, symbols := range words {
			chain, err := Build(cat, symbols)
			if err != nil {
				if perr := policy(err, pi, wi); perr != nil {
					return nil, nil, perr
				}
				continue
			}
			if chain.Empty() {
				continue
			}
			measured = append(measured, Word{Chain: chain, Box: Measure(chain)})
		}
		if len(measured) == 0 {
			continue
		}
		wrapped = append(wrapped, Wrap(measured, cfg.MaxWrapWidth, cfg.WordSpacing))
	}

	canvas := Compose(wrapped, cfg)
	return Emit(canvas, cfg), &canvas, nil
}
