package engine

import (
	"errors"
	"math"

	"github.com/cbogart/AutoGrafoni/catalog"
)

// 该文件实现连笔：把一个词的音标符号序列解析为一条连续笔画链。
// 连续性正是 Grafoni 草书的全部意义所在 —— 若逐字独立绘制便失去了视觉目的。

const (
	// startAngle 是每个词的规范起笔角：沿基线向右。
	// 每个词都从独立的初始游标/切向状态出发，词与词之间不共享任何可变状态。
	startAngle = 0.0

	// baselineEps 是连接点允许偏离基线的误差；超过即判定为字表几何缺陷。
	baselineEps = 1e-6
)

// Build 依序解析符号并连笔成链。
//
// 算法：游标从原点出发、切向为规范起笔角；对每个符号查表，把其笔画
// 平移锚定到当前游标位置（只平移，绝不单独缩放字形），再把游标推进到
// 新笔画的终点与出笔角。连接处只校验，不修正：
//   - 切向角跳变超过字表容差 → InvalidJoinError；
//   - 连接点脱离基线（y≠0）→ InvalidJoinError；
//
// 二者都视为字表角度数据的缺陷，仅对当前词致命，由调用方决定丢词还是中止。
// 空符号序列返回锚定在原点的零长链（合法，供上游空词保护使用）。
func Build(cat *catalog.Catalog, symbols []string) (*Chain, error) {
	chain := &Chain{ExitAngle: startAngle}
	cursor := Point{}
	angle := startAngle
	tolerance := cat.JoinTolerance()

	for i, sym := range symbols {
		glyph, err := cat.Lookup(sym)
		if err != nil {
			if errors.Is(err, catalog.ErrUnknownSymbol) {
				return nil, &UnknownSymbolError{Symbol: sym, Index: i}
			}
			return nil, err
		}
		for _, spec := range glyph.Strokes {
			// 连接点必须仍在基线上；字形内部的笔画衔接同样受此约束，
			// 首笔从原点起笔，天然满足。
			if len(chain.Strokes) > 0 && math.Abs(cursor.Y) > baselineEps {
				return nil, &InvalidJoinError{
					Symbol: sym,
					Index:  i,
					Reason: "连接点脱离基线",
					Delta:  cursor.Y,
				}
			}
			if d := math.Abs(normDelta(spec.Entry - angle)); d > tolerance {
				return nil, &InvalidJoinError{
					Symbol: sym,
					Index:  i,
					Reason: "切向角跳变超出容差",
					Delta:  d,
				}
			}
			var s Stroke
			if spec.Arc {
				s = newArc(cursor, spec.Entry, spec.Exit, spec.Length)
			} else {
				s = newLine(cursor, spec.Entry, spec.Length)
			}
			chain.Strokes = append(chain.Strokes, s)
			cursor = s.End
			angle = s.EndAngle
		}
	}

	chain.End = cursor
	chain.ExitAngle = angle
	return chain, nil
}
