// Package catalog 提供符号到笔画模板的只读字表。
// 默认 Grafoni 字母表以文本字表形式内嵌，进程启动时解析一次，之后不再变化；
// 也可用 New 以程序方式构造自定义字表（测试与扩展字母表使用）。
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"
)

//go:embed grafoni.glyphs
var defaultTable []byte

// StrokeSpec 描述一笔的模板：入笔/出笔切向角（度）与标称长度。
// Arc 为假时表示直线，此时 Entry 必须等于 Exit。
type StrokeSpec struct {
	Arc    bool    `json:"arc"`
	Entry  float64 `json:"entry"`
	Exit   float64 `json:"exit"`
	Length float64 `json:"length"`
}

// Glyph 是单个音标符号的笔画模板，字表初始化后不再修改。
// 每个符号都带有规范的入笔与出笔切向角，连笔因此完全确定，无需逐次猜测。
type Glyph struct {
	Symbol  string       `json:"symbol"`
	Strokes []StrokeSpec `json:"strokes"`
}

// Entry 返回该字形的规范入笔角。
func (g Glyph) Entry() float64 {
	if len(g.Strokes) == 0 {
		return 0
	}
	return g.Strokes[0].Entry
}

// Exit 返回该字形的规范出笔角。
func (g Glyph) Exit() float64 {
	if len(g.Strokes) == 0 {
		return 0
	}
	return g.Strokes[len(g.Strokes)-1].Exit
}

// ErrUnknownSymbol 在符号没有字表条目时由 Lookup 返回（经 %w 包装）。
var ErrUnknownSymbol = fmt.Errorf("符号不在字表中")

// Catalog 是进程级只读字表。
type Catalog struct {
	glyphs    map[string]Glyph
	tolerance float64 // 允许的连接切向角容差（度）
}

// New 构造字表并校验字形数据。
// tolerance 为连接容差（度）：相邻笔画出笔角与入笔角之差超过它即视为非法连接。
func New(glyphs []Glyph, tolerance float64) (*Catalog, error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("连接容差必须为正: %g", tolerance)
	}
	m := make(map[string]Glyph, len(glyphs))
	for _, g := range glyphs {
		if g.Symbol == "" {
			return nil, fmt.Errorf("字形缺少符号名")
		}
		if _, dup := m[g.Symbol]; dup {
			return nil, fmt.Errorf("符号 %q 在字表中重复", g.Symbol)
		}
		if len(g.Strokes) == 0 {
			return nil, fmt.Errorf("符号 %q 没有任何笔画", g.Symbol)
		}
		for i, s := range g.Strokes {
			if s.Length <= 0 {
				return nil, fmt.Errorf("符号 %q 第 %d 笔长度必须为正: %g", g.Symbol, i, s.Length)
			}
			if s.Arc && s.Entry == s.Exit {
				return nil, fmt.Errorf("符号 %q 第 %d 笔：圆弧的入笔角与出笔角不能相等", g.Symbol, i)
			}
			if !s.Arc && s.Entry != s.Exit {
				return nil, fmt.Errorf("符号 %q 第 %d 笔：直线的入笔角与出笔角必须相等", g.Symbol, i)
			}
		}
		m[g.Symbol] = g
	}
	return &Catalog{glyphs: m, tolerance: tolerance}, nil
}

// Lookup 返回符号对应的字形模板；符号不存在时返回 ErrUnknownSymbol。
// 跳过、替换还是中止属于调用方的策略，不在字表层决定。
func (c *Catalog) Lookup(symbol string) (Glyph, error) {
	g, ok := c.glyphs[symbol]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return g, nil
}

// JoinTolerance 返回连接切向角容差（度）。
func (c *Catalog) JoinTolerance() float64 { return c.tolerance }

// Symbols 返回字表支持的全部符号（排序后），供遍历与属性测试使用。
func (c *Catalog) Symbols() []string {
	out := make([]string, 0, len(c.glyphs))
	for s := range c.glyphs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default 返回内嵌的 Grafoni 默认字表，仅在首次调用时解析。
// 内嵌字表属于构建产物的一部分，解析失败说明构建已损坏，直接 panic。
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = ParseBytes(defaultTable)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("内嵌默认字表解析失败: %v", defaultErr))
	}
	return defaultCat
}
