// Package book 把整本书的段落排版结果装配成固定高度的页面序列：
// 段落按剩余页高放置，放不下的段落在行边界拆成多段续到后续页；
// 第一页带书名标题，每页附页码。标题与页码同样由引擎排成 Grafoni 笔画，
// 因此整本书不依赖任何字体资源。
package book

import (
	"fmt"

	"github.com/cbogart/AutoGrafoni/catalog"
	"github.com/cbogart/AutoGrafoni/engine"
	"github.com/cbogart/AutoGrafoni/spell"
	"github.com/cbogart/AutoGrafoni/text"
)

// Item 是页面上的一个排版块及其页内纵向位置（布局单位）。
type Item struct {
	Drawing *engine.Drawing `json:"drawing"`
	Y       float64         `json:"y"`
}

// Page 是装配好的一页。
type Page struct {
	Number int             `json:"number"`
	Items  []Item          `json:"items"`
	Folio  *engine.Drawing `json:"folio"` // 页码的 Grafoni 排版
}

// Book 是装配结果，交给渲染器输出 PDF。
type Book struct {
	Title        string          `json:"title"`
	TitleDrawing *engine.Drawing `json:"titleDrawing"`
	Pages        []Page          `json:"pages"`
	PageWidth    float64         `json:"pageWidth"`  // 布局单位
	PageHeight   float64         `json:"pageHeight"` // 布局单位
	Skipped      int             `json:"skipped"`    // 因符号问题被丢弃的词数
}

// Composer 配置装配过程。
type Composer struct {
	Catalog      *catalog.Catalog
	Config       engine.Config
	PageHeight   float64 // 一页可容纳的内容高度（布局单位）
	ParagraphGap float64 // 页面上相邻排版块之间的间隔
	MaxPages     int     // 页数上限，0 表示不限

	// Policy 决定坏词去留；为空时默认丢词继续并计数。
	Policy engine.ErrorPolicy
}

// Compose 把清洗后的段落文本装配成书。
func (c *Composer) Compose(title string, paragraphs []string) (*Book, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, fmt.Errorf("排版配置非法: %w", err)
	}
	if c.PageHeight <= 0 {
		return nil, fmt.Errorf("页高必须为正: %g", c.PageHeight)
	}

	b := &Book{
		Title:      title,
		PageWidth:  c.Config.Margin.Left + c.Config.MaxWrapWidth + c.Config.Margin.Right,
		PageHeight: c.PageHeight,
	}
	policy := c.Policy
	if policy == nil {
		policy = func(err error, _, _ int) error {
			b.Skipped++
			return nil
		}
	}

	if title != "" {
		td, err := c.typesetText(title, policy)
		if err != nil {
			return nil, err
		}
		b.TitleDrawing = td
	}

	cur := Page{Number: 1}
	curY := 0.0
	flush := func() {
		if len(cur.Items) == 0 {
			return
		}
		b.Pages = append(b.Pages, cur)
		cur = Page{Number: len(b.Pages) + 1}
		curY = 0
	}

	for pi, para := range paragraphs {
		if c.MaxPages > 0 && len(b.Pages) >= c.MaxPages {
			break
		}
		// 段落先折行，再按剩余页高在行边界拆块；每块独立排布成图。
		blocks, err := c.typesetParagraph(pi, para, c.PageHeight-curY, policy)
		if err != nil {
			return nil, err
		}
		for _, d := range blocks {
			h := float64(d.Height)
			if len(cur.Items) > 0 && curY+h+c.ParagraphGap > c.PageHeight {
				flush()
				if c.MaxPages > 0 && len(b.Pages) >= c.MaxPages {
					break
				}
			}
			if len(cur.Items) > 0 {
				curY += c.ParagraphGap
			}
			cur.Items = append(cur.Items, Item{Drawing: d, Y: curY})
			curY += h
		}
	}
	if c.MaxPages == 0 || len(b.Pages) < c.MaxPages {
		flush()
	}

	for i := range b.Pages {
		folio, err := c.typesetText(fmt.Sprintf("%d", b.Pages[i].Number), policy)
		if err != nil {
			return nil, err
		}
		b.Pages[i].Folio = folio
	}
	return b, nil
}

// typesetParagraph 把一个段落折行后按页高预算拆成若干排版块。
// remaining 是当前页还剩的高度；第一块以它为预算，后续块拿整页预算。
func (c *Composer) typesetParagraph(pi int, para string, remaining float64, policy engine.ErrorPolicy) ([]*engine.Drawing, error) {
	words := text.Words(para)
	measured := make([]engine.Word, 0, len(words))
	for wi, w := range words {
		// 拼写层可能在词内给出切分（如双连字符），每段各自成链。
		for _, symbols := range spell.TranscribeWords(w) {
			chain, err := engine.Build(c.Catalog, symbols)
			if err != nil {
				if perr := policy(err, pi, wi); perr != nil {
					return nil, perr
				}
				continue
			}
			if chain.Empty() {
				continue
			}
			measured = append(measured, engine.Word{Chain: chain, Box: engine.Measure(chain)})
		}
	}
	lines := engine.Wrap(measured, c.Config.MaxWrapWidth, c.Config.WordSpacing)
	if len(lines) == 0 {
		return nil, nil
	}

	budget := remaining
	if budget <= 0 {
		budget = c.PageHeight
	}
	// 每块排布后自带边距与段尾间距，预算要连它们一起算。
	overhead := c.Config.Margin.Top + c.Config.Margin.Bottom + c.Config.ParagraphSpacing
	var blocks []*engine.Drawing
	var chunk []engine.Line
	chunkH := overhead
	emit := func() {
		if len(chunk) == 0 {
			return
		}
		canvas := engine.Compose([][]engine.Line{chunk}, c.Config)
		blocks = append(blocks, engine.Emit(canvas, c.Config))
		chunk = nil
		chunkH = overhead
		budget = c.PageHeight
	}
	for _, line := range lines {
		ascent, descent := line.Extent()
		h := ascent + descent
		if len(chunk) > 0 {
			h += c.Config.LineSpacing
		}
		if len(chunk) > 0 && chunkH+h > budget {
			emit()
			h = ascent + descent
		}
		chunk = append(chunk, line)
		chunkH += h
	}
	emit()
	return blocks, nil
}

// typesetText 把一小段文本（标题或页码）排成独立的 Grafoni 图。
func (c *Composer) typesetText(s string, policy engine.ErrorPolicy) (*engine.Drawing, error) {
	words := text.Words(s)
	symbols := make([][]string, 0, len(words))
	for _, w := range words {
		symbols = append(symbols, spell.TranscribeWords(w)...)
	}
	d, _, err := engine.Typeset(c.Catalog, [][][]string{symbols}, c.Config, policy)
	if err != nil {
		return nil, err
	}
	return d, nil
}
