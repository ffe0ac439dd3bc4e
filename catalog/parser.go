package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// 字表文件是一个小型声明式语言：
//
//	alphabet grafoni v1 {
//	  tolerance 60
//	  glyph p   { arc -30 30 10 }
//	  glyph ch  { arc 30 -30 8; arc -30 30 8 }
//	  glyph "-" { line 0 5 }
//	}
//
// 每条 stroke 声明为 `line <角度> <长度>` 或 `arc <入笔角> <出笔角> <弧长>`。

var (
	tableLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[;{}]`},
	})

	tableParser = participle.MustBuild[tableAST](
		participle.Lexer(tableLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
	)
)

// tableAST 是字表文件的根节点。
type tableAST struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"Newline* 'alphabet' @Ident"`
	Version string         `parser:"@Ident"`
	Decls   []*declAST     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// declAST 是字表内的一条声明：容差设定或字形定义。
type declAST struct {
	Tolerance *float64  `parser:"  'tolerance' @Number"`
	Glyph     *glyphAST `parser:"| @@"`
}

// glyphAST 定义一个符号的笔画序列；符号可以是标识符或带引号的字符串。
type glyphAST struct {
	Symbol  symbolName   `parser:"'glyph' ( @Ident | @String )"`
	Strokes []*strokeAST `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// strokeAST 是一条笔画声明。
type strokeAST struct {
	Line *lineAST `parser:"  @@"`
	Arc  *arcAST  `parser:"| @@"`
}

type lineAST struct {
	Angle  float64 `parser:"'line' @Number"`
	Length float64 `parser:"@Number"`
}

type arcAST struct {
	Entry  float64 `parser:"'arc' @Number"`
	Exit   float64 `parser:"@Number"`
	Length float64 `parser:"@Number"`
}

// symbolName 捕获符号名，带引号的形式按 Go 字符串规则反引。
type symbolName string

// Capture 实现 participle.Capture。
func (s *symbolName) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("符号名捕获缺少值")
	}
	v := values[0]
	if strings.HasPrefix(v, `"`) {
		unq, err := strconv.Unquote(v)
		if err != nil {
			return err
		}
		v = unq
	}
	*s = symbolName(v)
	return nil
}

// Parse 从 io.Reader 解析字表。
func Parse(r io.Reader) (*Catalog, error) {
	ast, err := tableParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("解析字表失败: %w", err)
	}
	return fromAST(ast)
}

// ParseBytes 从内存内容解析字表。
func ParseBytes(data []byte) (*Catalog, error) {
	ast, err := tableParser.ParseBytes("", data)
	if err != nil {
		return nil, fmt.Errorf("解析字表失败: %w", err)
	}
	return fromAST(ast)
}

func fromAST(ast *tableAST) (*Catalog, error) {
	tolerance := 0.0
	var glyphs []Glyph
	for _, decl := range ast.Decls {
		switch {
		case decl.Tolerance != nil:
			tolerance = *decl.Tolerance
		case decl.Glyph != nil:
			g := Glyph{Symbol: string(decl.Glyph.Symbol)}
			for _, st := range decl.Glyph.Strokes {
				switch {
				case st.Line != nil:
					g.Strokes = append(g.Strokes, StrokeSpec{
						Entry:  st.Line.Angle,
						Exit:   st.Line.Angle,
						Length: st.Line.Length,
					})
				case st.Arc != nil:
					g.Strokes = append(g.Strokes, StrokeSpec{
						Arc:    true,
						Entry:  st.Arc.Entry,
						Exit:   st.Arc.Exit,
						Length: st.Arc.Length,
					})
				}
			}
			glyphs = append(glyphs, g)
		}
	}
	if tolerance == 0 {
		return nil, fmt.Errorf("字表 %s 缺少 tolerance 声明", ast.Name)
	}
	return New(glyphs, tolerance)
}
