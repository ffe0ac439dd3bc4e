package catalog

import (
	"strings"
	"testing"
)

const sampleTable = `
// 测试字表
alphabet sample v1 {
  tolerance 45

  glyph p  { arc -30 30 10 }
  glyph ch { arc 30 -30 8; arc -30 30 8 }
  glyph "-" { line 0 5 }
  glyph k {
    line 0 4
    arc -30 30 8
  }
}
`

// TestParseSampleTable 字表语言的完整往返：标识符与引号符号名、
// 单行分号分隔与多行笔画体都要解析正确。
func TestParseSampleTable(t *testing.T) {
	cat, err := Parse(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if got := cat.JoinTolerance(); got != 45 {
		t.Fatalf("容差错误: got=%g want=45", got)
	}

	p, err := cat.Lookup("p")
	if err != nil {
		t.Fatalf("查表失败: %v", err)
	}
	if len(p.Strokes) != 1 || !p.Strokes[0].Arc {
		t.Fatalf("p 的笔画错误: %+v", p.Strokes)
	}
	if p.Entry() != -30 || p.Exit() != 30 || p.Strokes[0].Length != 10 {
		t.Fatalf("p 的参数错误: %+v", p.Strokes[0])
	}

	ch, _ := cat.Lookup("ch")
	if len(ch.Strokes) != 2 {
		t.Fatalf("分号分隔的多笔解析错误: %+v", ch.Strokes)
	}

	hy, err := cat.Lookup("-")
	if err != nil {
		t.Fatalf("引号符号名解析失败: %v", err)
	}
	if hy.Strokes[0].Arc || hy.Strokes[0].Entry != 0 {
		t.Fatalf("直线笔画解析错误: %+v", hy.Strokes[0])
	}

	k, _ := cat.Lookup("k")
	if len(k.Strokes) != 2 || k.Strokes[0].Arc || !k.Strokes[1].Arc {
		t.Fatalf("多行笔画体解析错误: %+v", k.Strokes)
	}
}

// TestParseMissingTolerance 缺少 tolerance 声明的字表必须拒绝。
func TestParseMissingTolerance(t *testing.T) {
	src := `alphabet sample v1 {
  glyph p { arc -30 30 10 }
}
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("缺少 tolerance 应报错")
	}
}

// TestParseSyntaxError 语法错误要带位置上报，而不是静默吞掉。
func TestParseSyntaxError(t *testing.T) {
	src := `alphabet sample v1 {
  tolerance 60
  glyph p { squiggle 1 2 3 }
}
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("非法笔画声明应报错")
	}
}

// TestParseDuplicateSymbol 解析层之后仍会跑构造校验。
func TestParseDuplicateSymbol(t *testing.T) {
	src := `alphabet sample v1 {
  tolerance 60
  glyph p { arc -30 30 10 }
  glyph p { line 0 4 }
}
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("重复符号应报错")
	}
}
