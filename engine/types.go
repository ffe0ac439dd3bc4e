package engine

import (
	"fmt"
	"image/color"
)

// 该文件定义排版流水线各阶段共用的值类型，供布局计算、渲染与调试 JSON 共用。
// 流水线：查表 → 连笔 → 量宽 → 折行 → 纵向排布 → 发射，每一步都是纯变换。

// Chain 表示一个词：首尾相接的有序笔画序列。
// 不变式：相邻笔画共享连接点，连接点位于基线（y=0）上，
// 且切向角跳变不超过字表的允许容差。Chain 独占其笔画，建成后不再修改。
type Chain struct {
	Strokes   []Stroke `json:"strokes"`
	End       Point    `json:"end"`       // 末笔终点（空词为原点）
	ExitAngle float64  `json:"exitAngle"` // 末笔出笔角（空词为起始角 0°）
}

// Empty 报告该词是否为零长链（空符号序列的合法产物）。
func (c *Chain) Empty() bool { return len(c.Strokes) == 0 }

// Box 是轴对齐包围盒，始终由笔画几何推导得出，从不独立修改。
type Box struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Width 返回包围盒宽度。
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height 返回包围盒高度。
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Word 把词链与其量好的包围盒绑在一起，供折行与排布使用。
type Word struct {
	Chain *Chain `json:"chain"`
	Box   Box    `json:"box"`
}

// Line 是折行结果中的一行：有序的词加上行内词间距。
// 除单个超宽词独占一行外，Width 不超过折行宽度上限。
type Line struct {
	Words   []Word  `json:"words"`
	Width   float64 `json:"width"`
	Spacing float64 `json:"spacing"`
}

// PlacedWord 是排布后的词：链本身不复制，只记录其在画布上的锚点。
// 锚点为词首连接点，位于该行基线上。
type PlacedWord struct {
	Chain *Chain  `json:"chain"`
	X     float64 `json:"x"`
}

// ComposedLine 是排布后的一行：共享基线的词序列。
type ComposedLine struct {
	Baseline float64      `json:"baseline"` // 行基线的画布 y 坐标
	Height   float64      `json:"height"`   // 行高（各词包围盒的并）
	Words    []PlacedWord `json:"words"`
}

// ComposedParagraph 是排布后的一个段落。
type ComposedParagraph struct {
	Lines []ComposedLine `json:"lines"`
}

// Canvas 是纵向排布的最终结果：宽度固定（折行宽度加左右边距），
// 高度由内容推导 —— 高度是输出，从来不是输入。
type Canvas struct {
	Paragraphs []ComposedParagraph `json:"paragraphs"`
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`
}

// PrimitiveKind 区分发射结果中的路径命令。
type PrimitiveKind int

const (
	OpMove PrimitiveKind = iota
	OpLine
	OpCubic
)

// String 返回路径命令的可读名称。
func (k PrimitiveKind) String() string {
	switch k {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	case OpCubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// Primitive 是发射后的单条路径命令；OpCubic 时 C1/C2 为控制点。
type Primitive struct {
	Kind PrimitiveKind `json:"kind"`
	P    Point         `json:"p"`
	C1   Point         `json:"c1,omitempty"`
	C2   Point         `json:"c2,omitempty"`
}

// Drawing 是引擎的边界产物：扁平的有序路径命令加最终像素尺寸、
// 统一笔画宽度与衬底色。它不再携带可编辑结构，交给外部栅格化/嵌入方使用。
type Drawing struct {
	Primitives  []Primitive `json:"primitives"`
	Width       int         `json:"width"`  // 像素宽
	Height      int         `json:"height"` // 像素高
	StrokeWidth float64     `json:"strokeWidth"`
	Background  color.RGBA  `json:"background"` // 衬底填充色
}

// Margin 表示画布四边留白（布局单位）。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Config 汇集引擎全部配置，所有字段必填，引擎内部没有隐式默认值。
// 注意：MaxWrapWidth 只是折行判定的上界，任何阶段都不存在
// “拉伸到目标宽度”的参数 —— 画布按内容增高，从不横向拉伸。
type Config struct {
	MaxWrapWidth     float64 `json:"maxWrapWidth"`     // 折行宽度上限
	LineSpacing      float64 `json:"lineSpacing"`      // 行间距
	ParagraphSpacing float64 `json:"paragraphSpacing"` // 段间距
	WordSpacing      float64 `json:"wordSpacing"`      // 词间距
	VerticalScale    float64 `json:"verticalScale"`    // 纵向压缩系数
	ShearAngle       float64 `json:"shearAngle"`       // 错切角（度），负值向右上倾斜
	StrokeWidth      float64 `json:"strokeWidth"`      // 统一笔画宽度
	Margin           Margin  `json:"margin"`
}

// Validate 检查配置完整性；缺失或非法字段直接报错，不做静默兜底。
func (c Config) Validate() error {
	if c.MaxWrapWidth <= 0 {
		return fmt.Errorf("配置缺少有效的折行宽度 maxWrapWidth: %g", c.MaxWrapWidth)
	}
	if c.LineSpacing < 0 {
		return fmt.Errorf("行间距不能为负: %g", c.LineSpacing)
	}
	if c.ParagraphSpacing < 0 {
		return fmt.Errorf("段间距不能为负: %g", c.ParagraphSpacing)
	}
	if c.WordSpacing < 0 {
		return fmt.Errorf("词间距不能为负: %g", c.WordSpacing)
	}
	if c.VerticalScale <= 0 {
		return fmt.Errorf("纵向压缩系数必须为正: %g", c.VerticalScale)
	}
	// ±90° 处 tan 发散，发射坐标会变成非有限值。
	if c.ShearAngle <= -90 || c.ShearAngle >= 90 {
		return fmt.Errorf("错切角必须在 (-90, 90) 度之间: %g", c.ShearAngle)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("笔画宽度必须为正: %g", c.StrokeWidth)
	}
	if c.Margin.Top < 0 || c.Margin.Right < 0 || c.Margin.Bottom < 0 || c.Margin.Left < 0 {
		return fmt.Errorf("边距不能为负: %+v", c.Margin)
	}
	return nil
}
