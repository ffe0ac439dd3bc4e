package engine

import "math"

// 该文件定义笔画几何：直线与圆弧的端点、切向角与解析极值。
// 坐标系与渲染端保持一致：原点在左上角，y 轴向下（对应 canvas.CartesianIV）。
// 角度一律以度为单位，表示行进方向；0° 沿基线向右，正角度偏向基线下方。

// Point 表示布局单位下的一个坐标点。
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// StrokeKind 区分直线段与圆弧段。
type StrokeKind int

const (
	KindLine StrokeKind = iota
	KindArc
)

// String 返回笔画类型的可读名称。
func (k StrokeKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Stroke 是不可再分的可绘制单元，创建后不再修改。
// 圆弧由入笔/出笔切向角与弧长唯一确定：半径 r = Length/|Δθ|，
// 圆心位于入笔点沿切向法线方向 r 处。
type Stroke struct {
	Kind       StrokeKind `json:"kind"`
	Start      Point      `json:"start"`
	End        Point      `json:"end"`
	StartAngle float64    `json:"startAngle"` // 入笔切向角（度）
	EndAngle   float64    `json:"endAngle"`   // 出笔切向角（度）
	Length     float64    `json:"length"`     // 标称长度（直线长或弧长）

	// 仅圆弧使用。
	Center Point   `json:"center,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Sweep  float64 `json:"sweep,omitempty"` // 带符号的切向角变化量（度），正值为顺时针（y 向下）
}

// dir 返回角度对应的单位方向向量。
func dir(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{math.Cos(rad), math.Sin(rad)}
}

// normDelta 把角度差规范化到 (-180, 180]。
func normDelta(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// newLine 从起点按给定方向与长度生成直线笔画。
func newLine(start Point, angle, length float64) Stroke {
	d := dir(angle)
	return Stroke{
		Kind:       KindLine,
		Start:      start,
		End:        Point{start.X + length*d.X, start.Y + length*d.Y},
		StartAngle: angle,
		EndAngle:   angle,
		Length:     length,
	}
}

// newArc 从起点按入笔角、出笔角与弧长生成圆弧笔画。
// entry 与 exit 不能相等（相等时应使用直线）。
func newArc(start Point, entry, exit, length float64) Stroke {
	sweep := normDelta(exit - entry)
	radius := length / (math.Abs(sweep) * math.Pi / 180)
	side := 90.0
	if sweep < 0 {
		side = -90.0
	}
	// 圆心在入笔点的转向内侧。
	n := dir(entry + side)
	center := Point{start.X + radius*n.X, start.Y + radius*n.Y}
	s := Stroke{
		Kind:       KindArc,
		Start:      start,
		StartAngle: entry,
		EndAngle:   entry + sweep,
		Length:     length,
		Center:     center,
		Radius:     radius,
		Sweep:      sweep,
	}
	s.End = s.pointAt(s.EndAngle)
	return s
}

// pointAt 返回圆弧上切向角为 phi 处的点（仅对 KindArc 有意义）。
func (s Stroke) pointAt(phi float64) Point {
	side := 90.0
	if s.Sweep < 0 {
		side = -90.0
	}
	n := dir(phi + side)
	return Point{s.Center.X - s.Radius*n.X, s.Center.Y - s.Radius*n.Y}
}

// extrema 返回圆弧在扫过区间内切向水平/垂直处的点集。
// 切向为 0°/180° 时 y 取得极值，为 90°/270° 时 x 取得极值；
// 这些点必须解析求出，仅看端点会裁掉弧的鼓起部分。
func (s Stroke) extrema() []Point {
	if s.Kind != KindArc {
		return nil
	}
	var pts []Point
	lo, hi := s.StartAngle, s.EndAngle
	if lo > hi {
		lo, hi = hi, lo
	}
	first := math.Ceil(lo/90) * 90
	for phi := first; phi <= hi; phi += 90 {
		if phi <= lo || phi >= hi {
			continue
		}
		pts = append(pts, s.pointAt(phi))
	}
	return pts
}

// cubicSegment 是圆弧转三次贝塞尔后的一段控制点。
type cubicSegment struct {
	c1, c2, end Point
}

// toCubics 把圆弧按不超过 90° 一段拆分为三次贝塞尔段。
// 贝塞尔控制点在仿射变换（缩放、错切）下保持精确，而圆弧不保持，
// 因此发射前统一转换（见 emit.go）。直线不需要转换。
func (s Stroke) toCubics() []cubicSegment {
	if s.Kind != KindArc {
		return nil
	}
	total := s.Sweep
	n := int(math.Ceil(math.Abs(total) / 90))
	if n < 1 {
		n = 1
	}
	step := total / float64(n)
	segs := make([]cubicSegment, 0, n)
	phi := s.StartAngle
	p0 := s.Start
	for i := 0; i < n; i++ {
		phi1 := phi + step
		p1 := s.pointAt(phi1)
		// 标准圆弧-贝塞尔近似：手柄长 h = (4/3)·tan(Δ/4)·r
		h := 4.0 / 3.0 * math.Tan(math.Abs(step)*math.Pi/180/4) * s.Radius
		d0, d1 := dir(phi), dir(phi1)
		segs = append(segs, cubicSegment{
			c1:  Point{p0.X + h*d0.X, p0.Y + h*d0.Y},
			c2:  Point{p1.X - h*d1.X, p1.Y - h*d1.Y},
			end: p1,
		})
		phi, p0 = phi1, p1
	}
	return segs
}
