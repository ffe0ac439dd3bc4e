package engine

import "math"

// Measure 计算词链的紧致包围盒。纯函数：不修改链，也没有任何副作用，
// 同一条链上重复调用得到逐位相同的结果。
//
// 直线只看端点；圆弧除端点外还要并入解析求出的极值点，
// 否则弧的鼓起部分会被包围盒裁掉。空链返回锚定在原点的零尺寸包围盒。
func Measure(chain *Chain) Box {
	if chain == nil || chain.Empty() {
		return Box{}
	}
	box := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	include := func(p Point) {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	for _, s := range chain.Strokes {
		include(s.Start)
		include(s.End)
		for _, p := range s.extrema() {
			include(p)
		}
	}
	return box
}
