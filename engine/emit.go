package engine

import (
	"image/color"
	"math"
)

// Emit 把排布好的画布变换并发射为最终矢量图：
// 先对每个词施加纵向压缩（以该词基线为轴，压出手写 Grafoni 的扁长比例），
// 再施加错切（x 随基线上方/下方的偏移量平移，形成斜体）。两种变换对所有
// 内容用同一套公式，词内相对几何因此保持不变，连接连续性不受影响。
// 以词基线为错切轴：斜的是字，不是版面，画布再高也不会横向漂移。
//
// 圆弧在变换前统一转为三次贝塞尔（圆在错切下不再是圆，而贝塞尔控制点
// 在仿射变换下保持精确）。输出是扁平的路径命令序列加整数像素尺寸、
// 统一笔画宽度与衬底色，不再携带可编辑结构。
func Emit(canvas Canvas, cfg Config) *Drawing {
	shear := math.Tan(cfg.ShearAngle * math.Pi / 180)
	d := &Drawing{
		Width:       int(math.Ceil(canvas.Width)),
		Height:      int(math.Ceil(canvas.Height)),
		StrokeWidth: cfg.StrokeWidth,
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	for _, para := range canvas.Paragraphs {
		for _, line := range para.Lines {
			for _, pw := range line.Words {
				if pw.Chain.Empty() {
					continue
				}
				// 词局部坐标 → 画布坐标：压缩、错切均以词基线为轴。
				place := func(p Point) Point {
					sy := cfg.VerticalScale * p.Y
					return Point{
						X: pw.X + p.X + shear*sy,
						Y: line.Baseline + sy,
					}
				}
				d.Primitives = append(d.Primitives, Primitive{
					Kind: OpMove,
					P:    place(pw.Chain.Strokes[0].Start),
				})
				for _, s := range pw.Chain.Strokes {
					switch s.Kind {
					case KindLine:
						d.Primitives = append(d.Primitives, Primitive{Kind: OpLine, P: place(s.End)})
					case KindArc:
						for _, seg := range s.toCubics() {
							d.Primitives = append(d.Primitives, Primitive{
								Kind: OpCubic,
								C1:   place(seg.c1),
								C2:   place(seg.c2),
								P:    place(seg.end),
							})
						}
					}
				}
			}
		}
	}
	return d
}
