// Package canvasrenderer 通过 github.com/tdewolff/canvas 输出排版结果：
// 整本书渲染为多页 PDF，单幅排版图可单独渲染为 SVG 或 PNG。
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/cbogart/AutoGrafoni/book"
	"github.com/cbogart/AutoGrafoni/engine"
	"github.com/cbogart/AutoGrafoni/renderer"
)

// Options 配置页面几何，单位毫米。
type Options struct {
	PageWidth  float64 // 默认 A4 宽 210
	PageHeight float64 // 默认 A4 高 297
	Margin     float64 // 页边距，默认 15
	FolioInset float64 // 页码距页底的距离，默认 10
}

// Renderer 把 Book 绘制为多页 PDF。
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 以 A4 默认页面构造渲染器。
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions 按给定页面几何构造渲染器，零值字段取默认。
func NewRendererWithOptions(opts Options) *Renderer {
	if opts.PageWidth <= 0 {
		opts.PageWidth = 210
	}
	if opts.PageHeight <= 0 {
		opts.PageHeight = 297
	}
	if opts.Margin <= 0 {
		opts.Margin = 15
	}
	if opts.FolioInset <= 0 {
		opts.FolioInset = 10
	}
	return &Renderer{opts: opts}
}

// Render 渲染整本书为 PDF 字节切片。
func (r *Renderer) Render(b *book.Book) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("渲染输入为空")
	}
	if len(b.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}
	if b.PageWidth <= 0 {
		return nil, fmt.Errorf("页面布局宽度非法: %g", b.PageWidth)
	}

	// 布局单位 → 毫米：整页内容宽映射到纸面内容区宽，比例各页一致，
	// 绝不按内容高度做第二套比例 —— 高度随内容走。
	scale := (r.opts.PageWidth - 2*r.opts.Margin) / b.PageWidth

	var buf bytes.Buffer
	writer := pdf.New(&buf, r.opts.PageWidth, r.opts.PageHeight, nil)
	writer.SetInfo(b.Title, "Grafoni shorthand", "grafoni", "", "AutoGrafoni")
	for i, page := range b.Pages {
		if i > 0 {
			writer.NewPage(r.opts.PageWidth, r.opts.PageHeight)
		}
		c := canvas.New(r.opts.PageWidth, r.opts.PageHeight)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

		// 白色衬底
		ctx.SetFillColor(canvas.White)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(0, 0, canvas.Rectangle(r.opts.PageWidth, r.opts.PageHeight))

		top := r.opts.Margin
		if i == 0 && b.TitleDrawing != nil {
			r.drawDrawing(ctx, b.TitleDrawing, r.opts.Margin, top, scale)
			top += float64(b.TitleDrawing.Height)*scale + 4
		}
		for _, item := range page.Items {
			r.drawDrawing(ctx, item.Drawing, r.opts.Margin, top+item.Y*scale, scale)
		}
		if page.Folio != nil {
			fw := float64(page.Folio.Width) * scale
			fh := float64(page.Folio.Height) * scale
			r.drawDrawing(ctx, page.Folio,
				r.opts.PageWidth-r.opts.Margin-fw,
				r.opts.PageHeight-r.opts.FolioInset-fh,
				scale)
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawDrawing 把一幅排版图按比例绘制到页面坐标 (x, y) 处。
func (r *Renderer) drawDrawing(ctx *canvas.Context, d *engine.Drawing, x, y, scale float64) {
	if d == nil || len(d.Primitives) == 0 {
		return
	}
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(d.StrokeWidth * scale)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	ctx.DrawPath(x, y, buildPath(d, scale))
}

// buildPath 把发射结果的路径命令转换为 canvas.Path（相对原点，单位已换算）。
func buildPath(d *engine.Drawing, scale float64) *canvas.Path {
	p := &canvas.Path{}
	for _, prim := range d.Primitives {
		switch prim.Kind {
		case engine.OpMove:
			p.MoveTo(prim.P.X*scale, prim.P.Y*scale)
		case engine.OpLine:
			p.LineTo(prim.P.X*scale, prim.P.Y*scale)
		case engine.OpCubic:
			p.CubeTo(
				prim.C1.X*scale, prim.C1.Y*scale,
				prim.C2.X*scale, prim.C2.Y*scale,
				prim.P.X*scale, prim.P.Y*scale,
			)
		}
	}
	return p
}

// RenderSVG 把单幅排版图渲染为 SVG；scale 为每布局单位放大的倍数。
func RenderSVG(d *engine.Drawing, scale float64) ([]byte, error) {
	c, err := drawStandalone(d, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	target := svg.New(&buf, c.W, c.H, nil)
	c.RenderTo(target)
	if err := target.Close(); err != nil {
		return nil, fmt.Errorf("写入 SVG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG 把单幅排版图栅格化为 PNG；scale 为每布局单位的像素数。
func RenderPNG(d *engine.Drawing, scale float64) ([]byte, error) {
	c, err := drawStandalone(d, 1)
	if err != nil {
		return nil, err
	}
	img := rasterizer.Draw(c, canvas.DPMM(scale), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// drawStandalone 把单幅排版图画到一张与其像素尺寸等大的画布上。
func drawStandalone(d *engine.Drawing, scale float64) (*canvas.Canvas, error) {
	if d == nil {
		return nil, fmt.Errorf("渲染输入为空")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("排版图尺寸非法: %dx%d", d.Width, d.Height)
	}
	w := float64(d.Width) * scale
	h := float64(d.Height) * scale
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)
	// 衬底色由发射方随排版图给出。
	ctx.SetFillColor(d.Background)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.SetStrokeColor(canvas.Black)
	ctx.SetStrokeWidth(d.StrokeWidth * scale)
	ctx.SetStrokeCapper(canvas.RoundCap)
	ctx.SetStrokeJoiner(canvas.RoundJoin)
	ctx.DrawPath(0, 0, buildPath(d, scale))
	return c, nil
}
