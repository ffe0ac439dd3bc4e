package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cbogart/AutoGrafoni/book"
	"github.com/cbogart/AutoGrafoni/catalog"
	"github.com/cbogart/AutoGrafoni/engine"
	"github.com/cbogart/AutoGrafoni/gutenberg"
	"github.com/cbogart/AutoGrafoni/renderer"
	canvasrenderer "github.com/cbogart/AutoGrafoni/renderer/canvas"
	"github.com/cbogart/AutoGrafoni/spell"
	"github.com/cbogart/AutoGrafoni/text"
)

func main() {
	title := flag.String("title", "", "书名（用于在 Project Gutenberg 搜索）")
	bookID := flag.String("book-id", "", "Project Gutenberg 书籍编号")
	input := flag.String("in", "", "本地文本文件路径（跳过下载）")
	output := flag.String("out", "output/grafoni_book.pdf", "PDF 输出路径")
	cacheDir := flag.String("cache", "gutenberg_cache", "下载缓存目录")
	maxPages := flag.Int("max-pages", 0, "页数上限，0 表示不限")
	debugPath := flag.String("debug", "", "排布调试 JSON 输出路径")
	wrapWidth := flag.Float64("wrap", 260, "折行宽度（布局单位）")
	lineSpace := flag.Float64("line-space", 20, "行间距（布局单位）")
	shear := flag.Float64("shear", -30, "错切角（度）")
	vScale := flag.Float64("v-scale", 0.5, "纵向压缩系数")
	flag.Parse()

	cfg := engine.Config{
		MaxWrapWidth:     *wrapWidth,
		LineSpacing:      *lineSpace,
		ParagraphSpacing: 2,
		WordSpacing:      6,
		VerticalScale:    *vScale,
		ShearAngle:       *shear,
		StrokeWidth:      1.0 / 3,
		Margin:           engine.Margin{Top: 10, Right: 10, Bottom: 10, Left: 10},
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer()
	if err := run(*title, *bookID, *input, *output, *cacheDir, *debugPath, *maxPages, cfg, r); err != nil {
		log.Fatalf("生成 PDF 失败: %v", err)
	}
	fmt.Printf("已生成 PDF：%s\n", *output)
}

// run 串联取书、清洗、排版与渲染。
func run(title, bookID, input, output, cacheDir, debugPath string, maxPages int, cfg engine.Config, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}

	raw, resolvedTitle, err := loadText(title, bookID, input, cacheDir)
	if err != nil {
		return err
	}

	cleaned := text.Clean(raw)
	paragraphs := text.Paragraphs(cleaned)
	log.Printf("清洗后共 %d 个段落", len(paragraphs))

	composer := &book.Composer{
		Catalog:      catalog.Default(),
		Config:       cfg,
		PageHeight:   1800,
		ParagraphGap: 2,
		MaxPages:     maxPages,
	}
	b, err := composer.Compose(resolvedTitle, paragraphs)
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}
	if b.Skipped > 0 {
		log.Printf("有 %d 个词因符号问题被跳过", b.Skipped)
	}
	log.Printf("共装配 %d 页", len(b.Pages))

	if debugPath != "" {
		if err := writeDebug(paragraphs, cfg, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := r.Render(b)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := os.WriteFile(output, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

// loadText 按优先级取得书籍正文：本地文件 > 按编号下载 > 按书名搜索后下载。
func loadText(title, bookID, input, cacheDir string) (raw, resolvedTitle string, err error) {
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return "", "", fmt.Errorf("读取本地文本 %s 失败: %w", input, err)
		}
		return string(data), title, nil
	}

	client := gutenberg.NewClient(cacheDir)
	id := bookID
	if id == "" {
		if title == "" {
			return "", "", fmt.Errorf("必须指定 -title、-book-id 或 -in 之一")
		}
		id, err = client.Search(title)
		if err != nil {
			return "", "", err
		}
		log.Printf("搜索到书籍编号 %s", id)
	}

	raw, err = client.Download(id)
	if err != nil {
		return "", "", err
	}
	log.Printf("已获取书籍 %s，共 %d 字节", id, len(raw))

	resolvedTitle = title
	if resolvedTitle == "" {
		if extracted := gutenberg.ExtractTitle(raw); extracted != "" {
			resolvedTitle = extracted
			log.Printf("提取到书名：%s", resolvedTitle)
		} else {
			resolvedTitle = "Book " + id
		}
	}
	return raw, resolvedTitle, nil
}

// writeDebug 对全文做一次整体排布并输出画布 JSON，便于检查折行与行距。
func writeDebug(paragraphs []string, cfg engine.Config, debugPath string) error {
	doc := make([][][]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		words := text.Words(p)
		symbols := make([][]string, 0, len(words))
		for _, w := range words {
			symbols = append(symbols, spell.TranscribeWords(w)...)
		}
		doc = append(doc, symbols)
	}
	skip := func(error, int, int) error { return nil }
	_, canvas, err := engine.Typeset(catalog.Default(), doc, cfg, skip)
	if err != nil {
		return fmt.Errorf("计算调试排布失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := engine.WriteDebugJSON(canvas, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
