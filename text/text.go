// Package text 负责源文本的清洗与切分：剥掉古腾堡页眉页脚标记、
// 过滤引擎不支持的字符、按空行切段、按空白切词。
// 全部是正则驱动的纯函数，不触碰网络与文件系统。
package text

import (
	"regexp"
	"strings"
)

var (
	startMarker = regexp.MustCompile(`(?s)\*\*\* START OF (?:THE|THIS) PROJECT GUTENBERG EBOOK[^*]*\*\*\*`)
	endMarker   = regexp.MustCompile(`(?s)\*\*\* END OF (?:THE|THIS) PROJECT GUTENBERG EBOOK.*\z`)
	spaces      = regexp.MustCompile(`[ \t]+`)
	unsupported = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?;:'"()-]`)
	blankLines  = regexp.MustCompile(`\n[ \t]*\n+`)
)

// Clean 清洗整本书的原始文本：去掉古腾堡起止标记之外的版权模板，
// 把不支持的字符替换为空格，并压缩行内空白。
// 段落边界（空行）保留，供 Paragraphs 切分使用。
func Clean(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if loc := startMarker.FindStringIndex(s); loc != nil {
		s = s[loc[1]:]
	}
	if loc := endMarker.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = unsupported.ReplaceAllString(s, " ")
	s = spaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Paragraphs 按空行把清洗后的文本切分为段落，段内换行折叠为空格。
// 空白段落被丢弃。
func Paragraphs(cleaned string) []string {
	parts := blankLines.Split(cleaned, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Words 按空白把一个段落切分为词；标点保持附着在词上，
// 由拼写层转换为对应的标点符号字形。
func Words(paragraph string) []string {
	return strings.Fields(paragraph)
}
