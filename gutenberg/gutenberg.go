// Package gutenberg 从 Project Gutenberg 检索书籍原文：
// 按书名搜索、按编号下载（带多个镜像路径回退）、本地文件缓存，
// 以及从下载文本中按模式提取书名。
package gutenberg

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.gutenberg.org"

// minBookSize 为判定“下载到了正文”的最小字节数，低于它视为拿到了错误页。
const minBookSize = 1000

var (
	bookLinkPattern = regexp.MustCompile(`href="/ebooks/(\d+)"`)
	htmlTagPattern  = regexp.MustCompile(`<[^>]+>`)
	spacePattern    = regexp.MustCompile(`\s+`)

	// titlePatterns 按优先级排列，命中第一个即停。
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Title:\s*([^\n\r]+)`),
		regexp.MustCompile(`(?i)The Project Gutenberg eBook of\s+([^\n\r,]+)`),
		regexp.MustCompile(`(?i)Title\s*=\s*([^\n\r]+)`),
	}
	titleJunk = regexp.MustCompile(`[^\w\s\-.,!?'"()]`)
)

// Client 访问 Project Gutenberg 并在本地缓存下载结果。
type Client struct {
	BaseURL  string
	CacheDir string
	HTTP     *http.Client
}

// NewClient 以默认站点与给定缓存目录构造客户端。
func NewClient(cacheDir string) *Client {
	return &Client{
		BaseURL:  defaultBaseURL,
		CacheDir: cacheDir,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Search 按书名搜索并返回第一个匹配的书籍编号。
func (c *Client) Search(title string) (string, error) {
	q := url.QueryEscape(title)
	body, err := c.fetch(fmt.Sprintf("%s/ebooks/search/?query=%s", c.BaseURL, q))
	if err != nil {
		return "", fmt.Errorf("搜索书名 %q 失败: %w", title, err)
	}
	m := bookLinkPattern.FindStringSubmatch(body)
	if m == nil {
		return "", fmt.Errorf("没有找到与 %q 匹配的书籍", title)
	}
	return m[1], nil
}

// Download 下载编号对应的书籍正文；缓存命中时直接读本地文件。
// 依次尝试 UTF-8、纯文本与 HTML 三种镜像路径，直到拿到足够长的正文。
func (c *Client) Download(id string) (string, error) {
	cachePath := filepath.Join(c.CacheDir, id+".txt")
	if data, err := os.ReadFile(cachePath); err == nil && len(data) > 0 {
		return string(data), nil
	}

	candidates := []struct {
		url  string
		html bool
	}{
		{fmt.Sprintf("%s/files/%s/%s-0.txt", c.BaseURL, id, id), false},
		{fmt.Sprintf("%s/files/%s/%s.txt", c.BaseURL, id, id), false},
		{fmt.Sprintf("%s/files/%s/%s-h/%s-h.htm", c.BaseURL, id, id, id), true},
	}

	var lastErr error
	for _, cand := range candidates {
		body, err := c.fetch(cand.url)
		if err != nil {
			lastErr = err
			continue
		}
		if cand.html {
			body = stripHTML(body)
		}
		if len(body) < minBookSize {
			lastErr = fmt.Errorf("%s 返回的内容过短（%d 字节）", cand.url, len(body))
			continue
		}
		if c.CacheDir != "" {
			if err := os.MkdirAll(c.CacheDir, 0o755); err == nil {
				_ = os.WriteFile(cachePath, []byte(body), 0o644)
			}
		}
		return body, nil
	}
	return "", fmt.Errorf("下载书籍 %s 失败: %w", id, lastErr)
}

// ExtractTitle 从正文中提取书名；找不到时返回空串，由调用方兜底。
func ExtractTitle(body string) string {
	for _, pat := range titlePatterns {
		m := pat.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		title := titleJunk.ReplaceAllString(strings.TrimSpace(m[1]), "")
		title = spacePattern.ReplaceAllString(title, " ")
		title = strings.TrimSpace(title)
		if len(title) > 3 {
			return title
		}
	}
	return ""
}

func (c *Client) fetch(u string) (string, error) {
	resp, err := c.HTTP.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: %s", u, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stripHTML 做最简单的 HTML 转纯文本：去标签、并空白。
func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
