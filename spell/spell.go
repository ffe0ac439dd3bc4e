// Package spell 把英文拼写转换为 Grafoni 音标符号序列。
// 采用按表顺序匹配的字素规则：每条规则带可选的左右上下文，
// 先到先得，因此特殊规则（ough、oo+k 等）必须排在一般规则之前。
// 这是一个粗粒度的正字法近似，覆盖常见拼写模式，不追求完整的音系学。
package spell

import "strings"

// rule 描述一条字素到音标的改写规则。
// left 为 '^' 时要求字素位于词首（串首或前一字符不是字母）；
// right 为 "$" 时要求字素位于词尾（串尾或后一字符不是字母），
// 为 "@" 时要求后面紧跟字母，其余非空值按字面前瞻匹配。
type rule struct {
	graph string
	left  byte
	right string
	out   []string
}

func out(symbols ...string) []string { return symbols }

// rules 是默认规则表。顺序即优先级。
var rules = []rule{
	// 双字素辅音与哑音
	{graph: "kn", left: '^', out: out("n")},
	{graph: "qu", out: out("k", "w")},
	{graph: "ck", out: out("k")},
	{graph: "ph", out: out("f")},
	{graph: "wh", out: out("w")},
	{graph: "sh", out: out("sh")},
	{graph: "ch", out: out("ch")},
	{graph: "th", right: "er", out: out("dh")},
	{graph: "th", out: out("th")},
	{graph: "ng", out: out("ng")},

	// 元音组合；ough 必须先于 ou / o 检查
	{graph: "ough", out: out("lv3")},
	{graph: "gh", out: nil},
	{graph: "ee", out: out("uv1", "uv1")},
	{graph: "oo", right: "k", out: out("mv1")},
	{graph: "oo", out: out("lv1")},
	{graph: "oa", out: out("lv2", "lv1")},
	{graph: "ow", right: "$", out: out("lv2", "lv1")},
	{graph: "ow", out: out("mv3", "lv1")},
	{graph: "ou", out: out("mv3", "lv1")},
	{graph: "er", right: "$", out: out("mv2", "r")},

	// 单元音
	{graph: "a", left: '^', out: out("mv2")},
	{graph: "a", right: "th", out: out("mv3")},
	{graph: "a", out: out("uv3")},
	{graph: "e", right: "$", out: nil}, // 词尾哑音 e
	{graph: "e", out: out("uv2")},
	{graph: "i", out: out("uv1")},
	{graph: "o", out: out("lv3")},
	{graph: "u", out: out("mv1")},

	// 上下文相关辅音
	{graph: "c", right: "e", out: out("s")},
	{graph: "c", right: "i", out: out("s")},
	{graph: "c", right: "y", out: out("s")},
	{graph: "c", out: out("k")},
	{graph: "x", out: out("k", "s")},

	// 连续连字符充当词间分隔，补一个空格符号
	{graph: "--", right: "@", out: out("-", "-", " ")},
}

// Separator 是 Transcribe 在词内分隔处（如双连字符之后）输出的切分符号。
// 它不是字表符号：送入连笔前必须用 TranscribeWords 按它切开。
const Separator = " "

// TranscribeWords 把文本转换为符号序列并按 Separator 切分，
// 每个子序列对应一条独立的笔画链（"know--know" 会得到两条链，
// 连字符附着在前一条上）。
func TranscribeWords(text string) [][]string {
	var words [][]string
	var cur []string
	for _, s := range Transcribe(text) {
		if s == Separator {
			if len(cur) > 0 {
				words = append(words, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, s)
	}
	if len(cur) > 0 {
		words = append(words, cur)
	}
	return words
}

// Transcribe 把英文文本转换为音标符号序列。
// 大小写不敏感；规则表覆盖不到的字符（其余辅音、数字、标点、空白）
// 原样透传为单字符符号，由下游引擎按 UnknownSymbol 策略处置 ——
// 这里不做静默丢弃。
func Transcribe(text string) []string {
	word := strings.ToLower(text)
	var symbols []string
	for i := 0; i < len(word); {
		if r, n := matchAt(word, i); r != nil {
			symbols = append(symbols, r.out...)
			i += n
			continue
		}
		symbols = append(symbols, string(word[i]))
		i++
	}
	return symbols
}

// matchAt 返回位置 i 处第一条命中的规则及其消耗的字符数。
func matchAt(word string, i int) (*rule, int) {
	for ri := range rules {
		r := &rules[ri]
		if !strings.HasPrefix(word[i:], r.graph) {
			continue
		}
		if r.left == '^' && i > 0 && isLetter(word[i-1]) {
			continue
		}
		rest := word[i+len(r.graph):]
		switch r.right {
		case "":
		case "$":
			if rest != "" && isLetter(rest[0]) {
				continue
			}
		case "@":
			if rest == "" || !isLetter(rest[0]) {
				continue
			}
		default:
			if !strings.HasPrefix(rest, r.right) {
				continue
			}
		}
		return r, len(r.graph)
	}
	return nil, 0
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
