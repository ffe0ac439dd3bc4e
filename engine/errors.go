package engine

import "fmt"

// 错误约定（与整体设计一致）：
//   - UnknownSymbol：符号不在字表中，可由调用方按跳过/替换策略恢复，引擎不静默吞掉；
//   - InvalidJoin：连接不变式被破坏，视为字表角度数据的缺陷，仅对当前词致命；
//   - 空输入不是错误，产出最小尺寸的空画布。
// 任何错误都不会通过缩放或扭曲几何来“恢复”。

// UnknownSymbolError 表示符号序列中第 Index 个符号没有字表条目。
type UnknownSymbolError struct {
	Symbol string
	Index  int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("未知符号 %q（序列第 %d 个）", e.Symbol, e.Index)
}

// InvalidJoinError 表示连笔时连接点或切向角超出容差，
// Delta 记录超标的切向角差或基线偏移量。
type InvalidJoinError struct {
	Symbol string
	Index  int
	Reason string
	Delta  float64
}

func (e *InvalidJoinError) Error() string {
	return fmt.Sprintf("符号 %q（序列第 %d 个）连接非法：%s（偏差 %.3f）", e.Symbol, e.Index, e.Reason, e.Delta)
}
