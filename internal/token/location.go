package token

// ============================================================================
// 源码区间
// ============================================================================
//
// Location 表示一个半开区间 [Beg, End)，单位是 UTF-16 码元偏移。
// 扫描器对每个 token 记录这样一个区间；行列号由上层（错误报告器、LSP）
// 根据源文本自行换算。
//
// ============================================================================

// Location 源码区间（码元偏移，半开区间）
type Location struct {
	Beg int // 起始偏移
	End int // 结束偏移（不含）
}

// IsValid 判断区间是否有效
func (l Location) IsValid() bool {
	return l.Beg >= 0 && l.End >= l.Beg
}

// InvalidLocation 返回一个无效区间（-1 在任何真实源码范围之外）
func InvalidLocation() Location {
	return Location{Beg: -1, End: -1}
}
