package extract

import "regexp"

// 模式库辅助函数：各厂商插件以“每字段一条正则”的方式组织规则，
// 这里提供统一的取值方式，未命中一律落回未知值。

// FirstMatch 依序尝试多个带单捕获组的正则，返回第一个命中的值
func FirstMatch(raw string, patterns ...*regexp.Regexp) Value {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(raw); len(m) > 1 {
			return Known(m[1])
		}
	}
	return Value{}
}

// MatchMap 提取重复出现的 (键, 值) 匹配为映射，用于槽位号到指标的关联
func MatchMap(raw string, re *regexp.Regexp) map[string]string {
	out := make(map[string]string)
	for _, m := range re.FindAllStringSubmatch(raw, -1) {
		if len(m) > 2 {
			out[m[1]] = m[2]
		}
	}
	return out
}
