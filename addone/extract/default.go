package extract

import (
	"regexp"
	"strings"
)

// Plugin 厂商解析插件接口
type Plugin interface {
	Name() string
	// Extract 将单台设备的原始回显解析为设备记录。
	// 永不失败：模式未命中的字段置为未知值，而不是返回错误。
	Extract(raw string) DeviceRecord
}

// GenericPlugin 未识别厂商的兜底插件：对全文做 key: value 行扫描，
// 不保留堆叠/成员结构——对无法识别的格式这是可接受的降级行为。
type GenericPlugin struct{}

func (p *GenericPlugin) Name() string { return "generic" }

var kvLineRe = regexp.MustCompile(`(?m)^[ \t]*(.+?)[ \t]*:[ \t]*(.+?)[ \t]*$`)

func (p *GenericPlugin) Extract(raw string) DeviceRecord {
	rec := DeviceRecord{
		Vendor:  VendorUnknown,
		IsStack: false,
		Extra:   make(map[string]string),
	}
	for _, m := range kvLineRe.FindAllStringSubmatch(raw, -1) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(m[1])), " ", "_")
		if key == "" {
			continue
		}
		rec.Extra[key] = strings.TrimSpace(m[2])
	}
	rec.Members = []MemberRecord{{ID: "1"}}
	return rec
}
