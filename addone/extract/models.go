package extract

import (
	"encoding/json"
	"strings"
)

// VendorTag 厂商标识（封闭集合，新增厂商需同步扩展检测与插件）
type VendorTag string

const (
	VendorCisco   VendorTag = "Cisco"
	VendorHuawei  VendorTag = "Huawei"
	VendorH3C     VendorTag = "H3C"
	VendorUnknown VendorTag = "Unknown"
)

// UnknownText 未知字段的展示文本（仅在渲染与序列化时出现）
const UnknownText = "N/A"

// Value 字段值：显式区分“未解析到”与真实文本。
// 抓取文本里字面量的 "N/A" 是已知值，与未命中模式不同。
// 零值即未知。
type Value struct {
	Text  string
	Known bool
}

// Known 构造一个已知值（去除首尾空白）
func Known(s string) Value {
	return Value{Text: strings.TrimSpace(s), Known: true}
}

// String 渲染文本：未知时返回 UnknownText
func (v Value) String() string {
	if v.Known {
		return v.Text
	}
	return UnknownText
}

// MarshalJSON 序列化为展示文本，渲染层无需分支处理
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// MemberRecord 堆叠/集群中的单台物理成员
type MemberRecord struct {
	ID                string `json:"id"`
	Role              Value  `json:"role"`
	Model             Value  `json:"model"`
	SerialNumber      Value  `json:"sn"`
	CPUUtilization    Value  `json:"cpu"`
	MemoryUtilization Value  `json:"memory"`
	MACAddress        Value  `json:"mac_address"`
	Status            Value  `json:"status"`
}

// DeviceRecord 单台设备的规范解析结果。
// 经 Normalize 处理后 Members 非空，顶层字段要么来自主成员要么为未知，
// 此后记录只读。
type DeviceRecord struct {
	DeviceKey       string    `json:"device_key"`
	Vendor          VendorTag `json:"vendor"`
	Hostname        Value     `json:"hostname"`
	Uptime          Value     `json:"uptime"`
	NTPStatus       Value     `json:"ntp_status"`
	SoftwareVersion Value     `json:"ios_version"`

	// 主成员提升字段：集群 master 或单机成员的取值
	SerialNumber      Value `json:"sn"`
	Model             Value `json:"model"`
	CPUUtilization    Value `json:"cpu_utilization"`
	MemoryUtilization Value `json:"memory_utilization"`

	IsStack bool           `json:"is_stack"`
	Members []MemberRecord `json:"members"`

	// Extra 保存通用键值扫描及厂商特有的剩余字段（键为小写下划线形式）
	Extra map[string]string `json:"extra,omitempty"`
}

// PromoteMaster 将角色为 master 的成员字段提升为设备顶层字段。
// 没有任何成员带 master 角色时不做推断，顶层字段保持原状。
func (r *DeviceRecord) PromoteMaster() bool {
	for _, m := range r.Members {
		if m.Role.Known && strings.EqualFold(m.Role.Text, "master") {
			r.SerialNumber = m.SerialNumber
			r.Model = m.Model
			r.CPUUtilization = m.CPUUtilization
			r.MemoryUtilization = m.MemoryUtilization
			return true
		}
	}
	return false
}

// Placeholders 生成渲染层使用的占位符映射（大写键名），
// 包含合成键 IP 与 REPORT_TIME。Extra 中的键不覆盖规范字段。
func (r *DeviceRecord) Placeholders(reportTime string) map[string]string {
	m := make(map[string]string, len(r.Extra)+12)
	for k, v := range r.Extra {
		m[strings.ToUpper(k)] = v
	}
	m["IP"] = r.DeviceKey
	m["HOSTNAME"] = r.Hostname.String()
	m["VENDOR"] = string(r.Vendor)
	m["MODEL"] = r.Model.String()
	m["IOS_VERSION"] = r.SoftwareVersion.String()
	m["UPTIME"] = r.Uptime.String()
	m["NTP_STATUS"] = r.NTPStatus.String()
	m["SN"] = r.SerialNumber.String()
	m["CPU_UTILIZATION"] = r.CPUUtilization.String()
	m["MEMORY_UTILIZATION"] = r.MemoryUtilization.String()
	m["REPORT_TIME"] = reportTime
	return m
}
