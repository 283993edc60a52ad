package extract

import (
	"strconv"
	"strings"
)

// Normalize 将插件输出折叠为规范形态：成员列表非空、成员 ID 非空、
// 通用键值结果回填仍为未知的规范字段。渲染层据此不再区分厂商。
// 永不失败，输入记录缺什么就补什么。
func Normalize(rec DeviceRecord) DeviceRecord {
	if rec.Vendor == "" {
		rec.Vendor = VendorUnknown
	}
	// 单机设备表示为只有一个成员的堆叠，成员列表永不为空
	if len(rec.Members) == 0 {
		rec.Members = []MemberRecord{{ID: "1"}}
		rec.IsStack = false
	}
	for i := range rec.Members {
		if strings.TrimSpace(rec.Members[i].ID) == "" {
			rec.Members[i].ID = strconv.Itoa(i + 1)
		}
	}

	// 通用扫描得到的键值回填规范字段（仅在字段仍未知时）
	if len(rec.Extra) > 0 {
		fill := func(dst *Value, keys ...string) {
			if dst.Known {
				return
			}
			for _, k := range keys {
				if v, ok := rec.Extra[k]; ok && strings.TrimSpace(v) != "" {
					*dst = Known(v)
					return
				}
			}
		}
		fill(&rec.Hostname, "hostname", "sysname", "device_name")
		fill(&rec.Uptime, "uptime")
		fill(&rec.NTPStatus, "ntp_status", "clock_status")
		fill(&rec.SoftwareVersion, "ios_version", "software_version", "version")
		fill(&rec.SerialNumber, "sn", "serial_number")
		fill(&rec.Model, "model", "device_model")
		fill(&rec.CPUUtilization, "cpu_utilization", "cpu_usage")
		fill(&rec.MemoryUtilization, "memory_utilization", "memory_usage")
	}
	return rec
}
