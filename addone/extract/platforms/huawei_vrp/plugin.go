package huawei_vrp

import (
	"regexp"
	"strings"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// Plugin 华为 VRP 巡检回显解析插件，适配 iStack 堆叠
type Plugin struct{}

func (p *Plugin) Name() string { return "huawei_vrp" }

var (
	// 主机名：尖括号提示符优先于 sysname/hostname 配置声明
	promptRe  = regexp.MustCompile(`<(\S+?)>`)
	sysnameRe = regexp.MustCompile(`(?im)^\s*(?:sysname|hostname)\s+(.+?)\s*$`)

	uptimeRe  = regexp.MustCompile(`(?i)uptime is (.+)`)
	clockRe   = regexp.MustCompile(`(?i)clock status\s*:\s*(.+)`)
	versionRe = regexp.MustCompile(`(?i)Version \d\.\d+ \((.+?)\)`)

	// display device 成员行：槽位、角色、状态占位列、型号、序列号
	memberRowRe = regexp.MustCompile(`(?im)^\s*(\d+)\s+(\w+)\s+\w+\s+([\w-]+)\s+([0-9A-Z]+)`)
	slotCPURe   = regexp.MustCompile(`(?i)CPU Usage for Slot\s+(\d+)\s+is\s+(\S+)`)
	slotMemRe   = regexp.MustCompile(`(?i)Memory usage of slot\s+(\d+):\s+(\S+)`)

	// 单机路径：电子标签与整机指标
	barcodeRe = regexp.MustCompile(`(?im)BARCODE\s+:\s+(\S+)`)
	itemRe    = regexp.MustCompile(`(?im)ITEM\s+:\s+(\S+)`)
	cpuRe     = regexp.MustCompile(`Control Plane\s+CPU Usage is\s*(\S+)`)
	memRe     = regexp.MustCompile(`Memory Using Percentage Is\s*(\S+)`)
)

func (p *Plugin) Extract(raw string) extract.DeviceRecord {
	rec := extract.DeviceRecord{Vendor: extract.VendorHuawei}

	rec.Hostname = extract.FirstMatch(raw, promptRe, sysnameRe)
	rec.Uptime = extract.FirstMatch(raw, uptimeRe)
	rec.NTPStatus = extract.FirstMatch(raw, clockRe)
	rec.SoftwareVersion = extract.FirstMatch(raw, versionRe)

	if strings.Contains(strings.ToLower(raw), "display device") {
		if members := parseStackMembers(raw); len(members) > 0 {
			rec.Members = members
			rec.IsStack = len(members) > 1
			rec.PromoteMaster()
		}
	}

	if len(rec.Members) == 0 {
		member := extract.MemberRecord{ID: "1"}
		member.SerialNumber = extract.FirstMatch(raw, barcodeRe)
		member.Model = extract.FirstMatch(raw, itemRe)
		member.CPUUtilization = extract.FirstMatch(raw, cpuRe)
		member.MemoryUtilization = extract.FirstMatch(raw, memRe)
		rec.SerialNumber = member.SerialNumber
		rec.Model = member.Model
		rec.CPUUtilization = member.CPUUtilization
		rec.MemoryUtilization = member.MemoryUtilization
		rec.Members = append(rec.Members, member)
		rec.IsStack = false
	}
	return rec
}

// parseStackMembers 第一遍匹配 display device 成员行，
// 第二遍按槽位号关联各槽位的 CPU 与内存使用率
func parseStackMembers(raw string) []extract.MemberRecord {
	rows := memberRowRe.FindAllStringSubmatch(raw, -1)
	members := make([]extract.MemberRecord, 0, len(rows))
	for _, m := range rows {
		members = append(members, extract.MemberRecord{
			ID:           m[1],
			Role:         extract.Known(m[2]),
			Model:        extract.Known(m[3]),
			SerialNumber: extract.Known(m[4]),
		})
	}
	cpuMap := extract.MatchMap(raw, slotCPURe)
	memMap := extract.MatchMap(raw, slotMemRe)
	for i := range members {
		if v, ok := cpuMap[members[i].ID]; ok {
			members[i].CPUUtilization = extract.Known(v)
		}
		if v, ok := memMap[members[i].ID]; ok {
			members[i].MemoryUtilization = extract.Known(v)
		}
	}
	return members
}

func init() { extract.Register(extract.VendorHuawei, &Plugin{}) }
