package h3c_comware

import (
	"regexp"
	"strings"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// Plugin H3C/HPE Comware 巡检回显解析插件，适配 IRF 虚拟化
type Plugin struct{}

func (p *Plugin) Name() string { return "h3c_comware" }

var (
	promptRe  = regexp.MustCompile(`<(\S+?)>`)
	sysnameRe = regexp.MustCompile(`(?im)^\s*(?:sysname|hostname)\s+(.+?)\s*$`)

	uptimeRe  = regexp.MustCompile(`(?i)uptime is (.+)`)
	clockRe   = regexp.MustCompile(`(?i)Clock status: (.+)`)
	versionRe = regexp.MustCompile(`(?i)Comware Software, Version ([\d.]+)`)

	// display irf 成员行：编号、角色、型号、序列号
	memberRowRe = regexp.MustCompile(`(?im)^\s*(\d+)\s+(\w+)\s+([\w-]+)\s+([A-Z0-9]+)`)
	slotCPURe   = regexp.MustCompile(`(?i)Slot\s+(\d+)\s+CPU usage:\s+(\S+)`)
	slotMemRe   = regexp.MustCompile(`(?i)Slot\s+(\d+)\s+memory usage\s+\(Ratio\):\s+(\S+)`)

	// 单机路径
	serialRe = regexp.MustCompile(`(?i)Device serial number:\s*(\S+)`)
	modelRe  = regexp.MustCompile(`(?i)Device model:\s*(\S+)`)
	cpuRe    = regexp.MustCompile(`(?i)CPU average usage:\s*(\S+)`)
	memRe    = regexp.MustCompile(`(?i)Memory usage:\s*(\S+)`)
)

func (p *Plugin) Extract(raw string) extract.DeviceRecord {
	rec := extract.DeviceRecord{Vendor: extract.VendorH3C}

	rec.Hostname = extract.FirstMatch(raw, promptRe, sysnameRe)
	rec.Uptime = extract.FirstMatch(raw, uptimeRe)
	rec.NTPStatus = extract.FirstMatch(raw, clockRe)
	rec.SoftwareVersion = extract.FirstMatch(raw, versionRe)

	low := strings.ToLower(raw)
	if strings.Contains(low, "display irf") || strings.Contains(low, "display device") {
		if members := parseIRFMembers(raw); len(members) > 0 {
			rec.Members = members
			rec.IsStack = len(members) > 1
			rec.PromoteMaster()
		}
	}

	if len(rec.Members) == 0 {
		member := extract.MemberRecord{ID: "1"}
		member.SerialNumber = extract.FirstMatch(raw, serialRe)
		member.Model = extract.FirstMatch(raw, modelRe)
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

// parseIRFMembers 第一遍匹配 IRF 成员行，第二遍按槽位号关联 CPU 与内存
func parseIRFMembers(raw string) []extract.MemberRecord {
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

func init() { extract.Register(extract.VendorH3C, &Plugin{}) }
