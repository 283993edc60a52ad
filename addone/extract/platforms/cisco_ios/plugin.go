package cisco_ios

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// Plugin Cisco IOS/IOS-XE 巡检回显解析插件，适配 StackWise 堆叠
type Plugin struct{}

func (p *Plugin) Name() string { return "cisco_ios" }

var (
	// 主机名：提示符形式优先于配置声明（避免 CDP/LLDP 邻居信息干扰）
	promptRe   = regexp.MustCompile(`(\S+?)#`)
	hostnameRe = regexp.MustCompile(`(?im)^\s*hostname\s+(.+?)\s*$`)

	uptimeRe  = regexp.MustCompile(`(?i)uptime is (.+)`)
	clockRe   = regexp.MustCompile(`(?i)Clock is (.+)`)
	versionRe = regexp.MustCompile(`(?i)Cisco IOS.*, Version (\S+),`)
	cpuRe     = regexp.MustCompile(`(?i)CPU utilization for five seconds: (\S+)`)

	// 内存无百分比直出，需由 Processor Pool 的 Total/Used 推导
	memTotalRe = regexp.MustCompile(`(?i)Processor Pool Total:\s+(\d+)`)
	memUsedRe  = regexp.MustCompile(`(?i)Used:\s+(\d+)`)

	// show switch 成员行：编号（master 带 *）、占位列、型号、MAC、状态
	memberRowRe = regexp.MustCompile(`(?im)^\s*(\*?\d+)\s+\S+\s+([\w-]+)\s+([0-9a-f:.]+)\s+(\w+)`)
	// show version 中按成员编号列出的序列号
	slotSNRe = regexp.MustCompile(`(?im)Switch\s+(\d+)\s+SERIAL NUMBER\s+:\s+(\S+)`)

	// 单机路径使用的整机字段
	systemSNRe = regexp.MustCompile(`(?i)System Serial Number\s+:\s+(\S+)`)
	modelRe    = regexp.MustCompile(`(?i)Model Number\s+:\s+(\S+)`)
)

func (p *Plugin) Extract(raw string) extract.DeviceRecord {
	rec := extract.DeviceRecord{Vendor: extract.VendorCisco}

	rec.Hostname = extract.FirstMatch(raw, promptRe, hostnameRe)
	rec.Uptime = extract.FirstMatch(raw, uptimeRe)
	rec.NTPStatus = extract.FirstMatch(raw, clockRe)
	rec.SoftwareVersion = extract.FirstMatch(raw, versionRe)

	// CPU 为复合值（五秒/一分钟），仅保留第一个 / 之前的五秒部分
	if v := extract.FirstMatch(raw, cpuRe); v.Known {
		rec.CPUUtilization = extract.Known(strings.SplitN(v.Text, "/", 2)[0])
	}
	rec.MemoryUtilization = deriveMemory(raw)

	// 仅当回显中包含 show switch 时才尝试堆叠成员解析；
	// 命令存在但解析不出成员行时仍走单机路径
	if strings.Contains(strings.ToLower(raw), "show switch") {
		if members := parseStackMembers(raw); len(members) > 0 {
			rec.Members = members
			rec.IsStack = len(members) > 1
			// show switch 成员行不含角色列，master 提升无从谈起，
			// 堆叠时顶层序列号/型号保持未知（已知缺口，不做推断）
			rec.PromoteMaster()
		}
	}

	if len(rec.Members) == 0 {
		member := extract.MemberRecord{
			ID:                "1",
			Status:            extract.Known("Ready"),
			CPUUtilization:    rec.CPUUtilization,
			MemoryUtilization: rec.MemoryUtilization,
		}
		member.SerialNumber = extract.FirstMatch(raw, systemSNRe)
		member.Model = extract.FirstMatch(raw, modelRe)
		rec.SerialNumber = member.SerialNumber
		rec.Model = member.Model
		rec.Members = append(rec.Members, member)
		rec.IsStack = false
	}
	return rec
}

// deriveMemory 由 used/total 推导内存使用率，保留两位小数；
// total 为 0 时返回 "0%" 而不是除零
func deriveMemory(raw string) extract.Value {
	mt := memTotalRe.FindStringSubmatch(raw)
	mu := memUsedRe.FindStringSubmatch(raw)
	if mt == nil || mu == nil {
		return extract.Value{}
	}
	total, err1 := strconv.ParseFloat(mt[1], 64)
	used, err2 := strconv.ParseFloat(mu[1], 64)
	if err1 != nil || err2 != nil {
		return extract.Value{}
	}
	if total <= 0 {
		return extract.Known("0%")
	}
	return extract.Known(fmt.Sprintf("%.2f%%", used/total*100))
}

// parseStackMembers 第一遍匹配 show switch 成员行，
// 第二遍按成员编号关联 show version 中的序列号
func parseStackMembers(raw string) []extract.MemberRecord {
	rows := memberRowRe.FindAllStringSubmatch(raw, -1)
	members := make([]extract.MemberRecord, 0, len(rows))
	for _, m := range rows {
		members = append(members, extract.MemberRecord{
			ID:         strings.TrimSpace(strings.ReplaceAll(m[1], "*", "")),
			Model:      extract.Known(m[2]),
			MACAddress: extract.Known(m[3]),
			Status:     extract.Known(m[4]),
		})
	}
	snMap := extract.MatchMap(raw, slotSNRe)
	for i := range members {
		if sn, ok := snMap[members[i].ID]; ok {
			members[i].SerialNumber = extract.Known(sn)
		}
	}
	return members
}

func init() { extract.Register(extract.VendorCisco, &Plugin{}) }
