package render

import (
	"fmt"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// memberTableHeader 成员设备详情表头
var memberTableHeader = []string{"ID/Slot", "角色", "型号", "序列号", "CPU", "内存", "状态"}

// memberRows 把成员记录展开为表格行（含表头），模板模式与默认布局共用
func memberRows(members []extract.MemberRecord) [][]string {
	rows := make([][]string, 0, len(members)+1)
	rows = append(rows, memberTableHeader)
	for _, m := range members {
		rows = append(rows, []string{
			m.ID,
			m.Role.String(),
			m.Model.String(),
			m.SerialNumber.String(),
			m.CPUUtilization.String(),
			m.MemoryUtilization.String(),
			m.Status.String(),
		})
	}
	return rows
}

// BuildReport 按默认布局构造报告文档：每台设备一页，
// 依次为设备概览、运行状态、成员设备详情三个小节。
func BuildReport(records []extract.DeviceRecord, reportTime string) *Document {
	doc := NewDocument()
	for i, rec := range records {
		if i > 0 {
			doc.AddPageBreak()
		}
		doc.AddHeading(fmt.Sprintf("交换机状态报告 - %s (%s)", rec.DeviceKey, rec.Hostname.String()), 0)

		doc.AddHeading("设备概览", 2)
		doc.AddTable([][]string{
			{"主机名", rec.Hostname.String()},
			{"厂商", string(rec.Vendor)},
			{"主设备型号", rec.Model.String()},
			{"软件版本", rec.SoftwareVersion.String()},
		})

		doc.AddHeading("运行状态", 2)
		doc.AddTable([][]string{
			{"运行时间", rec.Uptime.String()},
			{"NTP状态", rec.NTPStatus.String()},
			{"CPU使用率(主)", rec.CPUUtilization.String()},
			{"内存使用率(主)", rec.MemoryUtilization.String()},
		})

		doc.AddHeading("成员设备详情", 2)
		doc.AddTable(memberRows(rec.Members))

		doc.AddParagraph(fmt.Sprintf("报告生成时间：%s", reportTime))
	}
	return doc
}

// RenderReport 渲染默认布局报告并保存
func RenderReport(outputPath string, records []extract.DeviceRecord, reportTime string) error {
	return BuildReport(records, reportTime).Save(outputPath)
}
