package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// memberTablePlaceholder 模板中标记成员表插入位置的占位段落
const memberTablePlaceholder = "{MEMBER_TABLE}"

// RenderTemplate 基于用户模板渲染报告：模板正文视为单台设备的页面样板，
// 逐台克隆并替换 {大写占位符}，设备之间插入分页符。
// 页眉页脚中的占位符用首台设备的值做一次全局替换。
func RenderTemplate(templatePath, outputPath string, records []extract.DeviceRecord, reportTime string) error {
	r, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()
	content := doc.GetContent()

	prefix, inner, suffix, err := splitBody(content)
	if err != nil {
		return err
	}
	// 正文末尾的节属性（页面尺寸、页边距）保留在所有设备页之后
	pageTmpl, tail := splitSectPr(inner)

	pages := make([]string, 0, len(records))
	for _, rec := range records {
		page := pageTmpl
		for key, val := range rec.Placeholders(reportTime) {
			page = strings.ReplaceAll(page, "{"+key+"}", xmlEscape(val))
		}
		page = expandMemberTable(page, rec.Members)
		pages = append(pages, page)
	}
	doc.SetContent(prefix + strings.Join(pages, pageBreakXML) + tail + suffix)

	// 页眉页脚没有按设备分页的概念，用首台设备的值替换一次
	if len(records) > 0 {
		for key, val := range records[0].Placeholders(reportTime) {
			ph := "{" + key + "}"
			if err := doc.ReplaceHeader(ph, xmlEscape(val)); err != nil {
				return fmt.Errorf("replace header placeholder %s: %w", ph, err)
			}
			if err := doc.ReplaceFooter(ph, xmlEscape(val)); err != nil {
				return fmt.Errorf("replace footer placeholder %s: %w", ph, err)
			}
		}
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := doc.WriteToFile(outputPath); err != nil {
		return fmt.Errorf("write rendered template: %w", err)
	}
	return nil
}

// splitBody 把 document.xml 拆成 <w:body> 之前、正文、</w:body> 之后三段
func splitBody(content string) (prefix, inner, suffix string, err error) {
	openIdx := strings.Index(content, "<w:body>")
	closeIdx := strings.LastIndex(content, "</w:body>")
	if openIdx < 0 || closeIdx < 0 || closeIdx < openIdx {
		return "", "", "", fmt.Errorf("template document has no body element")
	}
	openEnd := openIdx + len("<w:body>")
	return content[:openEnd], content[openEnd:closeIdx], content[closeIdx:], nil
}

// splitSectPr 分离正文尾部的 <w:sectPr> 节属性（可能不存在）
func splitSectPr(inner string) (page, tail string) {
	idx := strings.LastIndex(inner, "<w:sectPr")
	if idx < 0 {
		return inner, ""
	}
	return inner[:idx], inner[idx:]
}

// expandMemberTable 用成员设备表替换包含 {MEMBER_TABLE} 的整个段落。
// 模板没有该占位符时原样返回。
func expandMemberTable(page string, members []extract.MemberRecord) string {
	idx := strings.Index(page, memberTablePlaceholder)
	if idx < 0 {
		return page
	}
	start := paragraphStart(page, idx)
	end := strings.Index(page[idx:], "</w:p>")
	if start < 0 || end < 0 {
		// 占位符不在常规段落内，退化为文本替换
		return strings.Replace(page, memberTablePlaceholder, "", 1)
	}
	end += idx + len("</w:p>")
	return page[:start] + tableXML(memberRows(members)) + page[end:]
}

// paragraphStart 从 idx 向前找最近的 <w:p> 或 <w:p ...> 开标签，
// 跳过 <w:pPr> 等同前缀元素
func paragraphStart(s string, idx int) int {
	for i := idx; i >= 0; i-- {
		i = strings.LastIndex(s[:i+1], "<w:p")
		if i < 0 {
			return -1
		}
		if len(s) > i+4 && (s[i+4] == '>' || s[i+4] == ' ') {
			return i
		}
	}
	return -1
}
