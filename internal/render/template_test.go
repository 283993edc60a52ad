package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netreportpro/netreportpro/addone/extract"
)

// TestSplitBody 测试 document.xml 的正文切分
func TestSplitBody(t *testing.T) {
	content := `<?xml?><w:document><w:body><w:p>x</w:p><w:sectPr/></w:body></w:document>`
	prefix, inner, suffix, err := splitBody(content)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(prefix, "<w:body>"))
	assert.Equal(t, "<w:p>x</w:p><w:sectPr/>", inner)
	assert.True(t, strings.HasPrefix(suffix, "</w:body>"))

	_, _, _, err = splitBody("<w:document/>")
	assert.Error(t, err, "没有 body 的文档应当报错")
}

// TestSplitSectPr 测试节属性从页面样板中分离
func TestSplitSectPr(t *testing.T) {
	page, tail := splitSectPr(`<w:p>x</w:p><w:sectPr><w:pgSz/></w:sectPr>`)
	assert.Equal(t, "<w:p>x</w:p>", page)
	assert.True(t, strings.HasPrefix(tail, "<w:sectPr"))

	page, tail = splitSectPr("<w:p>x</w:p>")
	assert.Equal(t, "<w:p>x</w:p>", page)
	assert.Empty(t, tail)
}

// TestParagraphStart 测试向前定位段落开标签时跳过 w:pPr 等同前缀元素
func TestParagraphStart(t *testing.T) {
	s := `<w:p><w:pPr><w:pStyle w:val="Normal"/></w:pPr><w:r><w:t>{MEMBER_TABLE}</w:t></w:r></w:p>`
	idx := strings.Index(s, "{MEMBER_TABLE}")
	assert.Equal(t, 0, paragraphStart(s, idx))

	withAttr := `<w:tbl/><w:p w:rsidR="0"><w:r><w:t>{MEMBER_TABLE}</w:t></w:r></w:p>`
	idx = strings.Index(withAttr, "{MEMBER_TABLE}")
	assert.Equal(t, len("<w:tbl/>"), paragraphStart(withAttr, idx))

	assert.Equal(t, -1, paragraphStart("no paragraph here", 5))
}

// TestExpandMemberTable 测试占位段落被成员表整体替换
func TestExpandMemberTable(t *testing.T) {
	page := `<w:p><w:r><w:t>before</w:t></w:r></w:p>` +
		`<w:p><w:pPr/><w:r><w:t>{MEMBER_TABLE}</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>after</w:t></w:r></w:p>`
	members := []extract.MemberRecord{{ID: "1", Status: extract.Known("Ready")}}

	out := expandMemberTable(page, members)
	assert.NotContains(t, out, "{MEMBER_TABLE}")
	assert.Contains(t, out, "<w:tbl>")
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "before")
	assert.Contains(t, out, "after")
}

// TestExpandMemberTableAbsent 测试模板没有占位符时原样返回
func TestExpandMemberTableAbsent(t *testing.T) {
	page := `<w:p><w:r><w:t>{HOSTNAME}</w:t></w:r></w:p>`
	assert.Equal(t, page, expandMemberTable(page, nil))
}
