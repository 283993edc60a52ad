package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueUnknownSentinel 测试未知值与字面量 N/A 的区分
func TestValueUnknownSentinel(t *testing.T) {
	var unknown Value
	assert.Equal(t, "N/A", unknown.String(), "零值应渲染为 N/A")

	literal := Known("N/A")
	assert.True(t, literal.Known, "抓取文本里的字面量 N/A 是已知值")
	assert.Equal(t, "N/A", literal.String())

	assert.Equal(t, "45%", Known("  45%  ").String(), "构造时应去除首尾空白")
}

// TestValueMarshalJSON 测试序列化输出展示文本
func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		CPU Value `json:"cpu"`
		Mem Value `json:"memory"`
	}{CPU: Known("12%")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cpu":"12%","memory":"N/A"}`, string(b))
}

// TestPromoteMaster 测试主成员字段提升
func TestPromoteMaster(t *testing.T) {
	rec := DeviceRecord{
		Members: []MemberRecord{
			{ID: "1", Role: Known("Standby"), SerialNumber: Known("SN-1")},
			{ID: "2", Role: Known("Master"), SerialNumber: Known("SN-2"), Model: Known("S5720"),
				CPUUtilization: Known("10%"), MemoryUtilization: Known("40%")},
		},
	}
	assert.True(t, rec.PromoteMaster())
	assert.Equal(t, "SN-2", rec.SerialNumber.String())
	assert.Equal(t, "S5720", rec.Model.String())
	assert.Equal(t, "10%", rec.CPUUtilization.String())
	assert.Equal(t, "40%", rec.MemoryUtilization.String())
}

// TestPromoteMasterAbsent 测试无 master 角色时不做推断
func TestPromoteMasterAbsent(t *testing.T) {
	rec := DeviceRecord{
		Members: []MemberRecord{
			{ID: "1", SerialNumber: Known("SN-1")},
			{ID: "2", SerialNumber: Known("SN-2")},
		},
	}
	assert.False(t, rec.PromoteMaster())
	assert.False(t, rec.SerialNumber.Known, "顶层序列号应保持未知")
}

// TestPlaceholders 测试占位符映射的规范键与覆盖规则
func TestPlaceholders(t *testing.T) {
	rec := DeviceRecord{
		DeviceKey: "10.0.0.1",
		Vendor:    VendorCisco,
		Hostname:  Known("CoreSW1"),
		Extra: map[string]string{
			"hostname": "FromExtra",
			"location": "IDC-3F",
		},
	}
	m := rec.Placeholders("2026-08-23 10:00:00")
	assert.Equal(t, "10.0.0.1", m["IP"])
	assert.Equal(t, "CoreSW1", m["HOSTNAME"], "规范字段应覆盖 Extra 同名键")
	assert.Equal(t, "IDC-3F", m["LOCATION"], "Extra 键应以大写形式保留")
	assert.Equal(t, "Cisco", m["VENDOR"])
	assert.Equal(t, "N/A", m["SN"], "未知字段在占位符中也输出 N/A")
	assert.Equal(t, "2026-08-23 10:00:00", m["REPORT_TIME"])
}
