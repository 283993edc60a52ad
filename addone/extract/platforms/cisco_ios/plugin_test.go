package cisco_ios

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netreportpro/netreportpro/addone/extract"
)

const standaloneOutput = `CoreSW1# show version
Cisco IOS Software, C3750E Software (C3750E-UNIVERSALK9-M), Version 15.2(4)E10, RELEASE SOFTWARE (fc2)
hostname OldNameFromConfig
CoreSW1 uptime is 1 year, 30 weeks, 4 days
System Serial Number   : FDO1234X0AB
Model Number           : WS-C3750E-48PD
CPU utilization for five seconds: 12%/4%; one minute: 9%; five minutes: 8%
Processor Pool Total:  1000000 Used:  250000 Free:  750000
Clock is synchronized, stratum 3, reference is 10.0.0.100
`

// TestExtractStandalone 测试单机设备解析
func TestExtractStandalone(t *testing.T) {
	p := &Plugin{}
	rec := p.Extract(standaloneOutput)

	assert.Equal(t, extract.VendorCisco, rec.Vendor)
	assert.Equal(t, "CoreSW1", rec.Hostname.String(), "提示符主机名优先于配置声明")
	assert.Equal(t, "1 year, 30 weeks, 4 days", rec.Uptime.String())
	assert.Equal(t, "15.2(4)E10", rec.SoftwareVersion.String())
	assert.Contains(t, rec.NTPStatus.String(), "synchronized")
	assert.Equal(t, "12%", rec.CPUUtilization.String(), "复合 CPU 值只保留五秒部分")
	assert.Equal(t, "25.00%", rec.MemoryUtilization.String(), "内存使用率由 Used/Total 推导")
	assert.False(t, rec.IsStack)
	require.Len(t, rec.Members, 1)
	assert.Equal(t, "FDO1234X0AB", rec.Members[0].SerialNumber.String())
	assert.Equal(t, "WS-C3750E-48PD", rec.Members[0].Model.String())
	assert.Equal(t, "Ready", rec.Members[0].Status.String())
	assert.Equal(t, "FDO1234X0AB", rec.SerialNumber.String(), "单机成员字段提升到顶层")
}

// TestExtractHostnameFromConfig 测试无提示符时回落到配置声明
func TestExtractHostnameFromConfig(t *testing.T) {
	raw := "hostname CoreSW1\nCoreSW1 uptime is 5 days"
	rec := (&Plugin{}).Extract(raw)
	assert.Equal(t, "CoreSW1", rec.Hostname.String())
}

const stackOutput = `CoreSW1# show switch detail
Switch#  Role    Model              Mac Address       State
*1       Master  WS-C3750E-48PD     0cd0.f894.7f80    Ready
 2       Member  WS-C3750E-48PD     0cd0.f895.1234    Ready
CoreSW1# show version
Cisco IOS Software, C3750E Software (C3750E-UNIVERSALK9-M), Version 15.2(4)E10, RELEASE SOFTWARE (fc2)
Switch 1 SERIAL NUMBER : FDO1111X1AA
Switch 2 SERIAL NUMBER : FDO2222X2BB
`

// TestExtractStack 测试 StackWise 堆叠成员解析与序列号关联
func TestExtractStack(t *testing.T) {
	rec := (&Plugin{}).Extract(stackOutput)

	assert.True(t, rec.IsStack)
	require.Len(t, rec.Members, 2)

	assert.Equal(t, "1", rec.Members[0].ID, "master 标记 * 应从编号中剥离")
	assert.Equal(t, "WS-C3750E-48PD", rec.Members[0].Model.String())
	assert.Equal(t, "0cd0.f894.7f80", rec.Members[0].MACAddress.String())
	assert.Equal(t, "Ready", rec.Members[0].Status.String())
	assert.Equal(t, "FDO1111X1AA", rec.Members[0].SerialNumber.String())

	assert.Equal(t, "2", rec.Members[1].ID)
	assert.Equal(t, "FDO2222X2BB", rec.Members[1].SerialNumber.String())
}

// TestExtractStackMarkerWithoutRows 测试 show switch 存在但无成员行时走单机路径
func TestExtractStackMarkerWithoutRows(t *testing.T) {
	raw := "CoreSW1# show switch\n% Invalid input detected\nSystem Serial Number : FDO9999X9ZZ"
	rec := (&Plugin{}).Extract(raw)
	assert.False(t, rec.IsStack)
	require.Len(t, rec.Members, 1)
	assert.Equal(t, "FDO9999X9ZZ", rec.SerialNumber.String())
}

// TestDeriveMemoryZeroTotal 测试 Total 为 0 时不做除零
func TestDeriveMemoryZeroTotal(t *testing.T) {
	raw := "Processor Pool Total:  0 Used:  0"
	assert.Equal(t, "0%", deriveMemory(raw).String())
}

// TestDeriveMemoryMissing 测试缺少内存统计时保持未知
func TestDeriveMemoryMissing(t *testing.T) {
	v := deriveMemory("no memory stats here")
	assert.False(t, v.Known)
	assert.Equal(t, "N/A", v.String())
}
