package h3c_comware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netreportpro/netreportpro/addone/extract"
)

const irfOutput = `<SW-IRF-01> display version
H3C Comware Software, Version 7.1.070, Release 3208P15
SW-IRF-01 uptime is 30 weeks, 2 days
<SW-IRF-01> display irf
MemberID  Role     Model                Serial
1         Standby  S5130S-28S-HPWR-EI   210235A1B2
2         Master   S5130S-28S-HPWR-EI   210235A1B3
Slot 1 CPU usage: 9%
Slot 2 CPU usage: 14%
Slot 1 memory usage (Ratio): 37%
Slot 2 memory usage (Ratio): 42%
Clock status: synchronized
`

// TestExtractIRF 测试 IRF 成员解析与 master 提升
func TestExtractIRF(t *testing.T) {
	rec := (&Plugin{}).Extract(irfOutput)

	assert.Equal(t, extract.VendorH3C, rec.Vendor)
	assert.Equal(t, "SW-IRF-01", rec.Hostname.String())
	assert.Equal(t, "30 weeks, 2 days", rec.Uptime.String())
	assert.Equal(t, "7.1.070", rec.SoftwareVersion.String())
	assert.Equal(t, "synchronized", rec.NTPStatus.String())
	assert.True(t, rec.IsStack)
	require.Len(t, rec.Members, 2)

	assert.Equal(t, "Standby", rec.Members[0].Role.String())
	assert.Equal(t, "9%", rec.Members[0].CPUUtilization.String())
	assert.Equal(t, "37%", rec.Members[0].MemoryUtilization.String())

	// master 成员字段提升到顶层
	assert.Equal(t, "210235A1B3", rec.SerialNumber.String())
	assert.Equal(t, "S5130S-28S-HPWR-EI", rec.Model.String())
	assert.Equal(t, "14%", rec.CPUUtilization.String())
	assert.Equal(t, "42%", rec.MemoryUtilization.String())
}

const standaloneOutput = `<ACC-H3C-02> display device manuinfo
Device serial number: 210235HJK9
Device model: S5120V2-28P-SI
CPU average usage: 6%
Memory usage: 33%
ACC-H3C-02 uptime is 12 days
`

// TestExtractStandalone 测试单机路径
func TestExtractStandalone(t *testing.T) {
	rec := (&Plugin{}).Extract(standaloneOutput)

	assert.False(t, rec.IsStack)
	require.Len(t, rec.Members, 1)
	assert.Equal(t, "210235HJK9", rec.SerialNumber.String())
	assert.Equal(t, "S5120V2-28P-SI", rec.Model.String())
	assert.Equal(t, "6%", rec.CPUUtilization.String())
	assert.Equal(t, "33%", rec.MemoryUtilization.String())
}

// TestExtractNoPatterns 测试全部未命中时字段保持未知
func TestExtractNoPatterns(t *testing.T) {
	rec := (&Plugin{}).Extract("garbage output without any known structure")
	assert.Equal(t, "N/A", rec.Hostname.String())
	assert.Equal(t, "N/A", rec.Uptime.String())
	require.Len(t, rec.Members, 1)
	assert.Equal(t, "N/A", rec.Members[0].SerialNumber.String())
}
