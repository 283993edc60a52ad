package extract

import "regexp"

// 厂商指纹检测：按置信度从高到低排列，第一个命中即返回。
// 顺序有意义——通用的 display 类命令是比厂商软件横幅更弱的信号，
// 所以 Cisco 横幅/提示符先于 Huawei，Huawei 先于 H3C。
var vendorFingerprints = []struct {
	vendor VendorTag
	re     *regexp.Regexp
}{
	// Cisco IOS 软件横幅，或 # 提示符后回显的命令
	{VendorCisco, regexp.MustCompile(`(?im)cisco ios software|^\S+# *\S`)},
	// VRP 软件横幅、<HUAWEI> 提示符，或 display device 命令
	{VendorHuawei, regexp.MustCompile(`(?i)vrp \(r\) software|<huawei>|display device`)},
	// Comware 软件横幅、<H3C> 提示符，或 display irf 命令
	{VendorH3C, regexp.MustCompile(`(?i)comware software|<h3c>|display irf`)},
}

// Detect 根据抓取全文识别厂商；无任何指纹命中返回 VendorUnknown。
// 纯函数，对同一文本重复调用结果一致。
func Detect(text string) VendorTag {
	for _, fp := range vendorFingerprints {
		if fp.re.MatchString(text) {
			return fp.vendor
		}
	}
	return VendorUnknown
}
