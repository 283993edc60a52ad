package extract

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[VendorTag]Plugin{
		VendorUnknown: &GenericPlugin{},
	}
)

// Register 注册厂商解析插件
func Register(vendor VendorTag, plugin Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[vendor] = plugin
}

// Get 获取指定厂商的解析插件，未注册时返回通用兜底插件
func Get(vendor VendorTag) Plugin {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if p, ok := registry[vendor]; ok {
		return p
	}
	return registry[VendorUnknown]
}
