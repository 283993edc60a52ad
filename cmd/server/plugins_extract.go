package main

// 引入解析平台插件，触发各平台的 init() 完成注册
import (
	_ "github.com/netreportpro/netreportpro/addone/extract/platforms/cisco_ios"
	_ "github.com/netreportpro/netreportpro/addone/extract/platforms/huawei_vrp"
	_ "github.com/netreportpro/netreportpro/addone/extract/platforms/h3c_comware"
)
