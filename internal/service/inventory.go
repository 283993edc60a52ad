package service

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// 用户配置类错误：直接终止本次运行
var (
	ErrInvalidInputDir = errors.New("input path is not a directory")
	ErrNoMatchingFiles = errors.New("no capture files named with a leading dotted-quad address")
	ErrMissingTemplate = errors.New("template file does not exist")
)

// 文件名约定：点分四段地址开头，允许任意后缀描述，.txt 结尾
var captureNameRe = regexp.MustCompile(`^(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}).*\.txt$`)

// CaptureFile 一份待解析的巡检抓取文件
type CaptureFile struct {
	Path string
	// DeviceKey 文件名前缀中的点分四段地址，作为排序与标识键
	DeviceKey string

	addr  netip.Addr
	valid bool
}

// ScanCaptures 枚举目录中符合命名约定的抓取文件并按设备地址排序。
// 不匹配约定的文件直接忽略；一个匹配文件都没有时返回 ErrNoMatchingFiles。
func ScanCaptures(dir string) ([]CaptureFile, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, ErrInvalidInputDir
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	files := make([]CaptureFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := captureNameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		files = append(files, newCaptureFile(filepath.Join(dir, e.Name()), m[1]))
	}
	if len(files) == 0 {
		return nil, ErrNoMatchingFiles
	}
	return OrderCaptures(files), nil
}

func newCaptureFile(path, key string) CaptureFile {
	cf := CaptureFile{Path: path, DeviceKey: key}
	// 形似地址但八位组越界（如 300.1.1.1）视为不可解析，归入尾部而非报错
	if addr, err := netip.ParseAddr(key); err == nil && addr.Is4() {
		cf.addr = addr
		cf.valid = true
	}
	return cf
}

// OrderCaptures 按设备地址数值排序；无法解析为合法地址的文件稳定地排在尾部
func OrderCaptures(files []CaptureFile) []CaptureFile {
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}
		return a.addr.Less(b.addr)
	})
	return files
}
