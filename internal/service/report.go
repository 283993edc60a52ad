package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/netreportpro/netreportpro/addone/extract"
	"github.com/netreportpro/netreportpro/internal/config"
	"github.com/netreportpro/netreportpro/internal/render"
	"github.com/netreportpro/netreportpro/internal/util"
	"github.com/netreportpro/netreportpro/pkg/logger"
)

// ReportOptions 单次报告任务参数
type ReportOptions struct {
	InputDir     string `json:"input_dir"`
	TemplatePath string `json:"template,omitempty"`
	OutputPath   string `json:"output"`
}

// ReportService 巡检报告服务：扫描 → 排序 → 识别厂商 → 解析 → 归一 → 渲染 → 归档。
// 单遍批处理，设备间无共享状态。
type ReportService struct {
	cfg      *config.Config
	archiver *ReportArchiver
}

// NewReportService 创建报告服务
func NewReportService(cfg *config.Config) *ReportService {
	return &ReportService{cfg: cfg, archiver: NewReportArchiver(cfg)}
}

// ParseDevices 解析目录下的全部抓取文件，返回按设备地址排序的规范记录。
// 单个文件读取失败只跳过该设备；字段级解析失败落为未知值，不中断。
func (s *ReportService) ParseDevices(ctx context.Context, inputDir string) ([]extract.DeviceRecord, error) {
	files, err := ScanCaptures(inputDir)
	if err != nil {
		return nil, err
	}
	logger.Info("已找到抓取文件，按设备地址排序", "dir", inputDir, "count", len(files))

	records := make([]extract.DeviceRecord, 0, len(files))
	for _, f := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		data, err := os.ReadFile(f.Path)
		if err != nil {
			logger.Warn("读取抓取文件失败，跳过该设备", "file", f.Path, "error", err)
			continue
		}
		text := util.EnsureUTF8Bytes(data)
		vendor := extract.Detect(text)
		rec := extract.Get(vendor).Extract(text)
		rec.DeviceKey = f.DeviceKey
		rec = extract.Normalize(rec)
		records = append(records, rec)
		logger.Debug("设备解析完成", "device", f.DeviceKey, "vendor", rec.Vendor, "members", len(rec.Members))
	}
	return records, nil
}

// Generate 执行一次完整的报告任务
func (s *ReportService) Generate(ctx context.Context, opts ReportOptions) error {
	if strings.TrimSpace(opts.OutputPath) == "" {
		return errors.New("output path is required")
	}
	if opts.TemplatePath != "" {
		st, err := os.Stat(opts.TemplatePath)
		if err != nil || st.IsDir() {
			return ErrMissingTemplate
		}
	}

	records, err := s.ParseDevices(ctx, opts.InputDir)
	if err != nil {
		return err
	}

	reportTime := time.Now().Format("2006-01-02 15:04:05")
	if opts.TemplatePath != "" {
		err = render.RenderTemplate(opts.TemplatePath, opts.OutputPath, records, reportTime)
	} else {
		err = render.RenderReport(opts.OutputPath, records, reportTime)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	logger.Info("巡检报告已生成", "output", opts.OutputPath, "devices", len(records))

	// 归档失败只告警：输出文件已经落盘，不影响任务结果
	if obj, err := s.archiver.Archive(ctx, opts.OutputPath); err != nil {
		logger.Warn("报告归档失败", "error", err)
	} else if obj.URI != "" {
		logger.Info("报告已归档", "uri", obj.URI, "size", obj.Size)
	}
	return nil
}
