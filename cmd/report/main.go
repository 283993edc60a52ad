package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/netreportpro/netreportpro/internal/config"
	"github.com/netreportpro/netreportpro/internal/service"
	"github.com/netreportpro/netreportpro/pkg/logger"
)

func main() {
	var (
		inputDir     string
		templatePath string
		outputPath   string
		configPath   string
	)
	flag.StringVar(&inputDir, "i", "", "抓取 TXT 文件所在目录（默认取配置 report.input_dir）")
	flag.StringVar(&inputDir, "input", "", "抓取 TXT 文件所在目录（-i 的长格式）")
	flag.StringVar(&templatePath, "t", "", "Word 模板文件路径（为空则生成全新表格报告）")
	flag.StringVar(&templatePath, "template", "", "Word 模板文件路径（-t 的长格式）")
	flag.StringVar(&outputPath, "o", "", "输出 Word 文件路径（必填）")
	flag.StringVar(&outputPath, "output", "", "输出 Word 文件路径（-o 的长格式）")
	flag.StringVar(&configPath, "config", "", "配置文件路径（可选）")
	flag.Parse()

	// 批处理模式允许没有配置文件，全部用默认值
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "console",
	}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 命令行参数优先于配置文件
	opts := service.ReportOptions{
		InputDir:     cfg.Report.InputDir,
		TemplatePath: cfg.Report.Template,
		OutputPath:   cfg.Report.Output,
	}
	if inputDir != "" {
		opts.InputDir = inputDir
	}
	if templatePath != "" {
		opts.TemplatePath = templatePath
	}
	if outputPath != "" {
		opts.OutputPath = outputPath
	}
	if opts.OutputPath == "" {
		fmt.Fprintln(os.Stderr, "必须通过 -o 指定输出文件路径")
		flag.Usage()
		os.Exit(2)
	}

	svc := service.NewReportService(cfg)
	if err := svc.Generate(context.Background(), opts); err != nil {
		logger.Error("报告生成失败", "error", err)
		os.Exit(1)
	}
}
