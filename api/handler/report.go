package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/netreportpro/netreportpro/internal/config"
	"github.com/netreportpro/netreportpro/internal/service"
	"github.com/netreportpro/netreportpro/pkg/logger"
)

// ReportHandler 巡检报告处理器
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler 创建报告处理器
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Health 健康检查
func (h *ReportHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{
		Code:    "SUCCESS",
		Message: "服务正常",
	})
}

// ListDevices 解析指定目录的抓取文件，返回规范化的设备记录
// @Summary 预览抓取目录的解析结果
// @Param dir query string false "抓取文件目录，默认取配置 report.input_dir"
// @Router /api/v1/devices [get]
func (h *ReportHandler) ListDevices(c *gin.Context) {
	dir := c.Query("dir")
	if dir == "" {
		dir = config.Get().Report.InputDir
	}

	records, err := h.reportService.ParseDevices(c.Request.Context(), dir)
	if err != nil {
		status, code := classifyError(err)
		logger.Error("设备解析失败", "dir", dir, "error", err)
		c.JSON(status, ErrorResponse{Code: code, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Code:    "SUCCESS",
		Message: "解析完成",
		Data: gin.H{
			"dir":     dir,
			"count":   len(records),
			"devices": records,
		},
	})
}

// GenerateReport 生成巡检报告
// @Summary 解析抓取目录并生成 docx 报告
// @Param request body service.ReportOptions true "报告任务参数"
// @Router /api/v1/reports/generate [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var opts service.ReportOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		logger.Error("Invalid request parameters", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_PARAMS",
			Message: "请求参数无效: " + err.Error(),
		})
		return
	}
	cfg := config.Get()
	if opts.InputDir == "" {
		opts.InputDir = cfg.Report.InputDir
	}
	if opts.TemplatePath == "" {
		opts.TemplatePath = cfg.Report.Template
	}
	if opts.OutputPath == "" {
		opts.OutputPath = cfg.Report.Output
	}
	if opts.OutputPath == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "MISSING_OUTPUT",
			Message: "必须指定输出文件路径",
		})
		return
	}

	if err := h.reportService.Generate(c.Request.Context(), opts); err != nil {
		status, code := classifyError(err)
		logger.Error("报告生成失败", "input_dir", opts.InputDir, "error", err)
		c.JSON(status, ErrorResponse{Code: code, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Code:    "SUCCESS",
		Message: "报告生成成功",
		Data: gin.H{
			"input_dir": opts.InputDir,
			"output":    opts.OutputPath,
		},
	})
}

// classifyError 用户输入类错误返回 400，其余归为服务端错误
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInputDir):
		return http.StatusBadRequest, "INVALID_INPUT_DIR"
	case errors.Is(err, service.ErrNoMatchingFiles):
		return http.StatusBadRequest, "NO_MATCHING_FILES"
	case errors.Is(err, service.ErrMissingTemplate):
		return http.StatusBadRequest, "MISSING_TEMPLATE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse 成功响应
type SuccessResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
