package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netreportpro/netreportpro/internal/config"
	"github.com/netreportpro/netreportpro/internal/service"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load("")
	require.NoError(t, err)

	h := NewReportHandler(service.NewReportService(cfg))
	r := gin.New()
	r.GET("/api/v1/health", h.Health)
	r.GET("/api/v1/devices", h.ListDevices)
	r.POST("/api/v1/reports/generate", h.GenerateReport)
	return r
}

// TestHealth 测试健康检查
func TestHealth(t *testing.T) {
	r := setupTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "SUCCESS")
}

// TestListDevices 测试解析预览接口
func TestListDevices(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10.0.0.1.txt"),
		[]byte("Uptime : 3 days"), 0644))

	r := setupTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/devices?dir="+dir, nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SUCCESS", resp.Code)
	assert.Contains(t, w.Body.String(), "10.0.0.1")
}

// TestListDevicesBadDir 测试用户输入类错误映射为 400
func TestListDevicesBadDir(t *testing.T) {
	r := setupTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/devices?dir=/nonexistent/path", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT_DIR")
}

// TestGenerateReportMissingOutput 测试缺少输出路径的参数校验
func TestGenerateReportMissingOutput(t *testing.T) {
	r := setupTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate",
		strings.NewReader(`{"input_dir":"."}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_OUTPUT")
}

// TestGenerateReport 测试报告生成接口的完整链路
func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10.0.0.1.txt"),
		[]byte("Uptime : 3 days"), 0644))
	output := filepath.Join(t.TempDir(), "report.docx")

	r := setupTestRouter(t)
	w := httptest.NewRecorder()
	body, _ := json.Marshal(service.ReportOptions{InputDir: dir, OutputPath: output})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/generate", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, err := os.Stat(output)
	assert.NoError(t, err, "报告文件应当已生成")
}
