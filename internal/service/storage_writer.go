package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/netreportpro/netreportpro/internal/config"
	"github.com/netreportpro/netreportpro/pkg/logger"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// StoredObject 归档对象信息
type StoredObject struct {
	URI         string `json:"uri"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum"`
	ContentType string `json:"content_type"`
}

// ReportArchiver 报告归档器：storage.backend 为 minio 时，
// 在本地输出文件之外再上传一份到对象存储。local 后端为空操作。
type ReportArchiver struct {
	cfg           *config.Config
	client        *minio.Client
	endpoint      string
	bucketEnsured bool
}

// NewReportArchiver 按配置创建归档器；MinIO 初始化失败只告警，退化为本地模式
func NewReportArchiver(cfg *config.Config) *ReportArchiver {
	a := &ReportArchiver{cfg: cfg}
	if !strings.EqualFold(strings.TrimSpace(cfg.Storage.Backend), "minio") {
		return a
	}
	host := strings.TrimSpace(cfg.Storage.Minio.Host)
	port := cfg.Storage.Minio.Port
	if host == "" || port <= 0 {
		logger.Warn("MinIO 配置不完整，归档退化为本地模式")
		return a
	}
	a.endpoint = fmt.Sprintf("%s:%d", host, port)

	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}
	client, err := minio.New(a.endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.Storage.Minio.AccessKey, cfg.Storage.Minio.SecretKey, ""),
		Secure:    cfg.Storage.Minio.Secure,
		Transport: transport,
	})
	if err != nil {
		logger.Error("MinIO 客户端初始化失败", "error", err)
		return a
	}
	a.client = client
	return a
}

// Archive 上传生成的报告文件；local 后端返回零值对象且无错误
func (a *ReportArchiver) Archive(ctx context.Context, reportPath string) (StoredObject, error) {
	if a.client == nil {
		return StoredObject{}, nil
	}
	bucket := strings.TrimSpace(a.cfg.Storage.Minio.Bucket)
	if bucket == "" {
		return StoredObject{}, fmt.Errorf("minio bucket not configured")
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return StoredObject{}, fmt.Errorf("read report for archive: %w", err)
	}

	if !a.bucketEnsured {
		if err := a.ensureBucket(ctx, bucket); err != nil {
			return StoredObject{}, fmt.Errorf("minio ensure bucket failed: %w", err)
		}
		a.bucketEnsured = true
	}

	// 对象路径：prefix/日期/文件名
	parts := []string{}
	if p := strings.TrimSpace(a.cfg.Storage.Prefix); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, time.Now().Format("20060102"), filepath.Base(reportPath))
	objectName := path.Join(parts...)

	// 带退避的有限重试
	var lastErr error
	for _, wait := range []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second} {
		attemptCtx, cancel := context.WithTimeout(ctx, wait+10*time.Second)
		_, err := a.client.PutObject(attemptCtx, bucket, objectName, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: docxContentType})
		cancel()
		if err == nil {
			lastErr = nil
			break
		}
		lastErr = err
		time.Sleep(wait)
	}
	if lastErr != nil {
		return StoredObject{}, fmt.Errorf("minio put object failed after retries: %w", lastErr)
	}

	sum := sha256.Sum256(data)
	return StoredObject{
		URI:         "minio://" + path.Join(bucket, objectName),
		Size:        int64(len(data)),
		Checksum:    "sha256:" + hex.EncodeToString(sum[:]),
		ContentType: docxContentType,
	}, nil
}

func (a *ReportArchiver) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := a.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return a.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
