package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	ResumeFolder = "mockprep_resumes"
	ReportFolder = "mockprep_feedback_reports"
)

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder"`
}

// MediaService wraps the cloudinary account used for resumes and feedback
// reports.
type MediaService struct {
	cld *cloudinary.Cloudinary
}

func NewMediaService(cloudinaryURL string) (*MediaService, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &MediaService{cld: cld}, nil
}

// SignUpload signs a direct browser upload into folder.
func (m *MediaService) SignUpload(folder string, now time.Time) (UploadSignature, error) {
	params, err := api.StructToParams(uploader.UploadParams{Folder: folder})
	if err != nil {
		return UploadSignature{}, err
	}
	timestamp := now.Unix()
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, m.cld.Config.Cloud.APISecret)
	if err != nil {
		return UploadSignature{}, err
	}
	return UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		APIKey:    m.cld.Config.Cloud.APIKey,
		CloudName: m.cld.Config.Cloud.CloudName,
		Folder:    folder,
	}, nil
}

// UploadReport stores a rendered PDF as a raw asset and returns its URL.
func (m *MediaService) UploadReport(ctx context.Context, pdf []byte, publicID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := m.cld.Upload.Upload(ctx, bytes.NewReader(pdf), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       ReportFolder,
		ResourceType: "raw",
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
