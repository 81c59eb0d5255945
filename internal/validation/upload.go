package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rollnconnect/backend/internal/model"
)

// UploadConstraints defines validation rules for clip uploads
type UploadConstraints struct {
	MaxSize int64
}

var (
	PhotoConstraints = UploadConstraints{MaxSize: 10 << 20}  // 10MB
	VideoConstraints = UploadConstraints{MaxSize: 256 << 20} // 256MB
	AudioConstraints = UploadConstraints{MaxSize: 64 << 20}  // 64MB
)

// ForClipType picks the constraint set for a clip type. The type set is open,
// so unknown types fall back to the photo limits.
func ForClipType(clipType string) UploadConstraints {
	switch clipType {
	case model.ClipTypeVideo:
		return VideoConstraints
	case model.ClipTypeAudio:
		return AudioConstraints
	default:
		return PhotoConstraints
	}
}

// ValidateUpload validates a clip upload against a constraint set.
func ValidateUpload(header *multipart.FileHeader, constraints UploadConstraints) error {
	if header.Size == 0 {
		return fmt.Errorf("uploaded file is empty")
	}

	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}

	return nil
}

// SniffContentType detects a content type from the payload's magic numbers,
// used when the client did not declare one. The read position is reset so the
// payload can still be streamed from the start.
func SniffContentType(file multipart.File) (string, error) {
	// http.DetectContentType reads max 512 bytes to determine MIME type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return "", fmt.Errorf("failed to reset file pointer: %w", err)
	}

	return http.DetectContentType(buffer[:n]), nil
}
