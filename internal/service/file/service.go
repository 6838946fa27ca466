package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding for uploads
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitebook/sitebook-backend/internal/pkg/storage"
	"golang.org/x/image/draw"
)

var ErrInvalidFileType = errors.New("invalid file type: only jpg, jpeg, png allowed")

const (
	photoMaxBytes = 200 * 1024
	photoMinBytes = 40 * 1024

	// receipts keep more detail so the printed amounts stay legible
	receiptMaxBytes = 400 * 1024
	receiptMinBytes = 80 * 1024
)

type FileService interface {
	// UploadWorkerPhoto stores a compressed JPEG of the worker's photo and returns its public URL.
	UploadWorkerPhoto(ctx context.Context, workerID string, file io.Reader, filename string) (string, error)

	// UploadBillPhoto stores a compressed JPEG of a receipt and returns its public URL.
	UploadBillPhoto(ctx context.Context, billID string, date time.Time, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadWorkerPhoto implements FileService.
func (s *fileServiceImpl) UploadWorkerPhoto(ctx context.Context, workerID string, file io.Reader, filename string) (string, error) {
	// workers/{workerID}/{workerID}-{uuid}.jpg
	name := fmt.Sprintf("%s-%s.jpg", workerID, uuid.New().String())
	path := filepath.Join("workers", workerID, name)

	url, err := s.uploadImage(ctx, file, filename, path, photoMaxBytes, photoMinBytes)
	if err != nil {
		return "", fmt.Errorf("failed to upload worker photo: %w", err)
	}
	return url, nil
}

// UploadBillPhoto implements FileService.
func (s *fileServiceImpl) UploadBillPhoto(ctx context.Context, billID string, date time.Time, file io.Reader, filename string) (string, error) {
	// bills/{YYYY-MM}/{billID}-{timestamp}.jpg
	name := fmt.Sprintf("%s-%d.jpg", billID, time.Now().Unix())
	path := filepath.Join("bills", date.Format("2006-01"), name)

	url, err := s.uploadImage(ctx, file, filename, path, receiptMaxBytes, receiptMinBytes)
	if err != nil {
		return "", fmt.Errorf("failed to upload bill photo: %w", err)
	}
	return url, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

func (s *fileServiceImpl) uploadImage(ctx context.Context, file io.Reader, filename, path string, maxSize, minSize int) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", ErrInvalidFileType
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	compressed, err := compressImage(buffer, maxSize, minSize)
	if err != nil {
		return "", err
	}

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", err
	}
	return s.storage.GetURL(ctx, uploadedPath, 0)
}

// ==================== HELPER FUNCTIONS ====================

// compressImage returns a JPEG no larger than maxSize where possible. A JPEG already
// within [minSize, maxSize] is kept as is; anything else is re-encoded with decreasing
// quality and, as a last resort, scaled down.
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if format == "jpeg" && len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		compressed, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	// Still too large at the lowest quality: scale down towards the middle of the range.
	target := float64(maxSize+minSize) / 2
	ratio := math.Sqrt(target / float64(len(compressed)))
	bounds := img.Bounds()
	width := max(1, int(float64(bounds.Dx())*ratio))
	height := max(1, int(float64(bounds.Dy())*ratio))

	return encodeJPEG(resizeImage(img, width, height), 70)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
