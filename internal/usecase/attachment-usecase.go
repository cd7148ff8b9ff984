package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// Telegram bots cannot download files larger than this.
const maxAttachmentSize = 20 << 20

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file is too large")
)

// AttachmentReadError is a file that could not be turned into an attachment.
type AttachmentReadError struct {
	FileName string
	Err      error
}

func (e *AttachmentReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.FileName, e.Err)
}

func (e *AttachmentReadError) Unwrap() error {
	return e.Err
}

// FileRef points at a file uploaded to Telegram.
type FileRef struct {
	FileID   string
	FileName string
	MimeType string
}

type FileLocator interface {
	GetFileDirectURL(fileID string) (string, error)
}

type AttachmentUsecaseDeps struct {
	Files      FileLocator
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type AttachmentUsecase struct {
	AttachmentUsecaseDeps
	maxParallel int
}

func NewAttachmentUsecase(deps AttachmentUsecaseDeps, maxParallel int) *AttachmentUsecase {
	if deps.HTTPClient == nil {
		deps.HTTPClient = http.DefaultClient
	}
	if maxParallel <= 0 {
		maxParallel = 4
	}
	return &AttachmentUsecase{
		AttachmentUsecaseDeps: deps,
		maxParallel:           maxParallel,
	}
}

type encodeResult struct {
	file model.AttachedFile
	err  error
}

// Encode downloads refs concurrently. Files come back in the order of refs;
// every file that failed is reported as an *AttachmentReadError and left out.
func (a *AttachmentUsecase) Encode(ctx context.Context, refs []FileRef) ([]model.AttachedFile, []error) {
	mapper := iter.Mapper[FileRef, encodeResult]{MaxGoroutines: a.maxParallel}
	results := mapper.Map(
		refs, func(ref *FileRef) encodeResult {
			file, err := a.encode(ctx, *ref)
			if err != nil {
				return encodeResult{err: &AttachmentReadError{FileName: ref.FileName, Err: err}}
			}
			return encodeResult{file: file}
		},
	)

	files := make([]model.AttachedFile, 0, len(results))
	var errs []error
	for _, res := range results {
		if res.err != nil {
			a.Logger.Warn("attachment dropped", zap.Error(res.err))
			errs = append(errs, res.err)
			continue
		}
		files = append(files, res.file)
	}
	return files, errs
}

func (a *AttachmentUsecase) encode(ctx context.Context, ref FileRef) (model.AttachedFile, error) {
	if !model.IsAcceptedMimeType(ref.MimeType) {
		return model.AttachedFile{}, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ref.MimeType)
	}

	url, err := a.Files.GetFileDirectURL(ref.FileID)
	if err != nil {
		return model.AttachedFile{}, fmt.Errorf("failed to get file url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.AttachedFile{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return model.AttachedFile{}, fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.AttachedFile{}, fmt.Errorf("failed to download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentSize+1))
	if err != nil {
		return model.AttachedFile{}, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) > maxAttachmentSize {
		return model.AttachedFile{}, ErrFileTooLarge
	}

	return model.AttachedFile{
		FileName: ref.FileName,
		Data:     data,
		MimeType: ref.MimeType,
	}, nil
}
