package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/models"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/internal/storage"
	"shopvid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// WorkflowState is the observable state of one upload run.
type WorkflowState string

const (
	StateIdle                 WorkflowState = "idle"
	StateRequestingCredential WorkflowState = "requesting-credential"
	StateUploading            WorkflowState = "uploading"
	StateFinalizing           WorkflowState = "finalizing"
	StateSucceeded            WorkflowState = "succeeded"
	StateFailed               WorkflowState = "failed"
)

// UploadInput is one file plus the metadata of the Video record it becomes.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader

	Title     string
	Group     string
	Thumbnail string
}

// UploadWorkflow drives one upload through its fixed sequence: a write
// credential is issued, the file is transferred directly to object
// storage, and only then is the Video row persisted with the resulting
// public URL. Ordering is load-bearing: persisting before the transfer
// completes would store a URL with nothing behind it.
//
// One instance per run. There is no explicit cancel; cancelling the
// context simply abandons the in-flight transfer.
type UploadWorkflow struct {
	signer       storage.Signer
	videoService VideoService
	httpClient   *http.Client

	state      WorkflowState
	failReason string
}

func NewUploadWorkflow(signer storage.Signer, videoService VideoService) *UploadWorkflow {
	return &UploadWorkflow{
		signer:       signer,
		videoService: videoService,
		httpClient:   &http.Client{Timeout: 10 * time.Minute},
		state:        StateIdle,
	}
}

// State returns the current workflow state.
func (w *UploadWorkflow) State() WorkflowState {
	return w.state
}

// FailureReason returns the operator-facing reason after a failed run.
func (w *UploadWorkflow) FailureReason() string {
	return w.failReason
}

func (w *UploadWorkflow) transition(ctx context.Context, next WorkflowState) {
	logger.CtxDebug(ctx, "upload workflow transition", "from", string(w.state), "to", string(next))
	w.state = next
}

func (w *UploadWorkflow) fail(ctx context.Context, reason string, err error) error {
	w.failReason = reason
	w.transition(ctx, StateFailed)
	logger.CtxWarn(ctx, "upload workflow failed", "reason", reason)
	if err != nil {
		return err
	}
	return apperrors.ErrUpstream(fmt.Errorf("%s", reason), "upload", reason)
}

// Run executes the workflow once. A re-run with the same file always
// produces a new stored object and a new Video row, never a modification
// of a prior one.
func (w *UploadWorkflow) Run(ctx context.Context, db *gorm.DB, shop string, in *UploadInput) (*models.Video, error) {
	if w.state != StateIdle {
		return nil, apperrors.NewBadRequestError("upload workflow already ran")
	}
	if in == nil || in.Body == nil || in.Size == 0 {
		w.failReason = "no file provided"
		w.transition(ctx, StateFailed)
		return nil, apperrors.NewBadRequestError("no file provided")
	}
	if in.Filename == "" || in.ContentType == "" {
		w.failReason = "filename and filetype are required"
		w.transition(ctx, StateFailed)
		return nil, apperrors.ErrMissingSignParams
	}

	// 1. Credential
	w.transition(ctx, StateRequestingCredential)
	signed, err := w.signer.SignUpload(ctx, in.Filename, in.ContentType)
	if err != nil {
		return nil, w.fail(ctx, "failed to obtain upload credential", apperrors.ErrSignFailed.WithError(err))
	}

	// 2. Transfer
	w.transition(ctx, StateUploading)
	if err := w.transfer(ctx, signed, in); err != nil {
		return nil, w.fail(ctx, err.Error(), nil)
	}

	// 3. Persist
	w.transition(ctx, StateFinalizing)
	video, err := w.videoService.CreateVideo(ctx, db, shop, &dto.CreateVideoRequest{
		Title:     in.Title,
		Group:     in.Group,
		URL:       signed.PublicURL,
		Thumbnail: in.Thumbnail,
	})
	if err != nil {
		return nil, w.fail(ctx, "failed to persist video record", err)
	}

	w.transition(ctx, StateSucceeded)
	logger.CtxInfo(ctx, "upload workflow succeeded", "video_id", video.ID, "key", signed.Key)
	return video, nil
}

// transfer PUTs the file to the signed URL. Success is judged by the
// transport status alone; the body is only read for the failure report.
func (w *UploadWorkflow) transfer(ctx context.Context, signed *storage.SignedUpload, in *UploadInput) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signed.SignedURL, in.Body)
	if err != nil {
		return fmt.Errorf("failed to build transfer request: %v", err)
	}
	req.ContentLength = in.Size
	req.Header.Set("Content-Type", in.ContentType)

	res, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transfer failed: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 256))
		if len(snippet) > 0 {
			return fmt.Errorf("transfer rejected with status %d: %s", res.StatusCode, string(snippet))
		}
		return fmt.Errorf("transfer rejected with status %d", res.StatusCode)
	}

	return nil
}
