package services

import (
	"context"

	"shopvid_backend/internal/logger"
	"shopvid_backend/internal/models"
	"shopvid_backend/internal/repositories"
	"shopvid_backend/internal/services/dto"
	"shopvid_backend/internal/storage"
	"shopvid_backend/internal/types"
	"shopvid_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VideoService interface {
	CreateVideo(ctx context.Context, db *gorm.DB, shop string, req *dto.CreateVideoRequest) (*models.Video, error)
	ListVideos(db *gorm.DB, shop string, filters *types.VideoFilters) ([]models.Video, error)
	GetVideo(db *gorm.DB, shop, id string) (*models.Video, error)
	UpdateVideo(db *gorm.DB, shop, id string, req *dto.UpdateVideoRequest) (*models.Video, error)
	DeleteVideo(ctx context.Context, db *gorm.DB, shop, id string) error
	CountVideos(db *gorm.DB, shop string) (int64, error)

	TagProducts(db *gorm.DB, shop, videoID string, inputs []dto.TagProductInput) ([]models.ProductTag, error)
	RemoveTag(db *gorm.DB, shop, videoID, tagID string) error
}

type videoService struct {
	videoRepo repositories.VideoRepository
	tagRepo   repositories.ProductTagRepository
	signer    storage.Signer
}

func NewVideoService(
	videoRepo repositories.VideoRepository,
	tagRepo repositories.ProductTagRepository,
	signer storage.Signer,
) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		tagRepo:   tagRepo,
		signer:    signer,
	}
}

func (s *videoService) CreateVideo(ctx context.Context, db *gorm.DB, shop string, req *dto.CreateVideoRequest) (*models.Video, error) {
	if req.URL == "" {
		return nil, apperrors.ErrVideoURLRequired
	}

	group := req.Group
	if group == "" {
		group = models.GroupAll
	}

	video := &models.Video{
		Shop:      shop,
		Title:     req.Title,
		Group:     &group,
		URL:       req.URL,
		Thumbnail: req.Thumbnail,
	}

	if err := s.videoRepo.Create(db, video); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "video created", "video_id", video.ID)
	return video, nil
}

func (s *videoService) ListVideos(db *gorm.DB, shop string, filters *types.VideoFilters) ([]models.Video, error) {
	return s.videoRepo.FindByShop(db, shop, filters)
}

func (s *videoService) GetVideo(db *gorm.DB, shop, id string) (*models.Video, error) {
	return s.videoRepo.FindByID(db, shop, id)
}

func (s *videoService) UpdateVideo(db *gorm.DB, shop, id string, req *dto.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.videoRepo.FindByID(db, shop, id)
	if err != nil {
		return nil, err
	}

	video.Title = req.Title
	if req.Group != "" {
		group := req.Group
		video.Group = &group
	}
	if req.Optimized != nil {
		video.Optimized = *req.Optimized
	}

	if err := s.videoRepo.Update(db, video); err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo removes the video row (tags cascade) and then tries to
// delete the stored object. Cleanup is best effort: user-entered external
// URLs are skipped, and a storage failure only logs a warning, the delete
// itself has already succeeded.
func (s *videoService) DeleteVideo(ctx context.Context, db *gorm.DB, shop, id string) error {
	video, err := s.videoRepo.FindByID(db, shop, id)
	if err != nil {
		return err
	}

	if err := s.videoRepo.Delete(db, shop, id); err != nil {
		return err
	}

	if key, ok := s.signer.KeyFromURL(video.URL); ok {
		if err := s.signer.Delete(ctx, key); err != nil {
			logger.CtxWarn(ctx, "failed to delete stored object", "key", key, "error", err.Error())
		}
	}

	logger.CtxInfo(ctx, "video deleted", "video_id", id)
	return nil
}

func (s *videoService) CountVideos(db *gorm.DB, shop string) (int64, error) {
	return s.videoRepo.CountByShop(db, shop)
}

// TagProducts attaches products to a video. Already-tagged products are
// skipped (check-then-create; a concurrent duplicate is tolerated, the
// result set is still a set for all practical purposes). Returns the full
// tag list after the operation.
func (s *videoService) TagProducts(db *gorm.DB, shop, videoID string, inputs []dto.TagProductInput) ([]models.ProductTag, error) {
	// Ownership check first: a video of another shop is "not found"
	if _, err := s.videoRepo.FindByID(db, shop, videoID); err != nil {
		return nil, err
	}

	for _, input := range inputs {
		exists, err := s.tagRepo.Exists(db, videoID, input.ProductID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		tag := &models.ProductTag{
			VideoID:   videoID,
			ProductID: input.ProductID,
			Handle:    input.Handle,
			VariantID: input.VariantID,
		}
		if err := s.tagRepo.Create(db, tag); err != nil {
			return nil, err
		}
	}

	return s.tagRepo.FindByVideo(db, videoID)
}

// RemoveTag deletes a tag from a video the shop owns. Removing an absent
// tag succeeds as a no-op.
func (s *videoService) RemoveTag(db *gorm.DB, shop, videoID, tagID string) error {
	if _, err := s.videoRepo.FindByID(db, shop, videoID); err != nil {
		return err
	}
	return s.tagRepo.Delete(db, videoID, tagID)
}
