package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/queue"
	"github.com/shopkit/admin/pkg/storage"
)

// BannerInput carries the mutable fields of a banner. The image itself
// arrives as a stream and lands on the configured storage disk.
type BannerInput struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	LinkURL  string `json:"link_url"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

type BannerService struct {
	store gateway.Store
}

func NewBannerService(store gateway.Store) *BannerService {
	return &BannerService{store: store}
}

// List returns banners sorted by position, then title.
func (s *BannerService) List(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	if err := s.store.List(ctx, gateway.Banners, &banners); err != nil {
		return nil, err
	}
	sort.Slice(banners, func(i, j int) bool {
		if banners[i].Position == banners[j].Position {
			return banners[i].Title < banners[j].Title
		}
		return banners[i].Position < banners[j].Position
	})
	return banners, nil
}

func (s *BannerService) Get(ctx context.Context, id string) (models.Banner, error) {
	var banner models.Banner
	if err := s.store.Get(ctx, gateway.Banners, id, &banner); err != nil {
		return models.Banner{}, err
	}
	return banner, nil
}

// Create stores the image (when given) and the banner record. filename
// is the client-supplied name; only its extension is kept.
func (s *BannerService) Create(ctx context.Context, in BannerInput, image io.Reader, filename string) (models.Banner, error) {
	now := time.Now().UTC()
	banner := models.Banner{
		ID:        gateway.NewID(),
		Title:     in.Title,
		Subtitle:  in.Subtitle,
		LinkURL:   in.LinkURL,
		Position:  in.Position,
		Active:    in.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if image != nil {
		path := bannerPath(banner.ID, filename)
		if err := storage.PutStream(path, image); err != nil {
			return models.Banner{}, fmt.Errorf("store banner image: %w", err)
		}
		banner.ImagePath = path
		banner.ImageURL = storage.URL(path)
	}

	if err := s.store.Create(ctx, gateway.Banners, banner.ID, banner); err != nil {
		return models.Banner{}, err
	}

	logger.Info("banner created", "banner_id", banner.ID, "title", banner.Title)
	queue.Dispatch(jobs.RecordActivity{Kind: "banner", Title: "Banner created", Detail: banner.Title})
	return banner, nil
}

// Update replaces the banner fields and, when a new image arrives,
// swaps the stored file.
func (s *BannerService) Update(ctx context.Context, id string, in BannerInput, image io.Reader, filename string) (models.Banner, error) {
	banner, err := s.Get(ctx, id)
	if err != nil {
		return models.Banner{}, err
	}

	fields := map[string]any{
		"title":      in.Title,
		"subtitle":   in.Subtitle,
		"link_url":   in.LinkURL,
		"position":   in.Position,
		"active":     in.Active,
		"updated_at": time.Now().UTC(),
	}

	if image != nil {
		path := bannerPath(banner.ID, filename)
		if err := storage.PutStream(path, image); err != nil {
			return models.Banner{}, fmt.Errorf("store banner image: %w", err)
		}
		if banner.ImagePath != "" && banner.ImagePath != path {
			if err := storage.Delete(banner.ImagePath); err != nil {
				logger.Warn("stale banner image not removed", "path", banner.ImagePath, "error", err)
			}
		}
		fields["image_path"] = path
		fields["image_url"] = storage.URL(path)
	}

	if err := s.store.Update(ctx, gateway.Banners, id, fields); err != nil {
		return models.Banner{}, err
	}
	return s.Get(ctx, id)
}

// Delete removes the record and its stored image.
func (s *BannerService) Delete(ctx context.Context, id string) error {
	banner, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, gateway.Banners, id); err != nil {
		return err
	}
	if banner.ImagePath != "" {
		if err := storage.Delete(banner.ImagePath); err != nil {
			logger.Warn("banner image not removed", "path", banner.ImagePath, "error", err)
		}
	}
	logger.Info("banner deleted", "banner_id", id)
	queue.Dispatch(jobs.RecordActivity{Kind: "banner", Title: "Banner removed", Detail: banner.Title})
	return nil
}

func bannerPath(id, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return "banners/" + id + ext
}
