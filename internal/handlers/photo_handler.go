package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/audit"
	"github.com/nailnav/nailnav/internal/dberr"
	"github.com/nailnav/nailnav/internal/domain/salon"
	"github.com/nailnav/nailnav/internal/httperr"
	"github.com/nailnav/nailnav/internal/imaging"
	"github.com/nailnav/nailnav/internal/infra/storage"
	"github.com/nailnav/nailnav/internal/middleware"
	"github.com/nailnav/nailnav/internal/models"
)

const (
	MaxPhotoSize      = 5 << 20
	defaultPhotoLimit = 5
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ObjectStore is where photo bytes live; *storage.S3Store satisfies it.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type PhotoHandler struct {
	repo  salon.Repository
	store ObjectStore
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewPhotoHandler(repo salon.Repository, store ObjectStore, a *audit.Dispatcher, log *zap.Logger) *PhotoHandler {
	return &PhotoHandler{repo: repo, store: store, audit: a, log: log}
}

type photoResponse struct {
	ID               string    `json:"id"`
	URL              string    `json:"url"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"originalFilename"`
	Size             int64     `json:"size"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
	IsPrimary        bool      `json:"isPrimary"`
	Description      string    `json:"description"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

func newPhotoResponse(p *models.SalonPhoto) photoResponse {
	return photoResponse{
		ID:               p.ID,
		URL:              p.URL,
		Filename:         p.Filename,
		OriginalFilename: p.OriginalFilename,
		Size:             p.FileSize,
		Width:            p.Width,
		Height:           p.Height,
		IsPrimary:        p.IsPrimary,
		Description:      p.Description,
		UploadedAt:       p.CreatedAt,
	}
}

// ======================================================
// UPLOAD
// ======================================================

func (h *PhotoHandler) Upload(c *gin.Context) {
	if h.store == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_not_configured", "Photo storage is not configured")
		return
	}

	fh, err := c.FormFile("file")
	salonID, idErr := strconv.ParseUint(c.PostForm("salonId"), 10, 64)
	if err != nil || idErr != nil || salonID == 0 {
		httperr.BadRequest(c, "file_and_salon_required", "File and salon ID are required")
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if !allowedPhotoTypes[mimeType] {
		httperr.BadRequest(c, "invalid_file_type", "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed.")
		return
	}
	if fh.Size > MaxPhotoSize {
		httperr.BadRequest(c, "file_too_large", "File too large. Maximum size is 5MB.")
		return
	}

	ctx := c.Request.Context()

	s, err := h.repo.GetByID(ctx, uint(salonID))
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "salon_not_found", "Salon not found or access denied")
			return
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "photo_upload_failed", err)
		return
	}

	count, err := h.repo.CountPhotos(ctx, s.ID)
	if err != nil {
		httperr.WithDetails(c, http.StatusInternalServerError, "photo_upload_failed", err)
		return
	}
	limit := s.PhotoLimit
	if limit <= 0 {
		limit = defaultPhotoLimit
	}
	if count >= int64(limit) {
		httperr.BadRequest(c, "photo_limit_reached",
			fmt.Sprintf("Photo limit reached. Maximum %d photos allowed for your tier.", limit))
		return
	}

	data, err := readUpload(fh)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", err.Error())
		return
	}

	img := imaging.Process(data, mimeType)
	if !img.Processed {
		h.log.Warn("image processing skipped, storing original", zap.String("filename", fh.Filename))
	}

	photoID := uuid.NewString()
	ext := "jpg"
	if !img.Processed {
		if e := filepath.Ext(fh.Filename); e != "" {
			ext = e
		}
	}
	key := storage.PhotoKey(s.ID, photoID, ext)

	url, err := h.store.Put(ctx, key, img.MimeType, img.Data)
	if err != nil {
		h.log.Error("photo store failed", zap.String("key", key), zap.Error(err))
		httperr.Internal(c, "photo_store_failed", "Failed to store photo")
		return
	}

	photo := models.SalonPhoto{
		ID:               photoID,
		SalonID:          s.ID,
		Filename:         filepath.Base(key),
		OriginalFilename: fh.Filename,
		ObjectKey:        key,
		URL:              url,
		FileSize:         int64(len(img.Data)),
		MimeType:         img.MimeType,
		Width:            img.Width,
		Height:           img.Height,
		IsPrimary:        count == 0,
		SortOrder:        int(count) + 1,
	}

	if err := h.repo.CreatePhoto(ctx, &photo); err != nil {
		h.log.Error("photo metadata save failed", zap.String("photo_id", photoID), zap.Error(err))
		if derr := h.store.Delete(ctx, key); derr != nil {
			h.log.Error("photo cleanup failed", zap.String("key", key), zap.Error(derr))
		}
		httperr.Internal(c, "photo_save_failed", "Failed to save photo metadata")
		return
	}

	if userID, ok := middleware.UserID(c); ok {
		h.audit.Dispatch(audit.Event{
			ActorID:  &userID,
			Action:   "photo_uploaded",
			Entity:   "salon_photo",
			EntityID: photoID,
			Metadata: map[string]any{"salon_id": s.ID},
		})
	}

	c.JSON(http.StatusOK, newPhotoResponse(&photo))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxPhotoSize+1))
}

// ======================================================
// LIST
// ======================================================

func (h *PhotoHandler) List(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Query("salonId"), 10, 64)
	if err != nil || salonID == 0 {
		httperr.BadRequest(c, "salon_id_required", "Salon ID is required")
		return
	}

	photos, err := h.repo.ListPhotos(c.Request.Context(), uint(salonID))
	if err != nil {
		httperr.Internal(c, "photo_list_failed", "Failed to fetch photos")
		return
	}

	out := make([]photoResponse, len(photos))
	for i := range photos {
		out[i] = newPhotoResponse(&photos[i])
	}
	c.JSON(http.StatusOK, gin.H{"photos": out})
}

// ======================================================
// DELETE
// ======================================================

func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID := c.Param("photoId")
	if _, err := uuid.Parse(photoID); err != nil {
		httperr.BadRequest(c, "photo_id_required", "Photo ID is required")
		return
	}

	ctx := c.Request.Context()

	p, err := h.repo.GetPhoto(ctx, photoID)
	if err != nil {
		if dberr.IsNotFound(err) {
			httperr.NotFound(c, "photo_not_found", "Photo not found or access denied")
			return
		}
		httperr.WithDetails(c, http.StatusInternalServerError, "photo_delete_failed", err)
		return
	}

	// the row goes even when the object is already gone
	if h.store != nil && p.ObjectKey != "" {
		if err := h.store.Delete(ctx, p.ObjectKey); err != nil {
			h.log.Warn("photo object delete failed", zap.String("key", p.ObjectKey), zap.Error(err))
		}
	}

	if err := h.repo.DeletePhoto(ctx, p); err != nil {
		h.log.Error("photo row delete failed", zap.String("photo_id", photoID), zap.Error(err))
		httperr.Internal(c, "photo_delete_failed", "Failed to delete photo from database")
		return
	}

	if userID, ok := middleware.UserID(c); ok {
		h.audit.Dispatch(audit.Event{
			ActorID:  &userID,
			Action:   "photo_deleted",
			Entity:   "salon_photo",
			EntityID: photoID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
