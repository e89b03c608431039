package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/config"
	"github.com/rosabel/glambook/internal/imagehost"
	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/repository"
)

// ArtistHandler serves the artist's own profile endpoints, including
// image uploads relayed to the external image host.
type ArtistHandler struct {
	Cfg     config.Config
	Artists *repository.ArtistRepo
	Images  *imagehost.Client
}

func NewArtistHandler(cfg config.Config, a *repository.ArtistRepo, img *imagehost.Client) *ArtistHandler {
	if a == nil || img == nil {
		panic("nil dependency passed to NewArtistHandler")
	}
	return &ArtistHandler{Cfg: cfg, Artists: a, Images: img}
}

type profileReq struct {
	Name        string   `json:"name" validate:"required"`
	Specialties string   `json:"specialties"`
	Experience  string   `json:"experience"`
	Location    string   `json:"location"`
	Rate        *float64 `json:"rate" validate:"omitempty,gte=0"`
	Instagram   string   `json:"instagram"`
	Facebook    string   `json:"facebook"`
	TikTok      string   `json:"tiktok"`
}

// GetProfile returns the caller's artist profile.
func (h *ArtistHandler) GetProfile(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Artists.GetByID(ctx, uid)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, a)
}

// UpdateProfile replaces the editable profile fields.
func (h *ArtistHandler) UpdateProfile(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err = h.Artists.UpdateProfile(ctx, uid, model.Artist{
		Name:        req.Name,
		Specialties: req.Specialties,
		Experience:  req.Experience,
		Location:    req.Location,
		Rate:        req.Rate,
		Instagram:   req.Instagram,
		Facebook:    req.Facebook,
		TikTok:      req.TikTok,
	})
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	a, err := h.Artists.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, a)
}

// UploadProfilePicture relays the multipart file to the image host
// under the profile preset and stores the returned URL.
func (h *ArtistHandler) UploadProfilePicture(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload"})
	}
	defer src.Close()

	ctx := c.Request().Context()
	url, err := h.Images.Upload(ctx, fh.Filename, src, h.Cfg.ImageProfilePreset)
	if err != nil {
		if err == imagehost.ErrNotConfigured {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image uploads disabled"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "image upload failed"})
	}

	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := h.Artists.SetProfilePicture(dbCtx, uid, url); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"profile_picture": url})
}

// AddPortfolioImage uploads one portfolio image and appends its URL,
// capped at the portfolio limit.
func (h *ArtistHandler) AddPortfolioImage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload"})
	}
	defer src.Close()

	ctx := c.Request().Context()
	url, err := h.Images.Upload(ctx, fh.Filename, src, h.Cfg.ImagePortfolioPreset)
	if err != nil {
		if err == imagehost.ErrNotConfigured {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image uploads disabled"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "image upload failed"})
	}

	dbCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	portfolio, err := h.Artists.AppendPortfolioImage(dbCtx, uid, url)
	if err != nil {
		switch err {
		case repository.ErrPortfolioFull:
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "portfolio image limit reached"})
		case repository.ErrArtistNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist profile not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"portfolio": portfolio})
}
