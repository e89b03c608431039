package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/config"
	"github.com/rosabel/glambook/internal/imagehost"
)

// UploadHandler is the generic image relay available to any
// authenticated account.  ?preset=profile|portfolio selects the
// transformation applied by the image host; the caller stores the
// returned URL wherever it belongs.
type UploadHandler struct {
	Cfg    config.Config
	Images *imagehost.Client
}

func NewUploadHandler(cfg config.Config, img *imagehost.Client) *UploadHandler {
	if img == nil {
		panic("nil image client passed to NewUploadHandler")
	}
	return &UploadHandler{Cfg: cfg, Images: img}
}

// Upload relays a multipart file to the image host.
func (h *UploadHandler) Upload(c echo.Context) error {
	preset := h.Cfg.ImageProfilePreset
	if c.QueryParam("preset") == "portfolio" {
		preset = h.Cfg.ImagePortfolioPreset
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

	url, err := h.Images.Upload(c.Request().Context(), fh.Filename, src, preset)
	if err != nil {
		if err == imagehost.ErrNotConfigured {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image uploads disabled"})
		}
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "image upload failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"secure_url": url})
}
