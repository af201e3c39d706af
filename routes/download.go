package routes

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tiktok-downloader-api/models"
	"tiktok-downloader-api/pkg"
)

// DownloadHandler wires the extraction pipeline to the HTTP surface.
type DownloadHandler struct {
	extractor *pkg.Extractor
	saver     *pkg.MediaSaver
	log       *zap.SugaredLogger
}

func NewDownloadHandler(extractor *pkg.Extractor, saver *pkg.MediaSaver, log *zap.SugaredLogger) *DownloadHandler {
	return &DownloadHandler{
		extractor: extractor,
		saver:     saver,
		log:       log,
	}
}

// Download resolves a TikTok URL into a watermark-free download link.
// The URL arrives as a JSON body on POST or as the "url" query parameter on
// GET.
func (h *DownloadHandler) Download(c *fiber.Ctx) error {
	rawURL, err := requestURL(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid_url",
			Message: "Invalid TikTok URL format",
			Status:  http.StatusBadRequest,
		})
	}

	result, err := h.extractor.Extract(c.UserContext(), rawURL)
	if err != nil {
		return h.errorJSON(c, rawURL, err)
	}

	return c.JSON(result)
}

// DownloadAndSave runs the same extraction and additionally downloads the
// resolved media into the storage directory.
func (h *DownloadHandler) DownloadAndSave(c *fiber.Ctx) error {
	rawURL, err := requestURL(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid_url",
			Message: "Invalid TikTok URL format",
			Status:  http.StatusBadRequest,
		})
	}

	result, err := h.extractor.Extract(c.UserContext(), rawURL)
	if err != nil {
		return h.errorJSON(c, rawURL, err)
	}

	path, err := h.saver.Save(c.UserContext(), result.VideoURL)
	if err != nil {
		return h.errorJSON(c, rawURL, err)
	}

	return c.JSON(models.SaveResult{
		ExtractionResult: *result,
		SavedPath:        path,
	})
}

func requestURL(c *fiber.Ctx) (string, error) {
	if c.Method() == fiber.MethodGet {
		return c.Query("url"), nil
	}

	var req models.DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return "", err
	}
	return req.URL, nil
}

// errorJSON maps pipeline errors onto the documented taxonomy: bad input
// shape → 400, nothing playable → 404, everything else → generic 500 with
// the detail kept server-side.
func (h *DownloadHandler) errorJSON(c *fiber.Ctx, rawURL string, err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidURL):
		return c.Status(http.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "invalid_url",
			Message: "Invalid TikTok URL format",
			Status:  http.StatusBadRequest,
		})
	case errors.Is(err, models.ErrVideoNotFound), errors.Is(err, models.ErrNoWatermarkURL):
		return c.Status(http.StatusNotFound).JSON(models.ErrorResponse{
			Error:   "video_not_found",
			Message: "Video not found or is private",
			Status:  http.StatusNotFound,
		})
	default:
		h.log.Errorw("failed to process video", "url", rawURL, "error", err)
		return c.Status(http.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "server_error",
			Message: "Failed to process the video",
			Status:  http.StatusInternalServerError,
		})
	}
}
