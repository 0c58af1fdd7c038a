package controllers

import (
	"errors"
	"net/http"

	"github.com/modacart/modacart-backend/api/responses"
	"github.com/modacart/modacart-backend/internal/media"
	"github.com/modacart/modacart-backend/pkg/config"
	pkgerrors "github.com/modacart/modacart-backend/pkg/errors"
	"github.com/modacart/modacart-backend/pkg/logger"
	"github.com/modacart/modacart-backend/pkg/types"
)

// uploadFieldName is the multipart form field the storefront admin panel
// sends the image under.
const uploadFieldName = "product"

// Upload receives a multipart image and stores it for static serving.
func Upload(svc media.Service, cfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	maxBytes := int64(cfg.MaxUploadMB) << 20

	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "media service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile(uploadFieldName)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				err = pkgerrors.Wrap(pkgerrors.CodeValidation, err, "uploaded file is too large")
			} else {
				err = pkgerrors.Wrap(pkgerrors.CodeValidation, err, "product file field is required")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer file.Close()

		result, err := svc.Save(r.Context(), uploadFieldName, header.Filename, file)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, types.Uploaded{Success: true, ImageURL: result.URL})
	}
}
