package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
	"github.com/sitebook/sitebook-backend/internal/pkg/dateutil"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
)

// maxUploadSize bounds multipart bodies before the image is compressed.
const maxUploadSize = 10 << 20

// decodeJSON decodes the body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// periodFromQuery reads ?month=&year=, defaulting each to the current month.
func periodFromQuery(r *http.Request) (dateutil.Period, error) {
	period := dateutil.PeriodOf(time.Now())
	var errs validator.ValidationErrors

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
		period.Month = month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
		period.Year = year
	}
	if len(errs) > 0 {
		return dateutil.Period{}, errs
	}
	return period, period.Validate()
}

// photoFromForm returns the "photo" part of a multipart request. The caller closes it.
func photoFromForm(w http.ResponseWriter, r *http.Request) (io.ReadCloser, string, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return nil, "", false
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'photo' is required", nil)
			return nil, "", false
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return nil, "", false
	}
	return file, fileHeader.Filename, true
}
