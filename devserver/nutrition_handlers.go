package devserver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jrsteele09/wellbe/api"
	"github.com/jrsteele09/wellbe/nutrition"
	"github.com/jrsteele09/wellbe/transport"
)

// maxUploadBytes bounds multipart image uploads.
const maxUploadBytes = 10 << 20

// intParam reads an optional non-negative integer query parameter.
func intParam(r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	return n, err == nil && n >= 0
}

func (s *Server) SearchFoodHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, okLimit := intParam(r, "limit")
		offset, okOffset := intParam(r, "offset")
		if !okLimit || !okOffset {
			writeJSON(w, http.StatusBadRequest, api.Failed[struct{}]("limit and offset must be non-negative integers"))
			return
		}
		respond(w, s.nutrition.SearchFood(r.Context(), nutrition.FoodSearchRequest{
			Query:  r.URL.Query().Get("query"),
			Limit:  limit,
			Offset: offset,
		}))
	}
}

func (s *Server) FoodDetailsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.nutrition.FoodDetails(r.Context(), mux.Vars(r)[varID]))
	}
}

func (s *Server) AnalyzeImageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeJSON(w, http.StatusBadRequest, api.Failed[struct{}]("Invalid multipart body"))
			return
		}
		file, _, err := r.FormFile(transport.UploadField)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, api.Failed[struct{}]("Image is required"))
			return
		}
		defer file.Close()
		respond(w, s.nutrition.AnalyzeImage(r.Context(), nutrition.AnalyzeImageRequest{Image: file}))
	}
}

func (s *Server) ScanBarcodeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.nutrition.ScanBarcode(r.Context(), mux.Vars(r)[varBarcode]))
	}
}

func (s *Server) LogFoodHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req nutrition.LogFoodRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		respond(w, s.nutrition.LogFood(r.Context(), req))
	}
}

func (s *Server) DailyNutritionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, s.nutrition.DailyNutrition(r.Context(), r.URL.Query().Get("date")))
	}
}
