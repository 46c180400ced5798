package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/mux"

	"github.com/golunar/lunardate"
)

// ConversionResponse is the body of a successful conversion.
type ConversionResponse struct {
	Calendar lunardate.Variant   `json:"calendar"`
	Solar    lunardate.SolarDate `json:"solar"`
	Lunar    lunardate.LunarDate `json:"lunar"`
	Display  string              `json:"display"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type healthResponse struct {
	Status       string `json:"status"`
	TableVersion int    `json:"table_version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", TableVersion: lunardate.TableVersion()})
}

// handleSolar handles GET /api/v1/{calendar}/solar/{date}
func (s *Server) handleSolar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	v, err := lunardate.ParseVariant(vars["calendar"])
	if err != nil {
		s.fail(w, r, "", "", err)
		return
	}
	sd, err := lunardate.ParseSolarDate(vars["date"])
	if err != nil {
		s.fail(w, r, v.String(), "to_lunar", errors.Mark(err, errMalformed))
		return
	}
	ld, err := s.conv.SolarToLunar(sd, v)
	if err != nil {
		s.fail(w, r, v.String(), "to_lunar", err)
		return
	}
	s.metrics.RecordConversion(v.String(), "to_lunar", "ok")
	writeJSON(w, http.StatusOK, ConversionResponse{Calendar: v, Solar: sd, Lunar: ld, Display: ld.String()})
}

// handleLunar handles GET /api/v1/{calendar}/lunar/{date}. The leap month
// is selected with an "L" suffix on the date or with ?leap=true.
func (s *Server) handleLunar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	v, err := lunardate.ParseVariant(vars["calendar"])
	if err != nil {
		s.fail(w, r, "", "", err)
		return
	}
	ld, err := lunardate.ParseLunarDate(vars["date"])
	if err != nil {
		s.fail(w, r, v.String(), "to_solar", errors.Mark(err, errMalformed))
		return
	}
	if q := r.URL.Query().Get("leap"); q != "" {
		leap, err := strconv.ParseBool(q)
		if err != nil {
			s.fail(w, r, v.String(), "to_solar", errors.Mark(errors.Wrapf(err, "leap=%q", q), errMalformed))
			return
		}
		if leap && !ld.IsLeapMonth() {
			ld, err = lunardate.NewLunarDate(ld.Year(), ld.Month(), ld.Day(), true)
			if err != nil {
				s.fail(w, r, v.String(), "to_solar", err)
				return
			}
		}
	}
	sd, err := s.conv.LunarToSolar(ld, v)
	if err != nil {
		s.fail(w, r, v.String(), "to_solar", err)
		return
	}
	s.metrics.RecordConversion(v.String(), "to_solar", "ok")
	writeJSON(w, http.StatusOK, ConversionResponse{Calendar: v, Solar: sd, Lunar: ld, Display: sd.String()})
}

// handleYear handles GET /api/v1/{calendar}/years/{year}
func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	v, err := lunardate.ParseVariant(vars["calendar"])
	if err != nil {
		s.fail(w, r, "", "", err)
		return
	}
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		s.fail(w, r, v.String(), "", errors.Mark(err, errMalformed))
		return
	}
	info, err := s.conv.YearInfo(year, v)
	if err != nil {
		s.fail(w, r, v.String(), "", err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// handleRange handles GET /api/v1/{calendar}/range
func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	v, err := lunardate.ParseVariant(mux.Vars(r)["calendar"])
	if err != nil {
		s.fail(w, r, "", "", err)
		return
	}
	rng, err := lunardate.SupportedRange(v)
	if err != nil {
		s.fail(w, r, v.String(), "", err)
		return
	}
	writeJSON(w, http.StatusOK, rng)
}

// fail writes an error response. direction is empty for requests that are
// not conversions.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, cal, direction string, err error) {
	status, class := classify(err)
	if direction != "" {
		s.metrics.RecordConversion(cal, direction, class)
	}
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	id := RequestID(r.Context())
	s.Log(level, "request failed",
		slog.String("request_id", id),
		slog.String("class", class),
		slog.String("error", err.Error()))
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
