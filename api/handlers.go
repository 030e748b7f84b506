package api

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"debtwatch/models"
	"debtwatch/service"
)

const (
	defaultTimeframe = "1y"
	defaultWallYears = 10
	maxWallYears     = 30
	bearerPrefix     = "Bearer "
)

// auctionsResponse is the body for GET /auctions.
type auctionsResponse struct {
	Data              []models.DemandPoint       `json:"data"`
	Stats             models.DemandStats         `json:"stats"`
	BidderComposition []models.BidderComposition `json:"bidderComposition"`
	Meta              sourceMeta                 `json:"meta"`
}

// maturityWallResponse is the body for GET /maturity-wall.
type maturityWallResponse struct {
	Data []models.MaturityWallBucket `json:"data"`
	Meta maturityWallMeta            `json:"meta"`
}

type sourceMeta struct {
	Source string `json:"source"`
}

type maturityWallMeta struct {
	RecordDate               string `json:"recordDate"`
	TotalSecuritiesProcessed int    `json:"totalSecuritiesProcessed"`
	Source                   string `json:"source"`
}

func (s *Server) handleDebt(w http.ResponseWriter, r *http.Request) {
	overview, err := s.debt.GetLatest(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			writeError(w, http.StatusNotFound, "no debt data available")
			return
		}
		log.WithError(err).Error("Failed to resolve debt overview")
		writeError(w, http.StatusInternalServerError, "failed to resolve debt data")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (s *Server) handleAuctions(w http.ResponseWriter, r *http.Request) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = defaultTimeframe
	}
	if !service.ValidTimeframe(timeframe) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid timeframe %q; use one of 1y, 3y, 5y, 10y", timeframe))
		return
	}

	types, err := parseAuctionTypes(r.URL.Query().Get("types"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.auctions.GetDemand(r.Context(), timeframe, types)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			writeError(w, http.StatusNotFound, "no auction data available")
			return
		}
		log.WithError(err).Error("Failed to resolve auction demand")
		writeError(w, http.StatusInternalServerError, "failed to resolve auction data")
		return
	}

	writeJSON(w, http.StatusOK, auctionsResponse{
		Data:              result.Points,
		Stats:             result.Stats,
		BidderComposition: result.Compositions,
		Meta:              sourceMeta{Source: result.Source},
	})
}

func (s *Server) handleMaturityWall(w http.ResponseWriter, r *http.Request) {
	years := defaultWallYears
	if raw := r.URL.Query().Get("years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxWallYears {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid years %q; use an integer between 1 and %d", raw, maxWallYears))
			return
		}
		years = parsed
	}

	result, err := s.maturity.GetWall(r.Context(), years)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			writeError(w, http.StatusNotFound, "no maturity data available")
			return
		}
		log.WithError(err).Error("Failed to resolve maturity wall")
		writeError(w, http.StatusInternalServerError, "failed to resolve maturity data")
		return
	}

	writeJSON(w, http.StatusOK, maturityWallResponse{
		Data: result.Buckets,
		Meta: maturityWallMeta{
			RecordDate:               result.RecordDate,
			TotalSecuritiesProcessed: result.TotalSecurities,
			Source:                   result.Source,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.GetIndicators(r.Context()))
}

func (s *Server) handleHealthHistory(w http.ResponseWriter, r *http.Request) {
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = defaultTimeframe
	}
	if !service.ValidTimeframe(timeframe) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid timeframe %q; use one of 1y, 3y, 5y, 10y", timeframe))
		return
	}

	points, err := s.health.GetHistory(r.Context(), timeframe)
	if err != nil {
		log.WithError(err).Error("Failed to load indicator history")
		writeError(w, http.StatusInternalServerError, "failed to load indicator history")
		return
	}
	if points == nil {
		points = []service.HistoryPoint{}
	}

	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleCronIngest(w http.ResponseWriter, r *http.Request) {
	if !s.authorizeCron(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	report, err := s.ingest.Run(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoStore) {
			writeError(w, http.StatusServiceUnavailable, "no database configured; ingestion unavailable")
			return
		}
		log.WithError(err).Error("Ingestion run failed")
		writeError(w, http.StatusInternalServerError, "ingestion run failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// authorizeCron checks the bearer secret on the ingestion trigger.
// Development runs skip the check so local testing needs no secret.
func (s *Server) authorizeCron(r *http.Request) bool {
	if s.cfg.IsDevelopment() {
		return true
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return false
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.CronSecret)) == 1
}

// parseAuctionTypes parses the CSV types filter. An empty filter means
// all auction security types.
func parseAuctionTypes(raw string) ([]models.SecurityType, error) {
	if raw == "" {
		return nil, nil
	}

	var types []models.SecurityType
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		t := models.SecurityType(strings.ToUpper(tok))
		if !models.ValidAuctionType(t) {
			return nil, fmt.Errorf("invalid security type %q", tok)
		}
		types = append(types, t)
	}
	return types, nil
}
