package server

import (
	"sync/atomic"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/seniorplan/carecalc/internal/calculation"
	"github.com/seniorplan/carecalc/internal/domain"
)

// CalculationRequest is the POST /calculate body: the flat answer map the
// form layer accumulated.
type CalculationRequest struct {
	Answers domain.AnswerMap `json:"answers"`
}

// CalculationResponse wraps the result record with a per-request ID for
// correlation in logs.
type CalculationResponse struct {
	CalculationID string              `json:"calculationId"`
	Result        domain.ResultRecord `json:"result"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server exposes the valuation engine over HTTP. The engine snapshot is held
// behind an atomic pointer so a rates reload swaps in a complete new engine;
// in-flight calculations keep the snapshot they started with and never see a
// half-updated table.
type Server struct {
	engine atomic.Pointer[calculation.Engine]
	log    *zap.Logger
}

// New creates a server around an initial engine snapshot.
func New(engine *calculation.Engine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{log: logger}
	s.engine.Store(engine)
	return s
}

// SwapRates atomically publishes a new rate snapshot.
func (s *Server) SwapRates(rates *domain.RateConfiguration) {
	s.engine.Store(calculation.NewEngine(rates))
}

// ListenAndServe serves until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("calculation server listening", zap.String("addr", addr))
	return fasthttp.ListenAndServe(addr, s.Handle)
}

// Handle routes a request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		s.handleCalculate(ctx)
	case "/healthz":
		s.handleHealth(ctx)
	default:
		s.writeError(ctx, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return
	}

	var req CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Answers == nil {
		req.Answers = domain.AnswerMap{}
	}

	id := uuid.NewString()
	result := s.engine.Load().Calculate(req.Answers)

	s.log.Info("calculation served",
		zap.String("calculation_id", id),
		zap.Int("answers", len(req.Answers)),
		zap.String("monthly_gap", result.MonthlyGap.StringFixed(2)),
	)
	s.writeJSON(ctx, fasthttp.StatusOK, CalculationResponse{CalculationID: id, Result: result})
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error("response encoding failed", zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
