package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/ledger"
	"github.com/goodnatureofminers/blockinsight7000-mocknode/internal/node"
	"github.com/google/uuid"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errBadRequest = errors.New("bad request")

// HTTPHandler serves the JSON API of the mock node.
type HTTPHandler struct {
	node   Node
	logger *zap.Logger
}

// NewHTTPHandler registers all routes and returns them wrapped with CORS.
func NewHTTPHandler(n Node, logger *zap.Logger) (http.Handler, error) {
	if n == nil {
		return nil, errors.New("node is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	h := &HTTPHandler{node: n, logger: logger.Named("http")}
	mux := gwruntime.NewServeMux()

	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/healthcheck", h.healthcheck},
		{http.MethodPost, "/mocknode/tx", h.submitTx},
		{http.MethodPost, "/mocknode/block", h.addBlock},
		{http.MethodGet, "/mocknode/slot", h.currentSlot},
		{http.MethodGet, "/mocknode/blocks/{slot}", h.blocksSince},
		{http.MethodPost, "/mocknode/events/consume", h.consumeEvents},
		{http.MethodPost, "/mocknode/followers", h.newFollower},
		{http.MethodGet, "/mocknode/followers/{id}/blocks", h.followerBlocks},
		{http.MethodGet, "/mocknode/stats", h.stats},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}

	return cors.Default().Handler(mux), nil
}

func (h *HTTPHandler) healthcheck(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if err := h.node.Healthcheck(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *HTTPHandler) submitTx(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req submitTxRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: decode body: %v", errBadRequest, err))
		return
	}
	tx, err := decodeTx(req.Tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	txid, err := h.node.AddTx(r.Context(), tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, submitTxResponse{TxID: txid.String(), Slot: h.node.CurrentSlot()})
}

func (h *HTTPHandler) addBlock(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if err := h.node.AddBlock(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, slotResponse{Slot: h.node.CurrentSlot()})
}

func (h *HTTPHandler) currentSlot(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, slotResponse{Slot: h.node.CurrentSlot()})
}

func (h *HTTPHandler) blocksSince(w http.ResponseWriter, r *http.Request, params map[string]string) {
	slot, err := strconv.ParseUint(params["slot"], 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: slot %q", errBadRequest, params["slot"]))
		return
	}

	blocks, err := h.node.BlocksSince(r.Context(), slot)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := toBlocksResponse(blocks)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) consumeEvents(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, toEventsResponse(h.node.ConsumeEventHistory()))
}

func (h *HTTPHandler) newFollower(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	id, err := h.node.NewFollower(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, followerResponse{ID: id.String(), Slot: h.node.CurrentSlot()})
}

func (h *HTTPHandler) followerBlocks(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := uuid.Parse(params["id"])
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: follower id %q", errBadRequest, params["id"]))
		return
	}

	blocks, err := h.node.FollowerBlocks(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp, err := toBlocksResponse(blocks)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *HTTPHandler) stats(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, toStatsResponse(h.node.Stats()))
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), ledger.IsRejected(err):
		return http.StatusBadRequest
	case errors.Is(err, node.ErrUnknownFollower):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
