package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/fitness-directory/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/fitness-directory/api/internal/public/application"
)

type compareOperation func(ctx context.Context, sessionID string) (publicapp.CompareResult, error)

func (h *Handler) compareStartHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		session, err := h.compare.Start(ctx)
		if err != nil {
			h.logger.Printf("compare session start failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Error starting compare session", err.Error())
			return
		}
		token, err := h.tokens.Issue(session.ID, session.ExpiresAt)
		if err != nil {
			h.logger.Printf("compare session token failed session=%s err=%v", session.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Error starting compare session", err.Error())
			return
		}

		common.WriteData(h.logger, w, http.StatusCreated, compareSessionResponse{
			SessionID: session.ID,
			Token:     token,
			ExpiresAt: session.ExpiresAt,
		})
	}
}

func (h *Handler) compareSnapshotHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		sessionID, _ := common.SessionFromContext(ctx)
		snapshot, err := h.compare.Snapshot(ctx, sessionID)
		if err != nil {
			h.writeCompareError(w, sessionID, err)
			return
		}
		common.WriteData(h.logger, w, http.StatusOK, buildCompareResponse(snapshot))
	}
}

func (h *Handler) compareEndHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
		defer cancel()

		sessionID, _ := common.SessionFromContext(ctx)
		if err := h.compare.End(ctx, sessionID); err != nil {
			h.writeCompareError(w, sessionID, err)
			return
		}
		common.WriteMessage(h.logger, w, http.StatusOK, "Compare session ended")
	}
}

func (h *Handler) compareAddHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req compareAddRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		if req.ID <= 0 {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid business id", "id must be a positive integer")
			return
		}

		h.runCompare(w, r, func(ctx context.Context, sessionID string) (publicapp.CompareResult, error) {
			return h.compare.Add(ctx, sessionID, req.ID)
		})
	}
}

func (h *Handler) compareRemoveHandler() http.HandlerFunc {
	return h.compareItemHandler(func(ctx context.Context, sessionID string, id int) (publicapp.CompareResult, error) {
		return h.compare.Remove(ctx, sessionID, id)
	})
}

func (h *Handler) compareToggleHandler() http.HandlerFunc {
	return h.compareItemHandler(func(ctx context.Context, sessionID string, id int) (publicapp.CompareResult, error) {
		return h.compare.Toggle(ctx, sessionID, id)
	})
}

func (h *Handler) compareClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.runCompare(w, r, h.compare.Clear)
	}
}

func (h *Handler) compareOpenModalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.runCompare(w, r, h.compare.OpenModal)
	}
}

func (h *Handler) compareCloseModalHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.runCompare(w, r, h.compare.CloseModal)
	}
}

func (h *Handler) compareItemHandler(op func(ctx context.Context, sessionID string, id int) (publicapp.CompareResult, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimSpace(chi.URLParam(r, "id")))
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid business id", "id must be numeric")
			return
		}
		h.runCompare(w, r, func(ctx context.Context, sessionID string) (publicapp.CompareResult, error) {
			return op(ctx, sessionID, id)
		})
	}
}

// runCompare は比較セッションへの操作を実行し、変更有無を含むスナップショットを返す。
// ガードにより無視された操作もエラーにはせず changed=false で応答する。
func (h *Handler) runCompare(w http.ResponseWriter, r *http.Request, op compareOperation) {
	ctx, cancel := context.WithTimeout(r.Context(), common.RequestTimeout)
	defer cancel()

	sessionID, _ := common.SessionFromContext(ctx)
	result, err := op(ctx, sessionID)
	if err != nil {
		h.writeCompareError(w, sessionID, err)
		return
	}

	resp := buildCompareResponse(result.Snapshot)
	changed := result.Changed
	resp.Changed = &changed
	common.WriteData(h.logger, w, http.StatusOK, resp)
}

func (h *Handler) writeCompareError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, publicapp.ErrCompareSessionNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "Compare session not found", "")
	case errors.Is(err, publicapp.ErrBusinessNotFound):
		common.WriteError(h.logger, w, http.StatusNotFound, "Business not found", "")
	default:
		h.logger.Printf("compare operation failed session=%s err=%v", sessionID, err)
		common.WriteError(h.logger, w, http.StatusInternalServerError, "Error updating comparison", err.Error())
	}
}
