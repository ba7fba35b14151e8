package record

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"shogi_csa/internal/domain/record"
	"shogi_csa/internal/httpresponse"
	recorduc "shogi_csa/internal/usecase/record"
	"shogi_csa/internal/utils"
)

type RecordHandler struct {
	log      *zap.SugaredLogger
	recordUC *recorduc.RecordUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewRecordHandler(log *zap.SugaredLogger, recordUC *recorduc.RecordUseCase) *RecordHandler {
	return &RecordHandler{
		log:      log,
		recordUC: recordUC,
	}
}

func (h *RecordHandler) Routes(r chi.Router) {
	r.Post("/render", h.HandleRender)
	r.Post("/records", h.HandleCreate)
	r.Get("/records/{id}", h.HandleGetCSA)
	r.Get("/records/{id}/pdf", h.HandleGetPDF)
	r.Post("/records/{id}/moves", h.HandleAppendMove)
	r.Get("/records/{id}/live", h.HandleLive)
}

func (h *RecordHandler) decodeRecord(w http.ResponseWriter, r *http.Request) (record.Record, bool) {
	var rec record.Record
	if err := utils.DecodeJSONRequest(r, &rec); err != nil {
		h.log.Errorf("decode record: %v", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc+": "+err.Error())
		return rec, false
	}
	return rec, true
}

func (h *RecordHandler) writeCSA(w http.ResponseWriter, text string) {
	var buf bytes.Buffer
	if err := h.recordUC.Encode(&buf, text); err != nil {
		h.log.Errorf("encode csa: %v", err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", h.recordUC.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// HandleRender encodes the posted record without storing it.
func (h *RecordHandler) HandleRender(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	text, err := h.recordUC.Render(rec)
	if err != nil {
		h.log.Infof("render rejected: %v", err)
		httpresponse.WriteDomainError(w, err)
		return
	}
	h.writeCSA(w, text)
}

func (h *RecordHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	id, text, err := h.recordUC.Create(r.Context(), rec)
	if err != nil {
		h.log.Errorf("create record: %v", err)
		httpresponse.WriteDomainError(w, err)
		return
	}

	h.log.Infof("record %s created", id)
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, record.CreateResponse{ID: id, CSA: text})
}

func (h *RecordHandler) HandleGetCSA(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	text, err := h.recordUC.CSA(r.Context(), id)
	if err != nil {
		h.log.Errorf("get record %s: %v", id, err)
		httpresponse.WriteDomainError(w, err)
		return
	}
	h.writeCSA(w, text)
}

func (h *RecordHandler) HandleGetPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var buf bytes.Buffer
	if err := h.recordUC.Sheet(r.Context(), id, &buf); err != nil {
		h.log.Errorf("render sheet of record %s: %v", id, err)
		httpresponse.WriteDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *RecordHandler) HandleAppendMove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var move record.MoveDoc
	if err := utils.DecodeJSONRequest(r, &move); err != nil {
		h.log.Errorf("decode move: %v", err)
		httpresponse.WriteError(w, http.StatusBadRequest, httpresponse.MALFORMEDJSON_errorDesc+": "+err.Error())
		return
	}

	lines, err := h.recordUC.AppendMove(r.Context(), id, move)
	if err != nil {
		h.log.Errorf("append move to record %s: %v", id, err)
		httpresponse.WriteDomainError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, record.AppendResponse{Lines: lines})
}

// HandleLive appends every move read from the websocket and answers with
// the CSA lines it produced, or an error description.
func (h *RecordHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	if _, err := h.recordUC.Record(ctx, id); err != nil {
		h.log.Errorf("live feed for record %s: %v", id, err)
		httpresponse.WriteDomainError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		var move record.MoveDoc
		if err = conn.ReadJSON(&move); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Errorf("live feed read for record %s: %v", id, err)
			}
			return
		}

		lines, err := h.recordUC.AppendMove(ctx, id, move)
		if err != nil {
			h.log.Infof("live move rejected for record %s: %v", id, err)
			if err = conn.WriteJSON(httpresponse.ErrorResponse{ErrorDescription: err.Error()}); err != nil {
				return
			}
			continue
		}
		if err = conn.WriteJSON(record.AppendResponse{Lines: lines}); err != nil {
			h.log.Errorf("live feed write for record %s: %v", id, err)
			return
		}
	}
}
