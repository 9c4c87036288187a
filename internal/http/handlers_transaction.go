package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack/internal/core"
	"fintrack/internal/log"
	"fintrack/internal/notify"
)

const maxRecentLimit = 100

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	f, err := ParseFilter(r.URL.Query())
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}
	NewJSONResponse().Body(s.engine.Filter(s.store.Snapshot(), f)).Write(w)
}

func (s *Server) handleRecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := ParsePositiveInt(r.URL.Query(), "limit", s.recentLimit, maxRecentLimit)
	if err != nil {
		BadRequestError(err.Error()).Write(w)
		return
	}
	NewJSONResponse().Body(s.engine.Recent(s.store.Snapshot(), limit)).Write(w)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	t, ok := s.store.Get(core.ID(chi.URLParam(r, "id")))
	if !ok {
		NotFoundError("transaction not found").Write(w)
		return
	}
	NewJSONResponse().Body(t).Write(w)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	in, err := ParseTransactionInput(r)
	if err != nil {
		s.rejectInput(w, r, err, log.OpCreate)
		return
	}

	t, err := s.store.Create(ctx, in)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create transaction",
			log.NewFields().WithError(err).WithOperation(log.OpCreate).ToSlice()...)
		InternalServerError("failed to create transaction").Write(w)
		return
	}

	NewJSONResponse().
		Status(http.StatusCreated).
		Header("Location", "/api/transactions/"+string(t.ID)).
		Notification(notify.TransactionAdded(t)).
		Body(t).
		Write(w)
}

// handleUpdateTransaction replaces every field of an existing transaction;
// its id comes from the path.
func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))

	in, err := ParseTransactionInput(r)
	if err != nil {
		s.rejectInput(w, r, err, log.OpUpdate)
		return
	}

	t := in.WithID(id)
	if !s.store.Update(r.Context(), t) {
		NotFoundError("transaction not found").Write(w)
		return
	}

	NewJSONResponse().
		Notification(notify.TransactionUpdated(t)).
		Body(t).
		Write(w)
}

// handleDeleteTransaction answers 204 whether or not the id existed.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))

	resp := NewJSONResponse().Status(http.StatusNoContent)
	if t, ok := s.store.Delete(r.Context(), id); ok {
		resp.Notification(notify.TransactionDeleted(t))
	}
	resp.Write(w)
}

// rejectInput maps a ParseTransactionInput failure to 400 or 422.
func (s *Server) rejectInput(w http.ResponseWriter, r *http.Request, err error, op string) {
	log.FromContext(r.Context()).WarnContext(r.Context(), "Rejected transaction input",
		log.NewFields().WithError(err).WithOperation(op).ToSlice()...)

	if errors.Is(err, errMalformedBody) {
		BadRequestError(err.Error()).Write(w)
		return
	}
	UnprocessableEntityError(err.Error()).Write(w)
}
