package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/finsight/zscore-service/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrCompanyNotFound),
		domain.IsKind(err, domain.ErrFilingNotFound),
		domain.IsKind(err, domain.ErrQuoteNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := mapErrorToHTTPStatus(err)

	switch {
	case domain.IsKind(err, domain.ErrCompanyNotFound):
		writeError(w, status, "company not found", err.Error())
	case domain.IsKind(err, domain.ErrFilingNotFound):
		writeError(w, status, "no recent 10-Q filing found", err.Error())
	case domain.IsKind(err, domain.ErrQuoteNotFound):
		writeError(w, status, "market quote not available", err.Error())
	case domain.IsKind(err, domain.ErrInvalidInput):
		writeError(w, status, "invalid input", err.Error())
	case domain.IsKind(err, domain.ErrTemporary):
		writeError(w, status, "upstream temporarily unavailable", err.Error())
	case domain.IsKind(err, domain.ErrExtractionIncomplete):
		var missing *domain.MissingFieldsError
		if asMissingFields(err, &missing) {
			writeError(w, status, "could not extract required financial data",
				"missing fields: "+joinFields(missing.Missing))
			return
		}
		writeError(w, status, "could not extract required financial data", err.Error())
	default:
		writeError(w, status, "internal error", "")
	}
}

func outcomeForError(err error) string {
	switch {
	case domain.IsKind(err, domain.ErrCompanyNotFound),
		domain.IsKind(err, domain.ErrFilingNotFound),
		domain.IsKind(err, domain.ErrQuoteNotFound):
		return "not_found"
	case domain.IsKind(err, domain.ErrExtractionIncomplete):
		return "extraction_incomplete"
	case domain.IsKind(err, domain.ErrInvalidInput):
		return "invalid_input"
	case domain.IsKind(err, domain.ErrTemporary):
		return "temporary"
	default:
		return "internal"
	}
}

func asMissingFields(err error, target **domain.MissingFieldsError) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}

func joinFields(fields []domain.FinancialField) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
