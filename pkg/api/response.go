package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/validator"
)

// JSONResponse is the envelope of every response body.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

func jsonData(data any, meta map[string]any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: data, Meta: meta}}
}

// jsonError maps err to a status and a message translated for the request.
func jsonError(tr *i18n.Translator, lang string, err error) Response {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return jsonResponse{
			status: http.StatusUnprocessableEntity,
			body:   JSONResponse{Error: validationDetail(tr, lang, verrs)},
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return jsonResponse{
			status: httpErr.Status,
			body: JSONResponse{Error: &ErrorDetail{
				Code:    errorCode(httpErr.Key),
				Message: tr.T(lang, httpErr.Key, httpErr.Args...),
			}},
		}
	}

	return jsonResponse{
		status: http.StatusInternalServerError,
		body: JSONResponse{Error: &ErrorDetail{
			Code:    "internal",
			Message: tr.T(lang, "errors.internal"),
		}},
	}
}

func validationDetail(tr *i18n.Translator, lang string, verrs validator.ValidationErrors) *ErrorDetail {
	translated := tr.TranslateErrors(lang, verrs)
	details := make(map[string][]string, len(translated))
	for _, field := range translated.Fields() {
		details[field] = translated.Get(field)
	}
	return &ErrorDetail{
		Code:    "validation_error",
		Message: translated[0].Message,
		Details: details,
	}
}

// errorCode turns "errors.rate_limited" into "rate_limited".
func errorCode(key string) string {
	return key[strings.LastIndexByte(key, '.')+1:]
}
