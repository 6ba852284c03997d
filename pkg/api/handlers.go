package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gestaolivre/brtypes/pkg/cnpj"
	"github.com/gestaolivre/brtypes/pkg/cpf"
	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/i18n"
	"github.com/gestaolivre/brtypes/pkg/logger"
	"github.com/gestaolivre/brtypes/pkg/sanitizer"
	"github.com/gestaolivre/brtypes/pkg/validator"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	tr      *i18n.Translator
	log     *slog.Logger
	cfg     Config
	metrics *Metrics
	random  io.Reader
}

// wrap renders the Response of fn, or the error it returned.
func (h *handlers) wrap(fn func(r *http.Request) (Response, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := fn(r)
		if err != nil {
			resp = jsonError(h.tr, i18n.GetLocale(r.Context()), err)
		}
		if err := resp.Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "render response", logger.Error(err))
		}
	}
}

func kindParam(r *http.Request) (document.Kind, error) {
	raw := chi.URLParam(r, "kind")
	kind, ok := document.ParseKind(strings.ToLower(raw))
	if !ok {
		return document.KindUnknown, unknownKind(raw)
	}
	return kind, nil
}

// pathParam returns a URL parameter decoded exactly once. chi matches on
// RawPath when the request carries one (an escaped slash) and on the already
// decoded Path otherwise.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

// describe handles GET /v1/{kind}/{value}. The value may carry
// punctuation; a CNPJ slash must be sent as %2F.
func (h *handlers) describe(r *http.Request) (Response, error) {
	kind, err := kindParam(r)
	if err != nil {
		return nil, err
	}
	value, err := pathParam(r, "value")
	if err != nil {
		return nil, badRequest(err)
	}
	value = sanitizer.Input(value)

	desc, err := Describe(kind, kind.String(), value)
	h.metrics.observeCheck(kind, err == nil)
	if err != nil {
		h.log.DebugContext(r.Context(), "invalid value",
			logger.Kind(kind.String()),
			logger.Value(sanitizer.MaskDigits(value, 2)),
		)
		return nil, err
	}
	return jsonData(desc, nil), nil
}

// generate handles GET /v1/{kind}/generate?count=n&format=f|r.
func (h *handlers) generate(r *http.Request) (Response, error) {
	kind, err := kindParam(r)
	if err != nil {
		return nil, err
	}

	count := 1
	if s := r.URL.Query().Get("count"); s != "" {
		count, err = strconv.Atoi(s)
		if err != nil || count < 1 {
			return nil, badRequest(fmt.Errorf("count %q", s))
		}
	}
	if count > h.cfg.MaxGenerate {
		return nil, tooManyItems(h.cfg.MaxGenerate)
	}
	format := r.URL.Query().Get("format")

	type formatter interface {
		FormatAs(code string) (string, error)
	}
	next := func() (formatter, error) {
		switch kind {
		case document.KindCPF:
			c, err := cpf.Generate(h.random)
			return c, err
		case document.KindCNPJ:
			c, err := cnpj.Generate(h.random)
			return c, err
		default:
			return nil, HTTPError{
				Status: http.StatusBadRequest,
				Key:    "errors.generate_unsupported",
				Args:   []string{"kind", kind.String()},
				Err:    ErrGenerateUnsupported,
			}
		}
	}

	values := make([]string, 0, count)
	for range count {
		v, err := next()
		if err != nil {
			return nil, err
		}
		s, err := v.FormatAs(format)
		if err != nil {
			return nil, badRequest(err)
		}
		values = append(values, s)
	}

	h.metrics.observeGenerated(kind, count)
	h.log.InfoContext(r.Context(), "numbers generated", logger.Kind(kind.String()), logger.Count(count))
	return jsonData(values, map[string]any{"count": count}), nil
}

// BatchItem is one entry of a POST /v1/validate request. An empty Kind is
// detected from the number of digits.
type BatchItem struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type BatchRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchResult reports on the BatchItem at the same index.
type BatchResult struct {
	Kind        document.Kind `json:"kind"`
	Valid       bool          `json:"valid"`
	Description *Description  `json:"description,omitempty"`
	Errors      []string      `json:"errors,omitempty"`
}

// validate handles POST /v1/validate.
func (h *handlers) validate(r *http.Request) (Response, error) {
	var req BatchRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, badRequest(err)
	}
	if len(req.Items) == 0 {
		return nil, badRequest(fmt.Errorf("no items"))
	}
	if len(req.Items) > h.cfg.MaxBatch {
		return nil, tooManyItems(h.cfg.MaxBatch)
	}

	lang := i18n.GetLocale(r.Context())
	results := make([]BatchResult, len(req.Items))
	valid := 0
	for i, item := range req.Items {
		results[i] = h.check(lang, fmt.Sprintf("items[%d]", i), item)
		if results[i].Valid {
			valid++
		}
	}

	h.log.InfoContext(r.Context(), "batch validated", logger.Count(len(results)), slog.Int("valid", valid))
	return jsonData(results, map[string]any{
		"count":   len(results),
		"valid":   valid,
		"invalid": len(results) - valid,
	}), nil
}

func (h *handlers) check(lang, field string, item BatchItem) BatchResult {
	value := sanitizer.Input(item.Value)

	kind := document.Detect(value)
	if item.Kind != "" {
		k, ok := document.ParseKind(strings.ToLower(item.Kind))
		if !ok {
			return BatchResult{
				Kind:   document.Kind(item.Kind),
				Errors: []string{h.tr.T(lang, "errors.unknown_kind", "kind", item.Kind)},
			}
		}
		kind = k
	}
	if kind == document.KindUnknown {
		verrs := validator.ExtractValidationErrors(validator.Apply(validator.ValidDocument(field, value)))
		return BatchResult{Errors: h.tr.TranslateErrors(lang, verrs).Get(field)}
	}

	desc, err := Describe(kind, field, value)
	h.metrics.observeCheck(kind, err == nil)
	if err != nil {
		verrs := h.tr.TranslateErrors(lang, validator.ExtractValidationErrors(err))
		return BatchResult{Kind: kind, Errors: verrs.Get(field)}
	}
	return BatchResult{Kind: kind, Valid: true, Description: &desc}
}

func (h *handlers) notFound(_ *http.Request) (Response, error) {
	return nil, HTTPError{Status: http.StatusNotFound, Key: "errors.not_found"}
}

func (h *handlers) methodNotAllowed(_ *http.Request) (Response, error) {
	return nil, HTTPError{Status: http.StatusMethodNotAllowed, Key: "errors.method_not_allowed"}
}

func tooManyItems(limit int) HTTPError {
	return HTTPError{
		Status: http.StatusBadRequest,
		Key:    "errors.too_many_items",
		Args:   []string{"max", strconv.Itoa(limit)},
		Err:    ErrTooManyItems,
	}
}
