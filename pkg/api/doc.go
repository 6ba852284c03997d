// Package api exposes the identifier parsers over HTTP.
//
// Routes:
//
//	GET  /v1/{kind}/{value}        describe one value (kind: cpf, cnpj, cep, phone)
//	GET  /v1/{kind}/generate?count generate valid CPF or CNPJ numbers
//	POST /v1/validate              validate a batch of {kind, value} items
//	GET  /healthz                  liveness
//	GET  /metrics                  Prometheus metrics
//
// Every response is a JSON envelope with "data", "meta" or "error". Invalid
// values produce 422 with per-field messages in the language negotiated by
// i18n.Middleware. Clients are rate limited per IP with go-chi/httprate.
package api
