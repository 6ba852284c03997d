// Package logger builds *slog.Logger values from functional options and
// injects request-scoped attributes, such as the request id, from the
// context of every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "brtypes"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "document checked", logger.Kind("cpf"), logger.Valid(true))
//
// Attribute helpers in attr.go keep key names consistent across packages.
// Raw document numbers are never logged; use Value with a masked string.
package logger
