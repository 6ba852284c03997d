package i18n

import "net/http"

// Middleware negotiates the request language and stores it with SetLocale.
// The "lang" query parameter wins over the Accept-Language header.
func Middleware(tr *Translator) func(http.Handler) http.Handler {
	supported := tr.SupportedLanguages()
	fallback := tr.DefaultLanguage()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.URL.Query().Get("lang")
			if header == "" {
				header = r.Header.Get("Accept-Language")
			}
			lang := Match(header, supported, fallback)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
