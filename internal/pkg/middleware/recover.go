package middleware

import (
	"fmt"
	"net/http"

	"gocatalog/internal/api/httputil"
	apperror "gocatalog/internal/errors"
	"gocatalog/internal/pkg/logger"
)

// Recoverer converte um panic no handler em resposta 500 padronizada.
func Recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				httputil.WriteError(w, r, log, apperror.NewInternalError(
					"Ocorreu um erro inesperado.", fmt.Errorf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Chain aplica os middlewares na ordem informada: o primeiro é o mais externo.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
