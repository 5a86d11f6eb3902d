package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey é o tipo das chaves que este pacote anexa ao contexto da requisição.
// Chaves de contexto devem ser não-exportadas e de um tipo único.
type ContextKey int

const (
	RequestIDKey ContextKey = iota
)

// RequestIDHeader é o header usado para propagar o ID da requisição.
const RequestIDHeader = "X-Request-ID"

// RequestID reaproveita o X-Request-ID recebido ou gera um novo, devolvendo-o
// no header da resposta e anexando-o ao contexto.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extrai o ID da requisição do contexto.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
