package user

import (
	"context"
	"net/http"

	"gocatalog/internal/api/httputil"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/validation"
)

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	ListUsers(ctx context.Context, q domain.PageQuery) ([]domain.User, int, error)
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, payload validation.Payload) (domain.User, error)
	UpdateUser(ctx context.Context, id string, payload validation.Payload) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service      UserService
	Logger       logger.Logger
	MaxBodyBytes int64
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, log logger.Logger, maxBodyBytes int64) *Handler {
	return &Handler{
		Service:      svc,
		Logger:       log,
		MaxBodyBytes: maxBodyBytes,
	}
}

// ListUsersHandler godoc
// @Summary      Lista usuários
// @Description  Lista paginada de usuários na ordem de criação.
// @Tags         users
// @Produce      json
// @Param        page   query     int  false  "Página (padrão 1)"
// @Param        limit  query     int  false  "Itens por página (padrão 10, máximo 100)"
// @Success      200    {object}  domain.Envelope{data=[]domain.User}
// @Router       /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	q := httputil.PageQuery(r)

	users, total, err := h.Service.ListUsers(r.Context(), q)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{
		Data:       users,
		Pagination: domain.NewPagination(q, total),
	})
}

// SearchUsersHandler godoc
// @Summary      Busca usuários
// @Description  Busca sem diferenciar caixa em nome, email e papel.
// @Tags         users
// @Produce      json
// @Param        q    query     string  true  "Termo de busca"
// @Success      200  {object}  domain.Envelope{data=[]domain.User}
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /users/search [get]
func (h *Handler) SearchUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.SearchUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	count := len(users)
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Data: users, Count: &count})
}

// GetUserByIDHandler godoc
// @Summary      Busca usuário por ID
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  domain.Envelope{data=domain.User}
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUserByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Data: user})
}

// CreateUserHandler godoc
// @Summary      Cria usuário
// @Description  Campos: name (2-50), email (único), age (18-120), role (user|admin|moderator, padrão user).
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      object  true  "Dados do usuário"
// @Success      201   {object}  domain.Envelope{data=domain.User}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      409   {object}  domain.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	// 1. Decodificação do Payload
	payload, err := httputil.DecodeJSONObject(r, h.MaxBodyBytes)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	// 2. Chamar o Serviço (Lógica de Negócio)
	user, err := h.Service.CreateUser(r.Context(), payload)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	// 3. Resposta de Sucesso (201 Created)
	h.Logger.Info("Usuário criado.", map[string]interface{}{"user_id": user.ID})
	httputil.Success(w, h.Logger, http.StatusCreated, domain.Envelope{Message: "Usuário criado com sucesso", Data: user})
}

// UpdateUserHandler godoc
// @Summary      Atualiza usuário
// @Description  Atualização parcial; ao menos um campo deve ser informado.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "ID do usuário"
// @Param        user  body      object  true  "Campos a alterar"
// @Success      200   {object}  domain.Envelope{data=domain.User}
// @Failure      400   {object}  domain.ErrorResponse
// @Failure      404   {object}  domain.ErrorResponse
// @Failure      409   {object}  domain.ErrorResponse
// @Router       /users/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payload, err := httputil.DecodeJSONObject(r, h.MaxBodyBytes)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), id, payload)
	if err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Usuário atualizado.", map[string]interface{}{"user_id": id})
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Message: "Usuário atualizado com sucesso", Data: user})
}

// DeleteUserHandler godoc
// @Summary      Remove usuário
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  domain.Envelope
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		httputil.WriteError(w, r, h.Logger, err)
		return
	}

	h.Logger.Info("Usuário removido.", map[string]interface{}{"user_id": id})
	httputil.Success(w, h.Logger, http.StatusOK, domain.Envelope{Message: "Usuário removido com sucesso"})
}
