package handler

import (
	"errors"
	"net/http"

	"restogestion/internal/apierror"
	"restogestion/internal/dto"
	"restogestion/internal/middleware"
	"restogestion/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req, "Faltan datos") {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCredencialesIncorrectas) {
			c.JSON(http.StatusUnauthorized, apierror.Failed(service.ErrCredencialesIncorrectas.Msg))
			return
		}
		responderError(c, err, "Error al iniciar sesion")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register is mounted behind OptionalJWTAuth: an anonymous caller is only
// accepted while no user exists.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegistroRequest
	if !bindAndValidate(c, &req, "Faltan datos obligatorios") {
		return
	}

	var callerID *uint
	if id, ok := middleware.GetUserID(c); ok {
		callerID = &id
	}
	if err := h.svc.Registrar(c.Request.Context(), callerID, req); err != nil {
		responderError(c, err, "Error al registrar")
		return
	}
	c.JSON(http.StatusCreated, dto.MsgResponse{Msg: "Usuario creado correctamente"})
}

func (h *AuthHandler) Private(c *gin.Context) {
	id, _ := middleware.GetUserID(c)
	perfil, err := h.svc.Perfil(c.Request.Context(), id)
	if err != nil {
		responderError(c, err, "Algo salió mal")
		return
	}
	c.JSON(http.StatusOK, dto.PrivateResponse{User: *perfil})
}

func (h *AuthHandler) CambiarPassword(c *gin.Context) {
	var req dto.CambiarPasswordRequest
	if !bindAndValidate(c, &req, "Faltan datos") {
		return
	}
	id, _ := middleware.GetUserID(c)
	if err := h.svc.CambiarPassword(c.Request.Context(), id, req); err != nil {
		responderError(c, err, "Error al actualizar la contraseña")
		return
	}
	c.JSON(http.StatusOK, dto.MsgResponse{Msg: "Contraseña actualizada correctamente"})
}
