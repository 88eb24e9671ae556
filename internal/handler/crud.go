package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"restogestion/internal/apierror"
	"restogestion/internal/dto"
	"restogestion/internal/service"

	"github.com/gin-gonic/gin"
)

// Mensajes holds the client-facing texts of one entity.
type Mensajes struct {
	NoEncontrado    string
	FaltanCampos    string
	Creado          string
	Actualizado     string
	Eliminado       string
	ErrorConsultar     string
	ErrorCrear      string
	ErrorActualizar string
	ErrorEliminar   string

	// Batch creation, only used when the handler accepts arrays.
	LoteFaltanCampos string
	LoteCreado       string
	LoteErrorCrear   string
}

// CrudHandler serves list/get/create/update/delete for one entity type.
type CrudHandler[M any] struct {
	svc         service.CrudService[M]
	msgs        Mensajes
	decodificar func([]byte) (M, error)
	lista       func(M) any
	detalle     func(M) any
	lote        bool
}

// decodificador decodes a create body into the request schema C, validates it
// and converts it to the model.
func decodificador[M any, C interface{ Modelo() M }]() func([]byte) (M, error) {
	return func(raw []byte) (M, error) {
		var req C
		if err := json.Unmarshal(raw, &req); err != nil {
			var zero M
			return zero, err
		}
		if err := validate.Struct(req); err != nil {
			var zero M
			return zero, err
		}
		return req.Modelo(), nil
	}
}

func (h *CrudHandler[M]) Listar(c *gin.Context) {
	rows, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err, h.msgs.ErrorConsultar)
		return
	}
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		out = append(out, h.lista(row))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CrudHandler[M]) Obtener(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(h.msgs.NoEncontrado))
		return
	}
	row, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		h.fallo(c, err, h.msgs.ErrorConsultar)
		return
	}
	c.JSON(http.StatusOK, h.detalle(*row))
}

func (h *CrudHandler[M]) Crear(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(service.MsgDatosNoRecibidos))
		return
	}
	body = bytes.TrimSpace(body)

	if h.lote && len(body) > 0 && body[0] == '[' {
		h.crearLote(c, body)
		return
	}

	var campos map[string]json.RawMessage
	if json.Unmarshal(body, &campos) != nil || len(campos) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New(service.MsgDatosNoRecibidos))
		return
	}
	row, err := h.decodificar(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(h.msgs.FaltanCampos))
		return
	}
	if err := h.svc.Crear(c.Request.Context(), []M{row}); err != nil {
		responderError(c, err, h.msgs.ErrorCrear)
		return
	}
	c.JSON(http.StatusCreated, dto.MsgResponse{Msg: h.msgs.Creado})
}

// crearLote validates every element before inserting any of them.
func (h *CrudHandler[M]) crearLote(c *gin.Context, body []byte) {
	var items []json.RawMessage
	if json.Unmarshal(body, &items) != nil || len(items) == 0 {
		c.JSON(http.StatusBadRequest, apierror.New(service.MsgDatosNoRecibidos))
		return
	}
	rows := make([]M, 0, len(items))
	for _, item := range items {
		row, err := h.decodificar(item)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(h.msgs.LoteFaltanCampos))
			return
		}
		rows = append(rows, row)
	}
	if err := h.svc.Crear(c.Request.Context(), rows); err != nil {
		responderError(c, err, h.msgs.LoteErrorCrear)
		return
	}
	c.JSON(http.StatusCreated, dto.MsgResponse{Msg: h.msgs.LoteCreado})
}

func (h *CrudHandler[M]) Actualizar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(h.msgs.NoEncontrado))
		return
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(service.MsgDatosNoRecibidos))
		return
	}
	if _, err := h.svc.Actualizar(c.Request.Context(), id, body); err != nil {
		h.fallo(c, err, h.msgs.ErrorActualizar)
		return
	}
	c.JSON(http.StatusOK, dto.MsgResponse{Msg: h.msgs.Actualizado})
}

func (h *CrudHandler[M]) Eliminar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(h.msgs.NoEncontrado))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.fallo(c, err, h.msgs.ErrorEliminar)
		return
	}
	c.JSON(http.StatusOK, dto.MsgResponse{Msg: h.msgs.Eliminado})
}

func (h *CrudHandler[M]) fallo(c *gin.Context, err error, fallback string) {
	if service.IsNoEncontrado(err) {
		c.JSON(http.StatusNotFound, apierror.New(h.msgs.NoEncontrado))
		return
	}
	responderError(c, err, fallback)
}
