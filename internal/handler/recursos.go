package handler

import (
	"restogestion/internal/dto"
	"restogestion/internal/model"
	"restogestion/internal/service"
)

const msgFaltanCampos = "Faltan campos obligatorios"

func NewUsuariosHandler(svc service.CrudService[model.Usuario]) *CrudHandler[model.Usuario] {
	return &CrudHandler[model.Usuario]{
		svc:     svc,
		lista:   func(u model.Usuario) any { return dto.NewUsuarioListItem(u) },
		detalle: func(u model.Usuario) any { return dto.NewUsuarioResponse(u) },
		msgs: Mensajes{
			NoEncontrado:    "Usuario no encontrado",
			Actualizado:     "Usuario actualizado",
			Eliminado:       "Usuario eliminado correctamente",
			ErrorConsultar:  "Error al consultar usuarios",
			ErrorActualizar: "Error al actualizar el usuario",
			ErrorEliminar:   "Error al eliminar el usuario",
		},
	}
}

func NewRestaurantesHandler(svc service.CrudService[model.Restaurante]) *CrudHandler[model.Restaurante] {
	return &CrudHandler[model.Restaurante]{
		svc:         svc,
		decodificar: decodificador[model.Restaurante, dto.CrearRestauranteRequest](),
		lista:       func(r model.Restaurante) any { return dto.NewRestauranteListItem(r) },
		detalle:     func(r model.Restaurante) any { return dto.NewRestauranteResponse(r) },
		msgs: Mensajes{
			NoEncontrado:    "Restaurante no encontrado",
			FaltanCampos:    "El campo 'nombre' es obligatorio",
			Creado:          "Restaurante creado correctamente",
			Actualizado:     "Restaurante actualizado",
			Eliminado:       "Restaurante eliminado correctamente",
			ErrorConsultar:  "Error al consultar restaurantes",
			ErrorCrear:      "Error al crear el restaurante",
			ErrorActualizar: "Error al actualizar restaurante",
			ErrorEliminar:   "Error al eliminar restaurante",
		},
	}
}

func NewVentasHandler(svc service.CrudService[model.Venta]) *CrudHandler[model.Venta] {
	ver := func(v model.Venta) any { return dto.NewVentaResponse(v) }
	return &CrudHandler[model.Venta]{
		svc:         svc,
		decodificar: decodificador[model.Venta, dto.CrearVentaRequest](),
		lista:       ver,
		detalle:     ver,
		msgs: Mensajes{
			NoEncontrado:    "Venta no encontrada",
			FaltanCampos:    msgFaltanCampos,
			Creado:          "Venta creada correctamente",
			Actualizado:     "Venta actualizada",
			Eliminado:       "Venta eliminada correctamente",
			ErrorConsultar:  "Error al consultar ventas",
			ErrorCrear:      "Error al crear la venta",
			ErrorActualizar: "Error al actualizar la venta",
			ErrorEliminar:   "Error al eliminar la venta",
		},
	}
}

// NewGastosHandler accepts a single expense or a non-empty array of them.
func NewGastosHandler(svc service.CrudService[model.Gasto]) *CrudHandler[model.Gasto] {
	ver := func(g model.Gasto) any { return dto.NewGastoResponse(g) }
	return &CrudHandler[model.Gasto]{
		svc:         svc,
		decodificar: decodificador[model.Gasto, dto.CrearGastoRequest](),
		lista:       ver,
		detalle:     ver,
		lote:        true,
		msgs: Mensajes{
			NoEncontrado:     "Gasto no encontrado",
			FaltanCampos:     msgFaltanCampos,
			Creado:           "Gasto registrado correctamente",
			Actualizado:      "Gasto actualizado",
			ErrorConsultar:   "Error al consultar gastos",
			ErrorCrear:       "Error al registrar el gasto",
			ErrorActualizar:  "Error al actualizar el gasto",
			LoteFaltanCampos: "Faltan campos obligatorios en uno de los gastos",
			LoteCreado:       "Gastos registrados correctamente",
			LoteErrorCrear:   "Error al registrar gastos",
		},
	}
}

func NewFacturasHandler(svc service.CrudService[model.FacturaAlbaran]) *CrudHandler[model.FacturaAlbaran] {
	ver := func(f model.FacturaAlbaran) any { return dto.NewFacturaResponse(f) }
	return &CrudHandler[model.FacturaAlbaran]{
		svc:         svc,
		decodificar: decodificador[model.FacturaAlbaran, dto.CrearFacturaRequest](),
		lista:       ver,
		detalle:     ver,
		msgs: Mensajes{
			NoEncontrado:    "Factura no encontrada",
			FaltanCampos:    msgFaltanCampos,
			Creado:          "Factura/Albarán registrado correctamente",
			Actualizado:     "Factura actualizada",
			Eliminado:       "Factura eliminada correctamente",
			ErrorConsultar:  "Error al consultar facturas",
			ErrorCrear:      "Error al registrar la factura",
			ErrorActualizar: "Error al actualizar factura",
			ErrorEliminar:   "Error al eliminar factura",
		},
	}
}

func NewProveedoresHandler(svc service.CrudService[model.Proveedor]) *CrudHandler[model.Proveedor] {
	ver := func(p model.Proveedor) any { return dto.NewProveedorResponse(p) }
	return &CrudHandler[model.Proveedor]{
		svc:         svc,
		decodificar: decodificador[model.Proveedor, dto.CrearProveedorRequest](),
		lista:       ver,
		detalle:     ver,
		msgs: Mensajes{
			NoEncontrado:    "Proveedor no encontrado",
			FaltanCampos:    msgFaltanCampos,
			Creado:          "Proveedor creado correctamente",
			Actualizado:     "Proveedor actualizado",
			Eliminado:       "Proveedor eliminado correctamente",
			ErrorConsultar:  "Error al consultar proveedores",
			ErrorCrear:      "Error al crear proveedor",
			ErrorActualizar: "Error al actualizar proveedor",
			ErrorEliminar:   "Error al eliminar proveedor",
		},
	}
}

func NewMargenesHandler(svc service.CrudService[model.MargenObjetivo]) *CrudHandler[model.MargenObjetivo] {
	ver := func(m model.MargenObjetivo) any { return dto.NewMargenResponse(m) }
	return &CrudHandler[model.MargenObjetivo]{
		svc:         svc,
		decodificar: decodificador[model.MargenObjetivo, dto.CrearMargenRequest](),
		lista:       ver,
		detalle:     ver,
		msgs: Mensajes{
			NoEncontrado:    "Margen no encontrado",
			FaltanCampos:    msgFaltanCampos,
			Creado:          "Margen creado correctamente",
			Actualizado:     "Margen actualizado",
			Eliminado:       "Margen eliminado correctamente",
			ErrorConsultar:  "Error al consultar margenes",
			ErrorCrear:      "Error al crear el margen",
			ErrorActualizar: "Error al actualizar margen",
			ErrorEliminar:   "Error al eliminar margen",
		},
	}
}
