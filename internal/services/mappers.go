package services

import (
	"ecoandino/internal/models/db_models"
	"ecoandino/internal/models/response_models"
	"ecoandino/internal/repositories"
	"ecoandino/pkg/geo"
)

func toCategoryResponse(c *db_models.Category) *response_models.CategoryResponse {
	return &response_models.CategoryResponse{
		ID:                  c.ID,
		Nombre:              c.Nombre,
		Descripcion:         c.Descripcion,
		Codigo:              c.Codigo,
		ColorIdentificacion: c.ColorIdentificacion,
		Icono:               c.Icono,
		OrdenDisplay:        c.OrdenDisplay,
		Activo:              c.Activo,
	}
}

func toMaterialResponse(m *db_models.Material) *response_models.MaterialResponse {
	return &response_models.MaterialResponse{
		ID:                     m.ID,
		Nombre:                 m.Nombre,
		Codigo:                 m.Codigo,
		Descripcion:            m.Descripcion,
		PreparacionRequerida:   m.PreparacionRequerida,
		BeneficioAmbiental:     m.BeneficioAmbiental,
		RequiereManejoEspecial: m.RequiereManejoEspecial,
		Ejemplos:               m.Ejemplos,
		MaterialesNoAceptados:  m.MaterialesNoAceptados,
		EsPeligroso:            m.EsPeligroso,
		CategoriaID:            m.CategoriaID,
		Activo:                 m.Activo,
	}
}

func withCategory(resp *response_models.MaterialResponse, c *db_models.Category) *response_models.MaterialResponse {
	if c == nil {
		return resp
	}
	nombre := c.Nombre
	resp.CategoriaNombre = &nombre
	resp.CategoriaColor = c.ColorIdentificacion
	resp.CategoriaIcono = c.Icono
	return resp
}

func materialRowResponse(row *repositories.MaterialRow) *response_models.MaterialResponse {
	resp := toMaterialResponse(&row.Material)
	nombre := row.CategoriaNombre
	resp.CategoriaNombre = &nombre
	resp.CategoriaColor = row.CategoriaColor
	resp.CategoriaIcono = row.CategoriaIcono
	return resp
}

func toPointResponse(p *db_models.RecyclingPoint) *response_models.RecyclingPointResponse {
	return &response_models.RecyclingPointResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Direccion:       p.Direccion,
		Ciudad:          p.Ciudad,
		Latitud:         p.Latitud,
		Longitud:        p.Longitud,
		TipoInstalacion: p.TipoInstalacion,
		HorarioApertura: p.HorarioApertura,
		HorarioCierre:   p.HorarioCierre,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Estado:          p.Estado,
		Geohash:         geo.Geohash(geo.Point{Lat: p.Latitud, Lng: p.Longitud}),
	}
}

func pointRowResponse(row *repositories.PointRow) *response_models.RecyclingPointResponse {
	resp := toPointResponse(&row.Point)
	total := row.TotalMaterialesAceptados
	resp.TotalMaterialesAceptados = &total
	return resp
}

func toAcceptedMaterialResponse(m repositories.AcceptedMaterial) response_models.AcceptedMaterialResponse {
	return response_models.AcceptedMaterialResponse{
		ID:                   m.ID,
		Nombre:               m.Nombre,
		Codigo:               m.Codigo,
		Descripcion:          m.Descripcion,
		PreparacionRequerida: m.PreparacionRequerida,
		EsPeligroso:          m.EsPeligroso,
		CategoriaNombre:      m.CategoriaNombre,
		CategoriaColor:       m.CategoriaColor,
		CategoriaIcono:       m.CategoriaIcono,
		Observaciones:        m.Observaciones,
		CantidadMaxima:       m.CantidadMaxima,
		HorarioEspecial:      m.HorarioEspecial,
	}
}

func toAcceptingPointResponse(p repositories.AcceptingPoint) response_models.AcceptingPointResponse {
	return response_models.AcceptingPointResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Direccion:       p.Direccion,
		Ciudad:          p.Ciudad,
		Latitud:         p.Latitud,
		Longitud:        p.Longitud,
		TipoInstalacion: p.TipoInstalacion,
		HorarioApertura: p.HorarioApertura,
		HorarioCierre:   p.HorarioCierre,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Observaciones:   p.Observaciones,
		CantidadMaxima:  p.CantidadMaxima,
		HorarioEspecial: p.HorarioEspecial,
	}
}

func toPointMaterialResponse(l *db_models.PointMaterial) *response_models.PointMaterialResponse {
	return &response_models.PointMaterialResponse{
		PuntoReciclajeID: l.PuntoReciclajeID,
		MaterialID:       l.MaterialID,
		Acepta:           l.Acepta,
		Observaciones:    l.Observaciones,
		CantidadMaxima:   l.CantidadMaxima,
		HorarioEspecial:  l.HorarioEspecial,
	}
}
