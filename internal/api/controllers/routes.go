package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r gin.IRouter,
	categoryController *CategoryController,
	materialController *MaterialController,
	pointsController *RecyclingPointsController,
	healthController *HealthController) {

	r.GET("/", healthController.Root)
	r.GET("/database/test", healthController.TestDatabase)

	categories := r.Group("/categorias")
	categories.GET("", categoryController.ListCategories)
	categories.POST("", categoryController.CreateCategory)
	categories.GET("/:id", categoryController.GetCategory)
	categories.PATCH("/:id", categoryController.UpdateCategory)
	categories.DELETE("/:id", categoryController.DeleteCategory)

	materials := r.Group("/materiales")
	materials.GET("", materialController.ListMaterials)
	materials.POST("", materialController.CreateMaterial)
	materials.GET("/categoria/:id", materialController.ListByCategory)
	materials.GET("/:id", materialController.GetMaterial)
	materials.GET("/:id/puntos-reciclaje", materialController.PointsForMaterial)
	materials.PATCH("/:id", materialController.UpdateMaterial)
	materials.DELETE("/:id", materialController.DeleteMaterial)

	points := r.Group("/puntos-reciclaje")
	points.GET("", pointsController.ListPoints)
	points.POST("", pointsController.CreatePoint)
	points.GET("/cercanos", pointsController.FindNearby)
	points.GET("/:id", pointsController.GetPoint)
	points.PATCH("/:id", pointsController.UpdatePoint)
	points.DELETE("/:id", pointsController.DeletePoint)
	points.GET("/:id/materiales", pointsController.MaterialsForPoint)
	points.PUT("/:id/materiales/:material_id", pointsController.SetMaterial)
	points.DELETE("/:id/materiales/:material_id", pointsController.RemoveMaterial)
}
