package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ldelgadom/partidas-api/models"
	"github.com/ldelgadom/partidas-api/repository"
	"github.com/ldelgadom/partidas-api/utils"
)

// ObjectController manages game object records. Same sequential-id scheme
// as games, including its non-atomic id assignment.
type ObjectController struct {
	objects repository.Objects
}

// NewObjectController creates a new ObjectController instance.
func NewObjectController(objects repository.Objects) *ObjectController {
	return &ObjectController{objects: objects}
}

// CreateObject stores a new object with the next sequential id.
func (o *ObjectController) CreateObject(ctx *gin.Context) {
	var req struct {
		Nombre      string `json:"nombre"`
		Descripcion string `json:"descripcion"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Nombre) == "" {
		utils.Text(ctx, http.StatusBadRequest, "Nombre es requerido")
		return
	}

	highest, err := o.objects.HighestID(ctx.Request.Context())
	if err != nil {
		utils.InternalError(ctx, "failed to query highest object id", err)
		return
	}
	newID := highest + 1

	obj := models.ObjectRecord{
		ID:          newID,
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: strings.TrimSpace(req.Descripcion),
		Fecha:       time.Now().UTC().Format(time.RFC3339),
	}

	if err := o.objects.Insert(ctx.Request.Context(), obj); err != nil {
		utils.InternalError(ctx, "failed to insert object", err)
		return
	}

	utils.JSON(ctx, http.StatusCreated, gin.H{
		"message": "Objeto creado exitosamente",
		"id":      newID,
	})
}

// GetObjects returns every object in store order.
func (o *ObjectController) GetObjects(ctx *gin.Context) {
	objects, err := o.objects.All(ctx.Request.Context())
	if err != nil {
		utils.InternalError(ctx, "failed to list objects", err)
		return
	}
	utils.JSON(ctx, http.StatusOK, objects)
}

// DeleteObjectByID removes a single object by its application id.
func (o *ObjectController) DeleteObjectByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.Text(ctx, http.StatusBadRequest, "ID del objeto debe ser un número")
		return
	}

	err = o.objects.Delete(ctx.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.Text(ctx, http.StatusNotFound, "Objeto no encontrado")
		return
	}
	if err != nil {
		utils.InternalError(ctx, "failed to delete object", err)
		return
	}

	utils.Text(ctx, http.StatusOK, "Objeto eliminado correctamente")
}
