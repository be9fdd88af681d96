package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ldelgadom/partidas-api/middleware"
	"github.com/ldelgadom/partidas-api/models"
	"github.com/ldelgadom/partidas-api/repository"
)

func newObjectRouter(objects repository.Objects) *gin.Engine {
	r := gin.New()
	oc := NewObjectController(objects)
	grp := r.Group("/object")
	grp.GET("", oc.GetObjects)
	grp.POST("/create", middleware.AuthRequired(), oc.CreateObject)
	grp.DELETE("/:id", middleware.AuthRequired(), oc.DeleteObjectByID)
	return r
}

func TestCreateObjectSequentialIDs(t *testing.T) {
	store := &fakeObjects{}
	r := newObjectRouter(store)
	auth := bearerToken(t, "user-1")

	var resp struct {
		Message string `json:"message"`
		ID      int    `json:"id"`
	}

	w := doRequest(r, http.MethodPost, "/object/create", `{"nombre":"Espada","descripcion":"una espada"}`, auth)
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: got status %d, want 201 (body %q)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Objeto creado exitosamente" || resp.ID != 1 {
		t.Fatalf("first create: got %+v", resp)
	}

	w = doRequest(r, http.MethodPost, "/object/create", `{"nombre":"Escudo"}`, auth)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 2 {
		t.Fatalf("second create: got id %d, want 2", resp.ID)
	}
}

func TestCreateObjectRequiresNombre(t *testing.T) {
	store := &fakeObjects{}
	r := newObjectRouter(store)

	for _, body := range []string{`{}`, `{"nombre":""}`, `{"nombre":"   "}`} {
		w := doRequest(r, http.MethodPost, "/object/create", body, bearerToken(t, "user-1"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: got status %d, want 400", body, w.Code)
		}
		if got := w.Body.String(); got != "Nombre es requerido" {
			t.Fatalf("body %q: got response %q", body, got)
		}
	}
	if len(store.objects) != 0 {
		t.Fatalf("got %d stored objects, want 0", len(store.objects))
	}
}

func TestDeleteObjectByID(t *testing.T) {
	store := &fakeObjects{objects: []models.ObjectRecord{
		{ID: 1, Nombre: "Espada"},
		{ID: 2, Nombre: "Escudo"},
	}}
	r := newObjectRouter(store)
	auth := bearerToken(t, "user-1")

	w := doRequest(r, http.MethodDelete, "/object/xyz", "", auth)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric: got status %d, want 400", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/object/5", "", auth)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing: got status %d, want 404", w.Code)
	}
	if got := w.Body.String(); got != "Objeto no encontrado" {
		t.Fatalf("missing: got body %q", got)
	}

	w = doRequest(r, http.MethodDelete, "/object/1", "", auth)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got status %d, want 200", w.Code)
	}
	if len(store.objects) != 1 || store.objects[0].ID != 2 {
		t.Fatalf("delete: unexpected remaining objects %+v", store.objects)
	}
}
