package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ldelgadom/partidas-api/middleware"
	"github.com/ldelgadom/partidas-api/repository"
	"github.com/ldelgadom/partidas-api/utils"
)

func newUserRouter(users repository.Users) *gin.Engine {
	r := gin.New()
	uc := NewUserController(users)
	grp := r.Group("/user")
	grp.POST("/create", uc.CreateUser)
	grp.POST("/login", uc.Login)
	grp.DELETE("/:id", middleware.AuthRequired(), uc.DeleteUser)
	return r
}

func TestUserRegisterLoginDelete(t *testing.T) {
	store := &fakeUsers{}
	r := newUserRouter(store)

	// register
	w := doRequest(r, http.MethodPost, "/user/create", `{"email":"ana@example.com","password":"secreta1"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got status %d, want 201 (body %q)", w.Code, w.Body.String())
	}
	var created struct {
		Message string `json:"message"`
		UID     string `json:"uid"`
		Token   string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode register: %v", err)
	}
	if created.Message != "Usuario creado exitosamente" || created.UID == "" || created.Token == "" {
		t.Fatalf("register: incomplete response %+v", created)
	}

	// duplicate email
	w = doRequest(r, http.MethodPost, "/user/create", `{"email":"ana@example.com","password":"otracosa"}`, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate: got status %d, want 409", w.Code)
	}

	// wrong password
	w = doRequest(r, http.MethodPost, "/user/login", `{"email":"ana@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: got status %d, want 401", w.Code)
	}

	// unknown email gets the same rejection
	w = doRequest(r, http.MethodPost, "/user/login", `{"email":"nadie@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown login: got status %d, want 401", w.Code)
	}

	// login
	w = doRequest(r, http.MethodPost, "/user/login", `{"email":"ana@example.com","password":"secreta1"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: got status %d, want 200 (body %q)", w.Code, w.Body.String())
	}
	var logged struct {
		UID   string `json:"uid"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &logged); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if logged.UID != created.UID {
		t.Fatalf("login: got uid %q, want %q", logged.UID, created.UID)
	}
	claims, err := utils.ParseToken(logged.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.UID != created.UID || claims.Email != "ana@example.com" {
		t.Fatalf("token claims: got %+v", claims)
	}

	// delete with the issued token
	w = doRequest(r, http.MethodDelete, "/user/"+created.UID, "", "Bearer "+logged.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got status %d, want 200 (body %q)", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "Usuario eliminado correctamente" {
		t.Fatalf("delete: got body %q", got)
	}

	// the account is gone and the token was revoked
	w = doRequest(r, http.MethodDelete, "/user/"+created.UID, "", "Bearer "+logged.Token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: got status %d, want 401", w.Code)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"secreta1"}`},
		{name: "missing password", body: `{"email":"ana@example.com"}`},
		{name: "malformed email", body: `{"email":"not-an-email","password":"secreta1"}`},
		{name: "short password", body: `{"email":"ana@example.com","password":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUsers{}
			r := newUserRouter(store)

			w := doRequest(r, http.MethodPost, "/user/create", tt.body, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", w.Code)
			}
			if len(store.users) != 0 {
				t.Fatalf("got %d stored users, want 0", len(store.users))
			}
		})
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	r := newUserRouter(&fakeUsers{})

	w := doRequest(r, http.MethodDelete, "/user/no-such-uid", "", bearerToken(t, "someone"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", w.Code)
	}
	if got := w.Body.String(); got != "Usuario no encontrado" {
		t.Fatalf("got body %q", got)
	}
}
