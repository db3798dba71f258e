package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comanda_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService returns canned results for handler tests
type mockAuthService struct {
	registerResult *service.AuthResult
	registerErr    error
	loginResult    *service.AuthResult
	loginErr       error

	gotNome, gotEmail, gotSenha string
	gotFoto                     []byte
	gotFotoTipo                 string
}

func (m *mockAuthService) Register(_ context.Context, nome, email, senha string, foto []byte, fotoTipo string) (*service.AuthResult, error) {
	m.gotNome, m.gotEmail, m.gotSenha = nome, email, senha
	m.gotFoto, m.gotFotoTipo = foto, fotoTipo
	return m.registerResult, m.registerErr
}

func (m *mockAuthService) Login(_ context.Context, email, senha string) (*service.AuthResult, error) {
	m.gotEmail, m.gotSenha = email, senha
	return m.loginResult, m.loginErr
}

func setupAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthHandler(svc).RegisterAuthRoutes(r)
	return r
}

func multipartRegistro(t *testing.T, fields map[string]string, fotoName string, foto []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fotoName != "" {
		fw, err := w.CreateFormFile("foto", fotoName)
		require.NoError(t, err)
		_, err = fw.Write(foto)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestAuthHandler_Registro(t *testing.T) {
	svc := &mockAuthService{registerResult: &service.AuthResult{Token: "tok123", Nome: "Casa do Norte"}}
	router := setupAuthRouter(svc)

	body, contentType := multipartRegistro(t, map[string]string{
		"nome":  "Casa do Norte",
		"email": "a@b.com",
		"senha": "x123456",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/registro", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok123", resp["token"])
	assert.Equal(t, "Casa do Norte", resp["nome"])
	assert.Nil(t, resp["foto"])
	assert.Equal(t, "a@b.com", svc.gotEmail)
}

func TestAuthHandler_Registro_ComFoto(t *testing.T) {
	fotoURI := "data:image/png;base64,iVBORw=="
	svc := &mockAuthService{registerResult: &service.AuthResult{Token: "tok123", Nome: "Casa do Norte", Foto: &fotoURI}}
	router := setupAuthRouter(svc)

	body, contentType := multipartRegistro(t, map[string]string{
		"nome":  "Casa do Norte",
		"email": "a@b.com",
		"senha": "x123456",
	}, "perfil.png", []byte{0x89, 0x50, 0x4e, 0x47})

	req := httptest.NewRequest(http.MethodPost, "/auth/registro", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, svc.gotFoto)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, fotoURI, resp["foto"])
}

func TestAuthHandler_Registro_CamposFaltando(t *testing.T) {
	svc := &mockAuthService{}
	router := setupAuthRouter(svc)

	body, contentType := multipartRegistro(t, map[string]string{"nome": "Casa do Norte"}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/registro", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Preencha todos os campos")
}

func TestAuthHandler_Registro_EmailDuplicado(t *testing.T) {
	svc := &mockAuthService{registerErr: service.ErrEmailJaRegistrado}
	router := setupAuthRouter(svc)

	body, contentType := multipartRegistro(t, map[string]string{
		"nome":  "Casa do Norte",
		"email": "a@b.com",
		"senha": "x123456",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/registro", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email já registrado")
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &mockAuthService{loginResult: &service.AuthResult{Token: "tok123", Nome: "Casa do Norte"}}
	router := setupAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","senha":"x123456"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok123", resp["token"])
	assert.Equal(t, "Casa do Norte", resp["nome"])
}

func TestAuthHandler_Login_UsuarioInexistente(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrUsuarioNotFound}
	router := setupAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"nobody@b.com","senha":"x123456"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Usuário não encontrado")
}

func TestAuthHandler_Login_SenhaErrada(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrSenhaIncorreta}
	router := setupAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","senha":"errada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Senha incorreta")
}
