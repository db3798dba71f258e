package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"comanda_api/internal/service"

	"github.com/gin-gonic/gin"
)

// MaxFotoSize caps profile photo uploads at 2MB
const MaxFotoSize = 2 << 20

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Registro handles POST /auth/registro (multipart form: nome, email,
// senha and an optional foto file)
func (h *AuthHandler) Registro(c *gin.Context) {
	nome := c.PostForm("nome")
	email := c.PostForm("email")
	senha := c.PostForm("senha")

	if nome == "" || email == "" || senha == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Preencha todos os campos obrigatórios"})
		return
	}

	var foto []byte
	var fotoTipo string
	if fh, err := c.FormFile("foto"); err == nil {
		if fh.Size > MaxFotoSize {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Foto excede o tamanho máximo de 2MB"})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro no registro", "detalhe": err.Error()})
			return
		}
		defer src.Close()
		foto, err = io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro no registro", "detalhe": err.Error()})
			return
		}
		fotoTipo = fh.Header.Get("Content-Type")
	}

	result, err := h.service.Register(c.Request.Context(), nome, email, senha, foto, fotoTipo)
	if err != nil {
		if errors.Is(err, service.ErrEmailJaRegistrado) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Email já registrado."})
			return
		}
		log.Printf("Error during registration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro no registro", "detalhe": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"nome":  result.Nome,
		"foto":  result.Foto, // null when no photo was uploaded
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Senha string `json:"senha" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Preencha todos os campos obrigatórios"})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Usuário não encontrado"})
			return
		}
		if errors.Is(err, service.ErrSenhaIncorreta) {
			c.JSON(http.StatusUnauthorized, gin.H{"erro": "Senha incorreta"})
			return
		}
		log.Printf("Error during login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro no login", "detalhe": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"nome":  result.Nome,
		"foto":  result.Foto,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/registro", h.Registro)
		authGroup.POST("/login", h.Login)
	}
}
