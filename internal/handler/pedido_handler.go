package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"comanda_api/internal/middleware"
	"comanda_api/internal/model"
	"comanda_api/internal/service"

	"github.com/gin-gonic/gin"
)

// PedidoHandler handles pedido related requests
type PedidoHandler struct {
	service service.PedidoService
}

// NewPedidoHandler creates a new PedidoHandler
func NewPedidoHandler(s service.PedidoService) *PedidoHandler {
	return &PedidoHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int64, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int64)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// ListPedidos handles GET /pedidos
func (h *PedidoHandler) ListPedidos(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
		return
	}

	pedidos, err := h.service.ListPedidos(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing pedidos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao buscar pedidos", "detalhe": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

// CreatePedido handles POST /pedidos
func (h *PedidoHandler) CreatePedido(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
		return
	}

	var req model.CreatePedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Requisição inválida: " + err.Error()})
		return
	}

	pedido, err := h.service.CreatePedido(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrNumeroEmUso) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Número de pedido já registrado"})
			return
		}
		log.Printf("Error creating pedido: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao criar pedido", "detalhe": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pedido criado com sucesso", "pedido": pedido})
}

// GerarAleatorios handles POST /pedidos/aleatorios?qtd=N
func (h *PedidoHandler) GerarAleatorios(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
		return
	}

	qtd, err := strconv.Atoi(c.DefaultQuery("qtd", "3"))
	if err != nil || qtd < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Parâmetro qtd inválido"})
		return
	}

	pedidos, err := h.service.GerarAleatorios(c.Request.Context(), userID, qtd)
	if err != nil {
		log.Printf("Error generating random pedidos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao gerar pedidos", "detalhe": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Pedidos gerados com sucesso", "pedidos": pedidos})
}

// UpdateStatus handles PUT /pedidos/:id/status
func (h *PedidoHandler) UpdateStatus(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
		return
	}

	pedidoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID de pedido inválido"})
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "Requisição inválida: " + err.Error()})
		return
	}

	pedido, err := h.service.UpdateStatus(c.Request.Context(), userID, pedidoID, req.Status)
	if err != nil {
		if errors.Is(err, service.ErrStatusInvalido) {
			c.JSON(http.StatusBadRequest, gin.H{"erro": "Status inválido"})
			return
		}
		if errors.Is(err, service.ErrPedidoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Pedido não encontrado"})
			return
		}
		log.Printf("Error updating pedido status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao atualizar status", "detalhe": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status atualizado com sucesso", "pedido": pedido})
}

// DeletePedido handles DELETE /pedidos/:id
func (h *PedidoHandler) DeletePedido(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"erro": err.Error()})
		return
	}

	pedidoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"erro": "ID de pedido inválido"})
		return
	}

	if err := h.service.DeletePedido(c.Request.Context(), userID, pedidoID); err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"erro": "Pedido não encontrado"})
			return
		}
		log.Printf("Error deleting pedido: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"erro": "Erro ao remover pedido", "detalhe": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pedido removido com sucesso"})
}

// RegisterPedidoRoutes registers pedido routes behind the auth middleware
func (h *PedidoHandler) RegisterPedidoRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	pedidoGroup := r.Group("/pedidos")
	pedidoGroup.Use(authMW)
	{
		pedidoGroup.GET("", h.ListPedidos)
		pedidoGroup.POST("", h.CreatePedido)
		pedidoGroup.POST("/aleatorios", h.GerarAleatorios)
		pedidoGroup.PUT("/:id/status", h.UpdateStatus)
		pedidoGroup.DELETE("/:id", h.DeletePedido)
	}
}
