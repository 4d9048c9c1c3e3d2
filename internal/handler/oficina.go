package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agenciavortexia1-debug/Autocar/internal/apierror"
	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/service"
)

type OficinaHandler struct{ svc service.OficinaService }

func NewOficinaHandler(svc service.OficinaService) *OficinaHandler {
	return &OficinaHandler{svc: svc}
}

func (h *OficinaHandler) AdicionarProduto(c *gin.Context) {
	var req dto.AdicionarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.AdicionarProduto(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *OficinaHandler) AjustarEstoque(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AjustarEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.AjustarEstoque(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *OficinaHandler) FecharOrdem(c *gin.Context) {
	var req dto.FecharOrdemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	os, err := h.svc.FecharOrdemServico(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, os)
}

func (h *OficinaHandler) ListarProdutos(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarProdutos(c.Request.Context()))
}

func (h *OficinaHandler) ListarOrdens(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarOrdens(c.Request.Context()))
}
