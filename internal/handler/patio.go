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

type PatioHandler struct{ svc service.PatioService }

func NewPatioHandler(svc service.PatioService) *PatioHandler {
	return &PatioHandler{svc: svc}
}

func (h *PatioHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVeiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.RegistrarVeiculo(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *PatioHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarVeiculoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.AtualizarVeiculo(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Veículo não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *PatioHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarVeiculos(c.Request.Context()))
}
