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

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

func (h *FinanceiroHandler) Adicionar(c *gin.Context) {
	var req dto.AdicionarDespesaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.AdicionarDespesa(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *FinanceiroHandler) Remover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.RemoverDespesa(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Despesa não encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FinanceiroHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarDespesas(c.Request.Context()))
}
