package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agenciavortexia1-debug/Autocar/internal/apierror"
	"github.com/agenciavortexia1-debug/Autocar/internal/dto"
	"github.com/agenciavortexia1-debug/Autocar/internal/infra"
	"github.com/agenciavortexia1-debug/Autocar/internal/service"
)

type LocacaoHandler struct {
	svc     service.LocacaoService
	pdfPath string
}

func NewLocacaoHandler(svc service.LocacaoService, pdfPath string) *LocacaoHandler {
	return &LocacaoHandler{svc: svc, pdfPath: pdfPath}
}

func (h *LocacaoHandler) Iniciar(c *gin.Context) {
	var req dto.IniciarLocacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	loc, err := h.svc.IniciarLocacao(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Veículo não encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, loc)
}

func (h *LocacaoHandler) Devolucao(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	loc, err := h.svc.EncerrarLocacao(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Locação não encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, loc)
}

func (h *LocacaoHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListarLocacoes(c.Request.Context()))
}

// Contrato gera o contrato de locação em PDF e devolve o arquivo inline.
func (h *LocacaoHandler) Contrato(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	loc, veiculo, err := h.svc.BuscarLocacao(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Locação não encontrada"))
		return
	}
	caminho, err := infra.GenerateContratoPDF(loc, veiculo, h.pdfPath)
	if err != nil {
		log.Error().Err(err).Str("locacao_id", id.String()).Msg("falha ao gerar contrato PDF")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar o contrato"))
		return
	}
	c.Header("Content-Disposition", "inline; filename=contrato_"+id.String()+".pdf")
	c.File(caminho)
}
