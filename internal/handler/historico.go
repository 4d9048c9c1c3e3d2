package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenciavortexia1-debug/Autocar/internal/store"
)

// HistoricoHandler lê a trilha de auditoria direto do snapshot — não há
// serviço intermediário porque não existe regra de negócio na leitura.
type HistoricoHandler struct{ st *store.Store }

func NewHistoricoHandler(st *store.Store) *HistoricoHandler {
	return &HistoricoHandler{st: st}
}

func (h *HistoricoHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.st.Current().Historico)
}
