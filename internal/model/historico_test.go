package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func novaEntrada(desc string) Historico {
	return Historico{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Categoria: HistPatio,
		Descricao: desc,
		Tipo:      HistAdd,
	}
}

func TestPushHistorico_MaisRecentePrimeiro(t *testing.T) {
	trilha := []Historico{}
	trilha = PushHistorico(trilha, novaEntrada("primeira"))
	trilha = PushHistorico(trilha, novaEntrada("segunda"))
	trilha = PushHistorico(trilha, novaEntrada("terceira"))

	assert.Len(t, trilha, 3)
	assert.Equal(t, "terceira", trilha[0].Descricao)
	assert.Equal(t, "primeira", trilha[2].Descricao)
}

func TestPushHistorico_LimiteDescartaMaisAntiga(t *testing.T) {
	trilha := []Historico{}
	for i := 0; i < MaxHistorico; i++ {
		trilha = PushHistorico(trilha, novaEntrada(fmt.Sprintf("entrada %d", i)))
	}
	assert.Len(t, trilha, MaxHistorico)
	assert.Equal(t, "entrada 0", trilha[MaxHistorico-1].Descricao)

	trilha = PushHistorico(trilha, novaEntrada("estouro"))
	assert.Len(t, trilha, MaxHistorico)
	assert.Equal(t, "estouro", trilha[0].Descricao)
	// a mais antiga ("entrada 0") foi descartada
	assert.Equal(t, "entrada 1", trilha[MaxHistorico-1].Descricao)
}

func TestPushHistorico_NaoMutaOriginal(t *testing.T) {
	original := []Historico{novaEntrada("unica")}
	_ = PushHistorico(original, novaEntrada("nova"))

	assert.Len(t, original, 1)
	assert.Equal(t, "unica", original[0].Descricao)
}
