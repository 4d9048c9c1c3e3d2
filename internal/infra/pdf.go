package infra

// pdf.go — geração do contrato de locação em PDF usando go-pdf/fpdf.
// Uma página A5 com:
//   - Cabeçalho com o nome da loja
//   - Dados do locatário (nome, documento, telefone)
//   - Dados do veículo (marca, modelo, ano, placa)
//   - Período, diária e valor total em destaque
//   - Linhas de assinatura
//
// O arquivo é gravado em storagePath/contrato_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/agenciavortexia1-debug/Autocar/internal/model"
)

// GenerateContratoPDF gera o contrato/recibo de uma locação.
// storagePath é o diretório de saída (criado se necessário).
// Retorna o caminho absoluto do arquivo gerado.
func GenerateContratoPDF(loc *model.Locacao, veiculo *model.Veiculo, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("contrato_%s.pdf", loc.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// ── Cabeçalho ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 8, "AUTO CAR CHAPADA", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, tr("Contrato de Locação de Veículo"), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(4)

	campo := func(rotulo, valor string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(34, 6, tr(rotulo), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-34, 6, tr(valor), "", 1, "L", false, 0, "")
	}

	// ── Locatário ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("Locatário"), "", 1, "L", false, 0, "")
	campo("Nome:", loc.Cliente.Nome)
	campo("Documento:", loc.Cliente.Documento)
	campo("Telefone:", loc.Cliente.Telefone)
	pdf.Ln(3)

	// ── Veículo ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("Veículo"), "", 1, "L", false, 0, "")
	campo("Modelo:", fmt.Sprintf("%s %s (%d)", veiculo.Marca, veiculo.Modelo, veiculo.Ano))
	campo("Placa:", veiculo.Placa)
	pdf.Ln(3)

	// ── Condições ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("Condições"), "", 1, "L", false, 0, "")
	campo("Início:", loc.DataInicio.Format("02/01/2006"))
	campo("Devolução:", loc.DataFim.Format("02/01/2006"))
	campo("Diária:", "R$ "+loc.Diaria.StringFixed(2))

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(34, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-34, 8, "R$ "+loc.ValorTotal.StringFixed(2), "", 1, "L", false, 0, "")

	// ── Assinaturas ──────────────────────────────────────────────────────────
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 8)
	meio := contentW / 2
	y := pdf.GetY()
	pdf.Line(12, y, 12+meio-6, y)
	pdf.Line(12+meio+6, y, pageW-12, y)
	pdf.CellFormat(meio-6, 5, tr("Locatário"), "", 0, "C", false, 0, "")
	pdf.CellFormat(12, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(meio-6, 5, tr("Locador"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
