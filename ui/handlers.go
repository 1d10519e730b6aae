package ui

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"contaudit/adapters/excel"
	"contaudit/domain/audit"
	"contaudit/internal/errors"

	"github.com/gin-gonic/gin"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleHome reports service liveness
func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API do Leitor de Arquivos rodando!"})
}

// handleUpload inspects an uploaded workbook and reports its dimensions
func (s *Server) handleUpload(c *gin.Context) {
	data, err := readUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "erro", "mensagem": err.Error()})
		return
	}

	sheet, err := excel.Parse(data)
	if err != nil {
		log.Printf("[handleUpload] parse failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"status": "erro", "mensagem": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "sucesso",
		"total_linhas": len(sheet.Rows),
		"colunas":      sheet.Headers,
	})
}

// handleProcess runs the audit pipeline and returns the processed workbook.
// The mode token is validated before the upload is touched, so an invalid
// mode never triggers any parsing work.
func (s *Server) handleProcess(c *gin.Context) {
	token := c.PostForm("mode")
	mode, ok := audit.ParseMode(token)
	if !ok {
		respondError(c, errors.InvalidMode(token))
		return
	}

	data, err := readUpload(c)
	if err != nil {
		respondError(c, errors.Processing(err))
		return
	}

	out, result, err := s.service.ProcessWorkbook(data, mode)
	if err != nil {
		log.Printf("[handleProcess] mode=%s failed: %v", mode, err)
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("planilha_processada_%s.xlsx", mode)
	log.Printf("[handleProcess] mode=%s rows=%d -> %s", mode, result.Summary.Total, filename)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentTypeXLSX, out)
}

// readUpload pulls the multipart "file" field into memory
func readUpload(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("arquivo não enviado: %w", err)
	}
	return readFileHeader(fileHeader)
}

func readFileHeader(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o arquivo enviado: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler o arquivo enviado: %w", err)
	}
	return data, nil
}

// respondError maps the error taxonomy onto HTTP statuses with a detail body
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidMode, errors.CodeMissingColumn:
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"detail": err.Error()})
}
