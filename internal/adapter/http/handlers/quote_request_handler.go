package handlers

import (
	request "confeccao_os/internal/adapter/http/dto/request"
	response "confeccao_os/internal/adapter/http/dto/response"
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase"
	"confeccao_os/pkg"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

const attachmentField = "attachment"

// QuoteRequestHandler serves the public quick-quote form and the email
// function used by the storefront.
type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a quote request
// @Description  Multipart form with an optional attachment of at most 10MB.
// @Tags         quote-requests
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string  true   "Name"
// @Param        email         formData  string  true   "Email"
// @Param        phone         formData  string  true   "Phone"
// @Param        message       formData  string  false  "Message"
// @Param        amount        formData  number  false  "Amount"
// @Param        order_number  formData  string  false  "Order number"
// @Param        attachment    formData  file    false  "Attachment"
// @Success      201  {object}  response.QuoteRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /quote-requests [post]
func (h *QuoteRequestHandler) Submit(c *gin.Context) {
	var form request.QuoteSubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("[quote-request][handler] invalid form err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}

	attachment, err := readAttachment(c)
	if err != nil {
		log.Printf("[quote-request][handler] attachment read failed err=%v", err)
		writeError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), form.ToInput(), attachment)
	if err != nil {
		log.Printf("[quote-request][handler] submit failed email=%s err=%v", form.Email, err)
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// readAttachment returns nil when the form carries no file. Oversized files
// are not read; only their size is passed on so the limit check fails fast.
func readAttachment(c *gin.Context) (*entities.Attachment, error) {
	fh, err := c.FormFile(attachmentField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a := &entities.Attachment{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	}
	if fh.Size > usecase.MaxAttachmentSize {
		return a, nil
	}
	a.Data, err = readFileHeader(fh)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// List godoc
// @Summary      List quote requests
// @Tags         quote-requests
// @Produce      json
// @Success      200  {array}  response.QuoteRequestResponse
// @Router       /quote-requests [get]
func (h *QuoteRequestHandler) List(c *gin.Context) {
	rs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(rs))
}

// SendQuoteEmail godoc
// @Summary      Email a quote request to the shop
// @Tags         functions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SendQuoteEmailRequest  true  "Quote request"
// @Success      200      {object}  map[string]bool
// @Failure      400      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /functions/send-quote-email [post]
func (h *QuoteRequestHandler) SendQuoteEmail(c *gin.Context) {
	var payload request.SendQuoteEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.SendEmail(c.Request.Context(), payload.ToEntity()); err != nil {
		log.Printf("[quote-request][handler] send email failed email=%s err=%v", payload.Email, err)
		if errors.Is(err, usecase.ErrMissingRequiredField) {
			writeError(c, mapDomainError(err))
			return
		}
		writeError(c, pkg.NewDomainError("EMAIL_SEND_FAILED", "Failed to send email", err, http.StatusBadGateway))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
