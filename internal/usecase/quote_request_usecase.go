package usecase

import (
	"confeccao_os/internal/domain/entities"
	"confeccao_os/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxAttachmentSize is the largest file accepted with a quote request (10 MB).
const MaxAttachmentSize = 10 * 1024 * 1024

const attachmentPrefix = "orcamentos/"

var (
	ErrMissingRequiredField = errors.New("name, email and phone are required")
	ErrAttachmentTooLarge   = errors.New("attachment exceeds 10MB")
	ErrAttachmentUpload     = errors.New("attachment upload failed")
)

type SubmitQuoteRequestInput struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	Amount      float64
	OrderNumber string
}

// IQuoteRequestUseCase handles the public quick-quote form.
type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, in SubmitQuoteRequestInput, attachment *entities.Attachment) (entities.QuoteRequest, error)
	List(ctx context.Context) ([]entities.QuoteRequest, error)
	SendEmail(ctx context.Context, r entities.QuoteRequest) error
}

type QuoteRequestUseCase struct {
	repo    interfaces.IQuoteRequestRepository
	storage interfaces.IObjectStorage
	email   interfaces.IEmailSender
	numbers IOrderNumberUseCase
	now     func() time.Time
	newID   func() string
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(
	repo interfaces.IQuoteRequestRepository,
	storage interfaces.IObjectStorage,
	email interfaces.IEmailSender,
	numbers IOrderNumberUseCase,
) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{
		repo:    repo,
		storage: storage,
		email:   email,
		numbers: numbers,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.New().String() },
	}
}

// Submit validates the form, uploads the optional attachment, stores the
// request and then tries to email the shop. Email failures are only logged.
func (u *QuoteRequestUseCase) Submit(ctx context.Context, in SubmitQuoteRequestInput, attachment *entities.Attachment) (entities.QuoteRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.OrderNumber = strings.TrimSpace(in.OrderNumber)
	log.Printf("[quote-request][usecase] submit start email=%s has_attachment=%t", in.Email, attachment != nil)

	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return entities.QuoteRequest{}, ErrMissingRequiredField
	}
	if !entities.ValidEmail(in.Email) {
		return entities.QuoteRequest{}, entities.ErrInvalidEmail
	}
	if in.Amount < 0 {
		return entities.QuoteRequest{}, ErrInvalidQuoteValue
	}
	if attachment != nil && attachmentSize(attachment) > MaxAttachmentSize {
		log.Printf("[quote-request][usecase] attachment too large size=%d", attachmentSize(attachment))
		return entities.QuoteRequest{}, ErrAttachmentTooLarge
	}

	if in.OrderNumber == "" {
		in.OrderNumber = strconv.Itoa(u.numbers.Next(ctx))
	}

	var attachmentURL string
	if attachment != nil && len(attachment.Data) > 0 {
		key, contentType := u.attachmentKey(attachment)
		if err := u.storage.Upload(ctx, key, contentType, attachment.Data); err != nil {
			log.Printf("[quote-request][usecase] upload failed key=%s err=%v", key, err)
			return entities.QuoteRequest{}, fmt.Errorf("%w: %v", ErrAttachmentUpload, err)
		}
		attachmentURL = u.storage.PublicURL(key)
		log.Printf("[quote-request][usecase] attachment stored key=%s content_type=%s", key, contentType)
	}

	r := entities.QuoteRequest{
		ID:            u.newID(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         entities.OnlyDigits(in.Phone),
		Message:       strings.TrimSpace(in.Message),
		Amount:        in.Amount,
		OrderNumber:   in.OrderNumber,
		AttachmentURL: attachmentURL,
		CreatedAt:     u.now(),
	}
	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[quote-request][usecase] repository create failed err=%v", err)
		return entities.QuoteRequest{}, err
	}

	if err := u.SendEmail(ctx, created); err != nil {
		log.Printf("[quote-request][usecase] email failed id=%s err=%v", created.ID, err)
	}
	log.Printf("[quote-request][usecase] submit success id=%s order_number=%s", created.ID, created.OrderNumber)
	return created, nil
}

func (u *QuoteRequestUseCase) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	return u.repo.List(ctx)
}

// SendEmail forwards a quote request to the email sender.
func (u *QuoteRequestUseCase) SendEmail(ctx context.Context, r entities.QuoteRequest) error {
	if u.email == nil {
		return errors.New("email sender not configured")
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" {
		return ErrMissingRequiredField
	}
	return u.email.SendQuoteRequest(ctx, r)
}

// attachmentKey builds orcamentos/<uuid>.<ext>. The extension comes from the
// original filename, or from the detected type when the name has none.
func (u *QuoteRequestUseCase) attachmentKey(a *entities.Attachment) (string, string) {
	detected := mimetype.Detect(a.Data)
	contentType := strings.TrimSpace(a.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = detected.String()
	}
	ext := strings.ToLower(filepath.Ext(a.Filename))
	if ext == "" {
		ext = detected.Extension()
	}
	return attachmentPrefix + u.newID() + ext, contentType
}

func attachmentSize(a *entities.Attachment) int64 {
	if a.Size > 0 {
		return a.Size
	}
	return int64(len(a.Data))
}
