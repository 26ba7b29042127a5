package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"confeccao_os/internal/domain/entities"
	mock_interfaces "confeccao_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteRequestMocks struct {
	repo    *mock_interfaces.MockIQuoteRequestRepository
	storage *mock_interfaces.MockIObjectStorage
	email   *mock_interfaces.MockIEmailSender
	orders  *mock_interfaces.MockIServiceOrderRepository
}

func newQuoteRequestForTest(ctrl *gomock.Controller) (*QuoteRequestUseCase, quoteRequestMocks) {
	m := quoteRequestMocks{
		repo:    mock_interfaces.NewMockIQuoteRequestRepository(ctrl),
		storage: mock_interfaces.NewMockIObjectStorage(ctrl),
		email:   mock_interfaces.NewMockIEmailSender(ctrl),
		orders:  mock_interfaces.NewMockIServiceOrderRepository(ctrl),
	}
	uc := NewQuoteRequestUseCase(m.repo, m.storage, m.email, NewOrderNumberUseCase(m.orders))
	uc.now = fixedNow
	uc.newID = func() string { return "fixed-id" }
	return uc, m
}

func validQuoteForm() SubmitQuoteRequestInput {
	return SubmitQuoteRequestInput{
		Name:        "Ana Souza",
		Email:       "ana@example.com",
		Phone:       "(11) 98888-7777",
		Message:     "50 camisetas com logo",
		Amount:      1500,
		OrderNumber: "2001",
	}
}

func TestQuoteRequestUseCase_Submit_Validation(t *testing.T) {
	cases := []struct {
		name string
		edit func(*SubmitQuoteRequestInput)
		want error
	}{
		{name: "missing name", edit: func(in *SubmitQuoteRequestInput) { in.Name = " " }, want: ErrMissingRequiredField},
		{name: "missing email", edit: func(in *SubmitQuoteRequestInput) { in.Email = "" }, want: ErrMissingRequiredField},
		{name: "missing phone", edit: func(in *SubmitQuoteRequestInput) { in.Phone = "" }, want: ErrMissingRequiredField},
		{name: "malformed email", edit: func(in *SubmitQuoteRequestInput) { in.Email = "ana@" }, want: entities.ErrInvalidEmail},
		{name: "negative amount", edit: func(in *SubmitQuoteRequestInput) { in.Amount = -1 }, want: ErrInvalidQuoteValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _ := newQuoteRequestForTest(ctrl)

			in := validQuoteForm()
			tc.edit(&in)
			_, err := uc.Submit(context.Background(), in, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestQuoteRequestUseCase_Submit_AttachmentTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No EXPECT calls: any storage, repository, counter or email call fails the test.
	uc, _ := newQuoteRequestForTest(ctrl)

	in := validQuoteForm()
	in.OrderNumber = ""
	big := &entities.Attachment{Filename: "arte.pdf", Size: MaxAttachmentSize + 1}
	_, err := uc.Submit(context.Background(), in, big)
	if !errors.Is(err, ErrAttachmentTooLarge) {
		t.Fatalf("expected ErrAttachmentTooLarge, got %v", err)
	}

	data := &entities.Attachment{Filename: "arte.pdf", Data: bytes.Repeat([]byte("x"), MaxAttachmentSize+1)}
	_, err = uc.Submit(context.Background(), in, data)
	if !errors.Is(err, ErrAttachmentTooLarge) {
		t.Fatalf("expected ErrAttachmentTooLarge for data length, got %v", err)
	}
}

func TestQuoteRequestUseCase_Submit(t *testing.T) {
	t.Run("with attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteRequestForTest(ctrl)

		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		m.storage.EXPECT().Upload(gomock.Any(), "orcamentos/fixed-id.png", "image/png", png).Return(nil)
		m.storage.EXPECT().PublicURL("orcamentos/fixed-id.png").Return("https://cdn.example.com/anexos/orcamentos/fixed-id.png")
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
			if r.AttachmentURL != "https://cdn.example.com/anexos/orcamentos/fixed-id.png" {
				t.Fatalf("unexpected attachment url %q", r.AttachmentURL)
			}
			if r.Phone != "11988887777" || r.OrderNumber != "2001" {
				t.Fatalf("unexpected request %+v", r)
			}
			return r, nil
		})
		m.email.EXPECT().SendQuoteRequest(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Submit(context.Background(), validQuoteForm(), &entities.Attachment{Filename: "Arte.PNG", Data: png})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "fixed-id" || !res.CreatedAt.Equal(fixedNow()) {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("upload failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteRequestForTest(ctrl)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("s3 down"))

		_, err := uc.Submit(context.Background(), validQuoteForm(), &entities.Attachment{Filename: "a.pdf", Data: []byte("%PDF-1.4")})
		if !errors.Is(err, ErrAttachmentUpload) {
			t.Fatalf("expected ErrAttachmentUpload, got %v", err)
		}
	})

	t.Run("email failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteRequestForTest(ctrl)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
			return r, nil
		})
		m.email.EXPECT().SendQuoteRequest(gomock.Any(), gomock.Any()).Return(errors.New("resend 500"))

		res, err := uc.Submit(context.Background(), validQuoteForm(), nil)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if res.AttachmentURL != "" {
			t.Fatalf("expected no attachment url, got %q", res.AttachmentURL)
		}
	})

	t.Run("empty order number comes from counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteRequestForTest(ctrl)
		m.orders.EXPECT().MaxOrderNumber(gomock.Any()).Return("1042", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.QuoteRequest) (entities.QuoteRequest, error) {
			return r, nil
		})
		m.email.EXPECT().SendQuoteRequest(gomock.Any(), gomock.Any()).Return(nil)

		in := validQuoteForm()
		in.OrderNumber = "  "
		res, err := uc.Submit(context.Background(), in, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderNumber != "1043" {
			t.Fatalf("expected 1043, got %s", res.OrderNumber)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuoteRequestForTest(ctrl)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.QuoteRequest{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), validQuoteForm(), nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteRequestUseCase_AttachmentKey(t *testing.T) {
	uc := &QuoteRequestUseCase{newID: func() string { return "abc" }}

	key, ct := uc.attachmentKey(&entities.Attachment{Filename: "pedido", Data: []byte("%PDF-1.7\n")})
	if key != "orcamentos/abc.pdf" || ct != "application/pdf" {
		t.Fatalf("unexpected key=%s content_type=%s", key, ct)
	}

	key, ct = uc.attachmentKey(&entities.Attachment{Filename: "notas.txt", ContentType: "text/plain", Data: []byte("ok")})
	if key != "orcamentos/abc.txt" || !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected key=%s content_type=%s", key, ct)
	}
}
