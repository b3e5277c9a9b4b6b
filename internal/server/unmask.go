package server

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/affu-79/PII-SENTINEL-BACKEND-sub002/gen/proto/pii/v1"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/common"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/mask"
	"github.com/affu-79/PII-SENTINEL-BACKEND-sub002/internal/repository"
)

type MaskService struct {
	v1.UnimplementedMaskServiceServer
	maskRepo repository.MaskRecordRepository
	masker   *mask.Masker
	logger   *slog.Logger
}

func NewMaskService(maskRepo repository.MaskRecordRepository, masker *mask.Masker, logger *slog.Logger) *MaskService {
	return &MaskService{maskRepo: maskRepo, masker: masker, logger: logger}
}

// UnmaskDocument implements v1.MaskServiceServer. The caller supplies the
// masked text and the password; the stored record carries salt and span
// ciphertexts. A wrong password restores nothing.
func (s *MaskService) UnmaskDocument(ctx context.Context, req *v1.UnmaskDocumentRequest) (*v1.UnmaskDocumentResponse, error) {
	docID, err := parseID(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	if req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "password is required")
	}
	if req.GetMaskedText() == "" {
		return nil, status.Error(codes.InvalidArgument, "masked_text is required")
	}

	rec, err := s.maskRepo.Latest(ctx, docID)
	if err != nil {
		s.logger.Error("mask record lookup failed", "doc_id", docID, "error", err)
		return nil, status.Error(codes.NotFound, "no mask record for document")
	}
	if rec.Mode != mask.ModeReversibleToken {
		return nil, status.Error(codes.FailedPrecondition, "document was masked irreversibly")
	}

	text, err := s.masker.Unmask(req.GetMaskedText(), rec, req.GetPassword())
	if err != nil {
		if errors.Is(err, common.ErrAuthenticationFailure) {
			s.logger.Warn("unmask rejected", "doc_id", docID)
			return nil, status.Error(codes.Unauthenticated, "password does not match masking record")
		}
		return nil, common.InternalErrorf("unmask: %v", err)
	}

	s.logger.Info("document unmasked", "doc_id", docID)
	return &v1.UnmaskDocumentResponse{Text: text}, nil
}
