package service

import (
	"okbike/internal/db"
	apperrors "okbike/internal/errors"
	"okbike/internal/repository"
)

var validDocumentActions = map[string]bool{
	"APPROVED": true,
	"REJECTED": true,
}

// DocumentService handles per-document verification. Each call touches
// exactly one status field; nothing is re-fetched on behalf of the caller.
type DocumentService struct {
	Users *repository.UserRepository
}

func NewDocumentService(users *repository.UserRepository) *DocumentService {
	return &DocumentService{Users: users}
}

func (s *DocumentService) VerifyDocument(userID int, docType, status string) error {
	if !validDocumentActions[status] {
		return apperrors.ErrUnknownDocumentState
	}
	return s.Users.UpdateDocumentStatus(userID, docType, status)
}

func (s *DocumentService) GetUser(id int) (*db.User, error) {
	return s.Users.GetByID(id)
}
