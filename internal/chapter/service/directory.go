package service

import (
	"context"

	"github.com/openchapter/chapter/internal/chapter/domain"
	"github.com/openchapter/chapter/internal/chapter/store"
)

// DirectoryService exposes the member directory: the public projection of
// every active member except the viewer.
type DirectoryService struct {
	Store store.Store
}

func (s *DirectoryService) ListMembers(ctx context.Context, viewerID string) ([]domain.MemberSummary, error) {
	return s.Store.Members().ListActiveMembers(ctx, viewerID)
}
