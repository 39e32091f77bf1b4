package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sanjith/placementcell/internal/app/models"
	"github.com/sanjith/placementcell/internal/app/models/dto"
	"github.com/sanjith/placementcell/internal/app/repositories"
	"github.com/sanjith/placementcell/internal/pkg/apperrors"
)

// CompanyService handles the public company intake flow: officers mint
// shareable form links, companies submit through them without an account, and
// officers review the submissions.
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
	logger      zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo *repositories.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// CreateFormLink mints a new shareable intake link with an unguessable token
func (s *CompanyService) CreateFormLink(ctx context.Context, req *dto.CreateFormLinkRequest, createdBy int64) (*dto.FormLinkResponse, error) {
	link := &models.CompanyFormLink{
		Token:     uuid.NewString(),
		Label:     req.Label,
		Active:    true,
		CreatedBy: createdBy,
	}
	if err := s.companyRepo.CreateFormLink(ctx, link); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("linkID", link.ID).Str("label", link.Label).Msg("Company form link created")
	resp := toFormLinkResponse(link)
	return &resp, nil
}

// ListFormLinks returns every intake link, newest first
func (s *CompanyService) ListFormLinks(ctx context.Context) ([]dto.FormLinkResponse, error) {
	links, err := s.companyRepo.GetFormLinks(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.FormLinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, toFormLinkResponse(&links[i]))
	}
	return responses, nil
}

// SetFormLinkActive enables or disables an intake link
func (s *CompanyService) SetFormLinkActive(ctx context.Context, id int64, active bool) error {
	return s.companyRepo.SetFormLinkActive(ctx, id, active)
}

// GetPublicForm resolves a public token to its link, rejecting disabled links
func (s *CompanyService) GetPublicForm(ctx context.Context, token string) (*dto.FormLinkResponse, error) {
	link, err := s.resolveActiveLink(ctx, token)
	if err != nil {
		return nil, err
	}
	resp := toFormLinkResponse(link)
	return &resp, nil
}

// SubmitRequest records a company submission made through a public link.
// Recognized fields are stored typed; everything else rides in extras.
func (s *CompanyService) SubmitRequest(ctx context.Context, token string, req *dto.SubmitCompanyRequestRequest) (*dto.CompanyRequestResponse, error) {
	link, err := s.resolveActiveLink(ctx, token)
	if err != nil {
		return nil, err
	}

	request := &models.CompanyRequest{
		CompanyName: req.CompanyName,
		Website:     req.Website,
		HRName:      req.HRName,
		HREmail:     req.HREmail,
		HRPhone:     req.HRPhone,
		JobTitle:    req.JobTitle,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		Extras:      req.Extras,
		Status:      models.CompanyRequestPending,
		FormLinkID:  &link.ID,
	}
	if err := s.companyRepo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}
	if err := s.companyRepo.IncrementSubmissionCount(ctx, link.ID); err != nil {
		s.logger.Warn().Err(err).Int64("linkID", link.ID).Msg("Failed to bump submission count")
	}

	s.logger.Info().Int64("requestID", request.ID).Str("company", request.CompanyName).Msg("Company request submitted")
	resp := toCompanyRequestResponse(request)
	return &resp, nil
}

// ListRequests returns a page of submissions with an optional status filter
func (s *CompanyService) ListRequests(ctx context.Context, status *models.CompanyRequestStatus, page, pageSize int) ([]dto.CompanyRequestResponse, int64, error) {
	requests, total, err := s.companyRepo.GetRequests(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]dto.CompanyRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, toCompanyRequestResponse(&requests[i]))
	}
	return responses, total, nil
}

// Review approves or rejects a pending submission. Reviewing twice conflicts.
func (s *CompanyService) Review(ctx context.Context, id int64, status models.CompanyRequestStatus, reviewedBy int64) (*dto.CompanyRequestResponse, error) {
	request, err := s.companyRepo.GetRequestByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.CompanyRequestPending {
		return nil, apperrors.NewConflictError("company request has already been reviewed")
	}

	if err := s.companyRepo.UpdateRequestStatus(ctx, id, status, reviewedBy); err != nil {
		return nil, err
	}
	request.Status = status
	request.ReviewedBy = &reviewedBy

	s.logger.Info().Int64("requestID", id).Str("status", string(status)).Msg("Company request reviewed")
	resp := toCompanyRequestResponse(request)
	return &resp, nil
}

func (s *CompanyService) resolveActiveLink(ctx context.Context, token string) (*models.CompanyFormLink, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, apperrors.ErrFormLinkNotFound
	}
	link, err := s.companyRepo.GetFormLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !link.Active {
		return nil, apperrors.ErrFormLinkInactive
	}
	return link, nil
}

func toFormLinkResponse(link *models.CompanyFormLink) dto.FormLinkResponse {
	return dto.FormLinkResponse{
		ID:              link.ID,
		Token:           link.Token,
		Label:           link.Label,
		Active:          link.Active,
		SubmissionCount: link.SubmissionCount,
		CreatedAt:       link.CreatedAt,
	}
}

func toCompanyRequestResponse(req *models.CompanyRequest) dto.CompanyRequestResponse {
	return dto.CompanyRequestResponse{
		ID:          req.ID,
		CompanyName: req.CompanyName,
		Website:     req.Website,
		HRName:      req.HRName,
		HREmail:     req.HREmail,
		HRPhone:     req.HRPhone,
		JobTitle:    req.JobTitle,
		SalaryRange: req.SalaryRange,
		Description: req.Description,
		Extras:      req.Extras,
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}
}
